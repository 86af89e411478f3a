package tui

// Key bindings.
const (
	keyQuit   = "q"
	keyCtrlC  = "ctrl+c"
	keyLeft   = "left"
	keyRight  = "right"
	keyH      = "h"
	keyL      = "l"
	keyB      = "b"
	keyF      = "f"
	keyPgUp   = "pgup"
	keyPgDown = "pgdown"
)

// Control labels.
const (
	labelRetreat = "Back"
	labelAdvance = "Forward"
)

// isRetreatKey reports whether key moves to the previous page.
func isRetreatKey(key string) bool {
	switch key {
	case keyLeft, keyH, keyB, keyPgUp:
		return true
	default:
		return false
	}
}

// isAdvanceKey reports whether key moves to the next page.
func isAdvanceKey(key string) bool {
	switch key {
	case keyRight, keyL, keyF, keyPgDown:
		return true
	default:
		return false
	}
}
