package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects how the posts table is presented.
type OutputMode int

const (
	// OutputModePlain writes a single page as plain text and exits.
	OutputModePlain OutputMode = iota
	// OutputModeInteractive runs the Bubble Tea program.
	OutputModeInteractive
)

// String returns the mode name.
func (m OutputMode) String() string {
	if m == OutputModeInteractive {
		return "interactive"
	}
	return "plain"
}

// DetectOutputMode picks interactive output only when stdout is a terminal,
// the terminal is capable, and plain output was not forced.
func DetectOutputMode(forcePlain bool, out *os.File) OutputMode {
	if forcePlain || out == nil {
		return OutputModePlain
	}
	if os.Getenv("TERM") == "dumb" {
		return OutputModePlain
	}
	if !term.IsTerminal(int(out.Fd())) {
		return OutputModePlain
	}
	return OutputModeInteractive
}
