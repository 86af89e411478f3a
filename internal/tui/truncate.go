package tui

import "unicode/utf16"

// Body truncation limits.
const (
	maxBodyLen     = 30
	truncateSuffix = "..."
)

// TruncateBody shortens s for the Body column. Length is counted in UTF-16
// code units, not graphemes: strings of at most 30 units are returned as is,
// longer ones are cut to 30 units and suffixed with "...". A surrogate pair
// split by the cut decodes to U+FFFD.
func TruncateBody(s string) string {
	// Fast path: a string of at most 30 bytes is at most 30 code units.
	if len(s) <= maxBodyLen {
		return s
	}
	units := utf16.Encode([]rune(s))
	if len(units) <= maxBodyLen {
		return s
	}
	return string(utf16.Decode(units[:maxBodyLen])) + truncateSuffix
}
