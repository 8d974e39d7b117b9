package domain

import (
	"strings"
	"unicode"
)

// IsRecord reports whether a log line carries an event.
// Empty lines and lines made only of whitespace are not records.
func IsRecord(line string) bool {
	return strings.TrimFunc(line, isSpace) != ""
}

// isSpace also treats the ASCII separators U+001C..U+001F as whitespace.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}
