package transform

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned for command line values that are not UTF-8.
var ErrInvalidUTF8 = errors.New("value contains invalid UTF-8 sequences")

// SanitizeValue strips control characters from a value given on the command
// line. Tabs and newlines are removed too: they would split the output line.
func SanitizeValue(value string) (string, error) {
	if !utf8.ValidString(value) {
		return "", ErrInvalidUTF8
	}

	// Fast path: nothing to strip.
	if strings.IndexFunc(value, unicode.IsControl) < 0 {
		return value, nil
	}

	var b strings.Builder
	b.Grow(len(value))
	for _, r := range value {
		if !unicode.IsControl(r) {
			b.WriteRune(r)
		}
	}
	return b.String(), nil
}
