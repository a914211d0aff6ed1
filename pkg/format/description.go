package format

import (
	"strings"
	"unicode"
)

const maxDescriptionLen = 200

// NormalizeDescription collapses whitespace runs to single spaces,
// strips boilerplate punctuation from both ends, and truncates to 200
// characters.
func NormalizeDescription(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	s = strings.Trim(s, " .,-_:;@#")
	if len(s) > maxDescriptionLen {
		s = s[:maxDescriptionLen]
	}
	return s
}

// MeaningfulLen counts the letters and digits in s; spaces and
// punctuation do not make a description meaningful.
func MeaningfulLen(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			n++
		}
	}
	return n
}
