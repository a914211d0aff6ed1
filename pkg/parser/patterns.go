package parser

import (
	"regexp"
	"strings"

	"github.com/stparse/stparse/pkg/format"
)

var (
	dateSlashToken = regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{2,4}`)
	dateMonToken   = regexp.MustCompile(`(?i)\d{1,2}[\s-][a-z]{3,9}[\s-]\d{2,4}`)
	dateISOToken   = regexp.MustCompile(`\d{4}-\d{1,2}-\d{1,2}`)

	// Amount with optional thousands separators and an optional
	// trailing credit/debit marker.
	amountToken = regexp.MustCompile(`(?i)([0-9][0-9,]*(?:\.[0-9]+)?)\s*(?:(cr|dr)\b)?`)

	// Stricter variant for the fallback sweep: decimals required, so
	// reference numbers and serial counters do not match.
	decimalAmountToken = regexp.MustCompile(`(?i)([0-9][0-9,]*\.\d{2})\s*(?:(cr|dr)\b)?`)

	leadingDigits  = regexp.MustCompile(`^[\d\s/:.-]+`)
	trailingDigits = regexp.MustCompile(`[\d\s]+$`)
)

// findDate locates the first recognizable date token in the line and
// returns its canonical form plus the byte span of the raw token. The
// span feeds description extraction.
func findDate(line string) (canonical string, start, end int, ok bool) {
	for _, pat := range []*regexp.Regexp{dateSlashToken, dateMonToken, dateISOToken} {
		loc := pat.FindStringIndex(line)
		if loc == nil {
			continue
		}
		if c, valid := format.ParseDate(line[loc[0]:loc[1]]); valid {
			return c, loc[0], loc[1], true
		}
	}
	return "", 0, 0, false
}

// cleanSpan trims a description slice of the digits and separators left
// over from the surrounding date and amount tokens.
func cleanSpan(s string) string {
	s = leadingDigits.ReplaceAllString(s, "")
	s = trailingDigits.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// hasCreditKeyword reports whether the description carries one of the
// tokens that mark a transaction as a credit even when the amount sat
// in a debit position.
func hasCreditKeyword(desc string) bool {
	upper := strings.ToUpper(desc)
	for _, kw := range creditKeywords {
		if strings.Contains(upper, kw) {
			return true
		}
	}
	return false
}
