package format

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Canonical date layout produced by ParseDate.
const DateLayout = "02/01/2006"

var (
	reDMYSlash = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{2,4})$`)
	reDMonY    = regexp.MustCompile(`^(\d{1,2})\s+([A-Za-z]{3,9})\s+(\d{2,4})$`)
	reYMDDash  = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
)

var monthNumbers = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
	"january": 1, "february": 2, "march": 3, "april": 4, "june": 6,
	"july": 7, "august": 8, "september": 9, "october": 10,
	"november": 11, "december": 12,
}

// Layouts tried by the last-resort parser, all with day before month.
var fallbackLayouts = []string{
	"2-1-2006",
	"2-1-06",
	"2.1.2006",
	"2/1/2006 15:04:05",
	"2-Jan-2006",
	"2-Jan-06",
	"2 January 2006",
	"Jan 2, 2006",
	"2006/1/2",
}

// ParseDate normalizes a date string to DD/MM/YYYY. It tries DD/MM/YYYY
// (or YY), "DD Mon YYYY" with a case-insensitive month-name table, then
// YYYY-MM-DD, then a fixed set of day-first layouts. Two-digit years
// pivot at 50. The second return is false when nothing matched.
func ParseDate(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}

	if m := reDMYSlash.FindStringSubmatch(s); m != nil {
		return canonical(m[1], m[2], expandYear(m[3])), true
	}

	if m := reDMonY.FindStringSubmatch(s); m != nil {
		month, ok := monthNumbers[strings.ToLower(m[2])]
		if ok {
			return canonical(m[1], strconv.Itoa(month), expandYear(m[3])), true
		}
	}

	if m := reYMDDash.FindStringSubmatch(s); m != nil {
		return canonical(m[3], m[2], m[1]), true
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(DateLayout), true
		}
	}

	return "", false
}

// DateTime converts a canonical DD/MM/YYYY string back to a time.Time.
func DateTime(canonicalDate string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, canonicalDate)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// IsCanonicalDate reports whether s already has the DD/MM/YYYY shape.
var canonicalDatePattern = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

func IsCanonicalDate(s string) bool {
	return canonicalDatePattern.MatchString(s)
}

func canonical(day, month, year string) string {
	d, _ := strconv.Atoi(day)
	m, _ := strconv.Atoi(month)
	return fmt.Sprintf("%02d/%02d/%s", d, m, year)
}

// expandYear widens two-digit years with a pivot at 50: <50 becomes
// 20YY, >=50 becomes 19YY.
func expandYear(year string) string {
	if len(year) != 2 {
		return year
	}
	n, _ := strconv.Atoi(year)
	if n < 50 {
		return fmt.Sprintf("20%02d", n)
	}
	return fmt.Sprintf("19%02d", n)
}
