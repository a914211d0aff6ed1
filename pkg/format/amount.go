package format

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Marker detection is word-bounded so that "CR" in "CREDCLUB" is not
// taken as a credit suffix. PDF extraction often glues the marker to the
// digits ("9,720.00CR"), so a digit counts as a left boundary too.
var (
	markerAfterDigit = regexp.MustCompile(`(?i)(\d)\s*(cr|dr)\b\.?`)
	markerWord       = regexp.MustCompile(`(?i)\b(cr|dr)\b\.?`)
	currencyRunes    = strings.NewReplacer("₹", "", "£", "", "$", "", "€", "", "Rs.", "", "Rs", "", "INR", "", " ", " ")
)

// ParseAmount converts a statement amount string to a decimal. It strips
// currency symbols and whitespace, honors trailing Cr/Dr markers (Dr
// forces a negative sign unless a Cr marker is also present), and
// removes thousands separators from the integer portion only, so both
// Indian grouping (1,00,000.50) and Western grouping (1,000.50) parse
// correctly. Unparseable input yields zero; it never fails.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}

	s, hasCr, hasDr := stripMarkers(s)

	s = currencyRunes.Replace(s)
	s = strings.Join(strings.Fields(s), "")

	// Commas are grouping separators only in the integer portion.
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		s = strings.ReplaceAll(s[:dot], ",", "") + s[dot:]
	} else {
		s = strings.ReplaceAll(s, ",", "")
	}

	value, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}

	if hasDr && !hasCr {
		value = value.Neg()
	}
	return value
}

// stripMarkers removes Cr/Dr suffixes and reports which were present.
func stripMarkers(s string) (string, bool, bool) {
	// Detach markers glued to digits so word-boundary matching applies.
	s = markerAfterDigit.ReplaceAllString(s, "$1 $2")

	var hasCr, hasDr bool
	for _, m := range markerWord.FindAllStringSubmatch(s, -1) {
		switch strings.ToLower(m[1]) {
		case "cr":
			hasCr = true
		case "dr":
			hasDr = true
		}
	}

	s = markerWord.ReplaceAllString(s, "")
	return strings.TrimSpace(s), hasCr, hasDr
}
