package format

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1,00,000.50", "100000.5"},
		{"1,000.50", "1000.5"},
		{"1234.56", "1234.56"},
		{"₹1,234.56", "1234.56"},
		{"Rs. 500", "500"},
		{"9,720.00 CR", "9720"},
		{"9,720.00CR", "9720"},
		{"1,234.56 Dr", "-1234.56"},
		{"64,065.00", "64065"},
		{"-287.00", "-287"},
		{"", "0"},
		{"not a number", "0"},
		{"--", "0"},
	}

	for _, tc := range cases {
		got := ParseAmount(tc.in)
		want, _ := decimal.NewFromString(tc.want)
		if !got.Equal(want) {
			t.Errorf("ParseAmount(%q) = %s, want %s", tc.in, got, want)
		}
	}
}

func TestParseAmountWordBoundedMarkers(t *testing.T) {
	// "DR"/"CR" inside a larger token must not flip the sign.
	got := ParseAmount("500.00 CREDCLUB")
	if !got.Equal(decimal.Zero) {
		// Trailing junk makes the token unparseable; it must not panic
		// and must not become -500.
		t.Errorf("ParseAmount with glued keyword = %s, want 0", got)
	}
}

func TestParseAmountIdempotent(t *testing.T) {
	inputs := []string{"1,00,000.50", "1,234.56 Cr", "500 Dr", "9,720.00CR", "42"}
	for _, in := range inputs {
		once := ParseAmount(in)
		twice := ParseAmount(once.String())
		if !once.Equal(twice) {
			t.Errorf("ParseAmount not idempotent for %q: %s then %s", in, once, twice)
		}
	}
}

func TestNormalizeDescription(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  UPI-CREDCLUB   payment  ", "UPI-CREDCLUB payment"},
		{"-- Amazon Purchase --", "Amazon Purchase"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeDescription(tc.in); got != tc.want {
			t.Errorf("NormalizeDescription(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
