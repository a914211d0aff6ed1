// Package validate decides whether a draft transaction is trustworthy
// enough to appear in parser output. Hard failures discard the draft;
// soft findings travel with the result as warnings.
package validate

import (
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
	"github.com/stparse/stparse/pkg/format"
	"github.com/stparse/stparse/pkg/models"
)

// Amounts above this are almost certainly a parsing artifact (a
// reference number read as money) rather than a real retail
// transaction.
var sanityCeiling = decimal.NewFromInt(10_000_000)

var numericOnly = regexp.MustCompile(`^[\d\s.,/-]+$`)

// Result is the outcome for one draft.
type Result struct {
	Valid    bool
	Errors   []string
	Warnings []string
}

// Check validates a single draft. It never fails on data content; a
// nil draft is a programming error and panics.
func Check(d *models.Draft) Result {
	if d == nil {
		panic("validate: nil draft")
	}

	var r Result

	if d.Date == "" {
		r.Errors = append(r.Errors, "missing date")
	} else if !format.IsCanonicalDate(d.Date) {
		r.Warnings = append(r.Warnings, fmt.Sprintf("non-canonical date %q", d.Date))
	}

	switch {
	case d.Description == "":
		r.Errors = append(r.Errors, "missing description")
	case numericOnly.MatchString(d.Description):
		r.Errors = append(r.Errors, fmt.Sprintf("numeric-only description %q", d.Description))
	case format.MeaningfulLen(d.Description) < 3:
		r.Errors = append(r.Errors, fmt.Sprintf("description too short %q", d.Description))
	}

	if d.Amount.IsNegative() || d.Debit.IsNegative() || d.Credit.IsNegative() {
		r.Errors = append(r.Errors, "negative amount")
	}

	if d.Amount.IsZero() && d.Debit.IsZero() && d.Credit.IsZero() {
		r.Errors = append(r.Errors, "no amount, debit or credit")
	} else {
		if d.Amount.IsZero() {
			r.Warnings = append(r.Warnings, "amount is zero")
		} else if d.Debit.IsZero() && d.Credit.IsZero() {
			r.Warnings = append(r.Warnings, "amount present but debit and credit both empty")
		}
		if d.Amount.GreaterThan(sanityCeiling) {
			r.Warnings = append(r.Warnings, fmt.Sprintf("amount %s exceeds sanity ceiling", d.Amount))
		}
	}

	r.Valid = len(r.Errors) == 0
	return r
}
