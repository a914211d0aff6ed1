package parser

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/stparse/stparse/pkg/format"
	"github.com/stparse/stparse/pkg/models"
)

// extractColumnar reads rows of a delimited table using the detected
// column mapping. It is the most precise strategy and runs
// unconditionally; it contributes nothing when no delimited header was
// found.
func extractColumnar(text string, mapping *models.ColumnMapping) []models.Draft {
	if mapping == nil || mapping.HeaderLine < 0 || mapping.Delimiter == models.DelimiterSpace {
		return nil
	}
	if !mapping.Has(models.FieldDate) {
		return nil
	}

	lines := strings.Split(text, "\n")
	var drafts []models.Draft

	for _, line := range lines[mapping.HeaderLine+1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Split(line, mapping.Delimiter)

		date, ok := format.ParseDate(cell(parts, mapping.Index(models.FieldDate)))
		if !ok {
			continue
		}

		debit := format.ParseAmount(cell(parts, mapping.Index(models.FieldDebit))).Abs()
		credit := format.ParseAmount(cell(parts, mapping.Index(models.FieldCredit))).Abs()
		if debit.IsZero() && credit.IsZero() {
			continue
		}

		desc := cell(parts, mapping.Index(models.FieldDescription))

		// Some layouts run everything through a single amount column;
		// credit-indicating tokens in the description correct the
		// direction.
		if credit.IsZero() && debit.IsPositive() && hasCreditKeyword(desc) {
			credit, debit = debit, decimal.Zero
		}

		amount := debit
		isCredit := false
		if credit.IsPositive() {
			amount = credit
			isCredit = true
		}

		drafts = append(drafts, models.Draft{
			Date:        date,
			Description: desc,
			Amount:      amount,
			Debit:       debit,
			Credit:      credit,
			Balance:     format.ParseAmount(cell(parts, mapping.Index(models.FieldBalance))),
			Reference:   strings.TrimSpace(cell(parts, mapping.Index(models.FieldReference))),
			IsCredit:    isCredit,
			RawLine:     line,
		})
	}

	return drafts
}

func cell(parts []string, idx int) string {
	if idx < 0 || idx >= len(parts) {
		return ""
	}
	return strings.TrimSpace(parts[idx])
}
