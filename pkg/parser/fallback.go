package parser

import (
	"strings"

	"github.com/stparse/stparse/pkg/format"
	"github.com/stparse/stparse/pkg/models"
)

// extractRegexFallback is the last automatic resort: a permissive sweep
// over every line, deliberately ignoring the skip filter. Transaction
// lines sometimes carry words the filter treats as boilerplate ("CR",
// "received"); when the precise strategies came up short, this pass
// still recovers them. It only trusts amounts with explicit decimals,
// which keeps reference numbers out.
func extractRegexFallback(text string, _ *models.ColumnMapping) []models.Draft {
	var drafts []models.Draft

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if len(line) < minLineLen {
			continue
		}

		date, _, dateEnd, ok := findDate(line)
		if !ok {
			continue
		}

		// First decimal amount after the date. Later tokens on the same
		// line are usually the running balance; when a precise strategy
		// already extracted the line, picking the same amount here lets
		// deduplication collapse the two drafts.
		var m []int
		for _, cand := range decimalAmountToken.FindAllStringSubmatchIndex(line, -1) {
			if cand[2] >= dateEnd {
				m = cand
				break
			}
		}
		if m == nil {
			continue
		}

		amount := format.ParseAmount(line[m[2]:m[3]]).Abs()
		if !amount.IsPositive() {
			continue
		}

		isCredit := m[4] >= 0 && strings.EqualFold(line[m[4]:m[5]], "cr")

		desc := cleanSpan(line[dateEnd:m[0]])
		if format.MeaningfulLen(desc) < 3 {
			continue
		}

		d := models.Draft{
			Date:        date,
			Description: desc,
			Amount:      amount,
			IsCredit:    isCredit,
			RawLine:     line,
		}
		if isCredit {
			d.Credit = amount
		} else {
			d.Debit = amount
		}
		drafts = append(drafts, d)
	}

	return drafts
}
