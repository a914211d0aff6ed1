package parser

import (
	"regexp"
	"strings"

	"github.com/stparse/stparse/pkg/format"
	"github.com/stparse/stparse/pkg/models"
)

// Space-aligned bank exports carry a posting date at the line start, a
// value date further in, then the transaction amount and the running
// balance as the trailing columns:
//
//	01/01/26  CC REF001  01/01/26  64,065.00            90,855.96
//
// The export loses the column grid, but the whitespace gap between the
// amount and the balance survives. Debit layouts keep the two adjacent;
// credit layouts leave the debit column empty between them, so a wide
// gap means credit.
var (
	leadingDatePattern = regexp.MustCompile(`^(\d{1,2}/\d{1,2}/\d{2,4})`)
	trailingRefPattern = regexp.MustCompile(`([A-Z0-9]{8,20})\s*$`)
	anyDigit           = regexp.MustCompile(`\d`)
)

// Gap thresholds in characters between the end of the amount and the
// start of the balance.
const (
	gapCreditMin = 5
	gapAdjacent  = 2
)

func extractFixedWidth(text string, _ *models.ColumnMapping) []models.Draft {
	var drafts []models.Draft

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimRight(raw, " \t\r")
		trimmed := strings.TrimSpace(line)
		if len(trimmed) < 10 || IsSkipLine(trimmed) {
			continue
		}

		lead := leadingDatePattern.FindStringSubmatch(trimmed)
		if lead == nil {
			continue
		}
		date, ok := format.ParseDate(lead[1])
		if !ok {
			continue
		}

		// The value date is the next date token after the posting date.
		rest := trimmed[len(lead[1]):]
		vd := dateSlashToken.FindStringIndex(rest)
		if vd == nil {
			continue
		}

		desc := strings.TrimSpace(rest[:vd[0]])
		after := rest[vd[1]:]

		amounts := amountToken.FindAllStringSubmatchIndex(after, -1)
		if len(amounts) < 2 {
			continue
		}

		first := amounts[0]
		last := amounts[len(amounts)-1]
		amount := format.ParseAmount(after[first[2]:first[3]]).Abs()
		balance := format.ParseAmount(after[last[2]:last[3]])
		if !amount.IsPositive() {
			continue
		}

		gap := last[0] - first[3]
		isCredit := gap >= gapCreditMin || (gap <= gapAdjacent && hasCreditKeyword(desc))

		var reference string
		if m := trailingRefPattern.FindStringSubmatch(desc); m != nil && anyDigit.MatchString(m[1]) {
			reference = m[1]
			desc = strings.TrimSpace(strings.TrimSuffix(desc, m[0]))
		}

		desc = strings.Join(strings.Fields(desc), " ")
		if len(desc) < 3 {
			continue
		}

		d := models.Draft{
			Date:        date,
			Description: desc,
			Amount:      amount,
			Balance:     balance,
			Reference:   reference,
			IsCredit:    isCredit,
			RawLine:     trimmed,
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
