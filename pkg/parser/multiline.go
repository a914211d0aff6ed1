package parser

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/stparse/stparse/pkg/format"
	"github.com/stparse/stparse/pkg/models"
)

// Wallet apps export each transaction as a group of three lines:
//
//	Swiggy Instamart
//	6 ₹1,540.00
//	Oct 6 Dr
//
// The first line is the merchant, the second carries the day of month
// and the amount, the third repeats the date as "<Mon> <day>" with the
// direction marker. The statement rarely prints a year anywhere, so the
// current year is assumed.
var (
	tripleAmountLine = regexp.MustCompile(`(?i)^(\d{1,2})\s*(?:₹|rs\.?)?\s*([0-9][0-9,]*\.\d{2})\s*(dr|cr)?$`)
	tripleDateLine   = regexp.MustCompile(`(?i)^([a-z]{3})\s+(\d{1,2})\b`)
	drCrMarker       = regexp.MustCompile(`(?i)\b(dr|cr)\b`)
)

func extractMultiLine(text string, _ *models.ColumnMapping) []models.Draft {
	lines := nonEmptyLines(text)
	var drafts []models.Draft

	year := time.Now().Year()

	for i := 0; i+2 < len(lines); {
		desc, amountLine, dateLine := lines[i], lines[i+1], lines[i+2]

		if IsSkipLine(desc) {
			i++
			continue
		}

		am := tripleAmountLine.FindStringSubmatch(amountLine)
		dm := tripleDateLine.FindStringSubmatch(dateLine)
		if am == nil || dm == nil {
			i++
			continue
		}

		date, ok := format.ParseDate(fmt.Sprintf("%s %s %d", dm[2], dm[1], year))
		if !ok {
			i++
			continue
		}

		amount := format.ParseAmount(am[2])
		if !amount.IsPositive() {
			i++
			continue
		}

		// Direction lives on the date line when present, else on the
		// amount line.
		marker := strings.ToLower(am[3])
		if m := drCrMarker.FindString(dateLine); m != "" {
			marker = strings.ToLower(m)
		}
		isCredit := marker == "cr"

		d := models.Draft{
			Date:        date,
			Description: desc,
			Amount:      amount,
			IsCredit:    isCredit,
			RawLine:     desc + " | " + amountLine + " | " + dateLine,
		}
		if isCredit {
			d.Credit = amount
		} else {
			d.Debit = amount
		}
		drafts = append(drafts, d)

		i += 3
	}

	return drafts
}
