package parser

import (
	"regexp"
	"strings"

	"github.com/stparse/stparse/pkg/format"
	"github.com/stparse/stparse/pkg/models"
)

var (
	// HDFC-style card rows: date, timestamp, merchant, amount, optional
	// Cr marker.
	cardLinePattern = regexp.MustCompile(`(?i)^(\d{1,2}/\d{1,2}/\d{2,4})\s+\d{2}:\d{2}(?::\d{2})?\s+(.+?)\s+([0-9][0-9,]*(?:\.\d{2})?)\s*(cr)?$`)

	// AU-style wallet rows: "6 Oct 25 SWIGGY INSTAMART 1,540.00 Dr".
	upiLinePattern = regexp.MustCompile(`(?i)^(\d{1,2}\s+[a-z]{3}\s+\d{2,4})\s+(.+?)\s+([0-9][0-9,]*\.\d{2})\s*(dr|cr)?$`)
)

// extractSingleLine handles the generic one-transaction-per-line
// layout: a date somewhere in the line and the amount in the right
// half. It respects the skip filter, so boilerplate lines never reach
// it.
func extractSingleLine(text string, _ *models.ColumnMapping) []models.Draft {
	var drafts []models.Draft

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if IsSkipLine(line) {
			continue
		}
		if d, ok := parseGenericLine(line); ok {
			drafts = append(drafts, d)
		}
	}

	return drafts
}

func parseGenericLine(line string) (models.Draft, bool) {
	date, _, dateEnd, ok := findDate(line)
	if !ok {
		return models.Draft{}, false
	}

	// A second date means a posting/value date pair; that layout belongs
	// to the fixed-width strategy, which knows the balance column.
	if dateSlashToken.MatchString(line[dateEnd:]) {
		return models.Draft{}, false
	}

	matches := amountToken.FindAllStringSubmatchIndex(line, -1)
	if matches == nil {
		return models.Draft{}, false
	}

	// The transaction amount sits in the right half of the line; tokens
	// near the start are dates, reference numbers or serials. Prefer the
	// last such token, falling back to the first one past the date.
	mid := len(line) / 2
	var m []int
	for i := len(matches) - 1; i >= 0; i-- {
		if matches[i][2] > mid {
			m = matches[i]
			break
		}
	}
	if m == nil {
		for _, cand := range matches {
			if cand[2] >= dateEnd {
				m = cand
				break
			}
		}
	}
	if m == nil {
		return models.Draft{}, false
	}

	amount := format.ParseAmount(line[m[2]:m[3]]).Abs()
	if !amount.IsPositive() {
		return models.Draft{}, false
	}

	isCredit := false
	if m[4] >= 0 && strings.EqualFold(line[m[4]:m[5]], "cr") {
		isCredit = true
	}

	desc := cleanSpan(line[dateEnd:m[0]])
	if format.MeaningfulLen(desc) < 3 {
		return models.Draft{}, false
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
	return d, true
}

// extractCardLine handles timestamped credit card rows. Card statements
// print debits unmarked and tag credits with a trailing "Cr".
func extractCardLine(text string, _ *models.ColumnMapping) []models.Draft {
	var drafts []models.Draft

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if IsSkipLine(line) {
			continue
		}
		m := cardLinePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		date, ok := format.ParseDate(m[1])
		if !ok {
			continue
		}
		amount := format.ParseAmount(m[3]).Abs()
		if !amount.IsPositive() {
			continue
		}
		desc := strings.TrimSpace(m[2])
		if format.MeaningfulLen(desc) < 3 {
			continue
		}

		isCredit := m[4] != ""
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

// extractUPILine handles flattened wallet rows where the triple layout
// collapsed into one line.
func extractUPILine(text string, _ *models.ColumnMapping) []models.Draft {
	var drafts []models.Draft

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if IsSkipLine(line) {
			continue
		}
		m := upiLinePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		date, ok := format.ParseDate(m[1])
		if !ok {
			continue
		}
		amount := format.ParseAmount(m[3]).Abs()
		if !amount.IsPositive() {
			continue
		}
		desc := strings.TrimSpace(m[2])
		if format.MeaningfulLen(desc) < 3 {
			continue
		}

		isCredit := strings.EqualFold(m[4], "cr")
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
