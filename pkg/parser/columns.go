package parser

import (
	"strings"

	"github.com/stparse/stparse/pkg/models"
)

// headerScanLines bounds the header search; statements put the table
// header well before this.
const headerScanLines = 50

// Minimum length for a line to be considered a header candidate. Short
// noise lines otherwise match on stray keywords.
const minHeaderLen = 20

// fieldOrder fixes the assignment order so detection is deterministic.
var fieldOrder = []models.Field{
	models.FieldDate,
	models.FieldDescription,
	models.FieldDebit,
	models.FieldCredit,
	models.FieldBalance,
	models.FieldReference,
}

// DetectColumns scans the leading lines of a statement for a header row
// and returns the delimiter plus the field-to-column mapping. A line is
// a header candidate when splitting it by the guessed delimiter matches
// at least 3 distinct logical fields. The first match wins per field;
// nothing is remapped afterwards. When no header is found the mapping
// is empty and extraction falls through to the positional strategies.
func DetectColumns(text string) *models.ColumnMapping {
	lines := strings.Split(text, "\n")
	limit := len(lines)
	if limit > headerScanLines {
		limit = headerScanLines
	}

	for i := 0; i < limit; i++ {
		line := strings.TrimSpace(lines[i])
		if len(line) < minHeaderLen {
			continue
		}

		delim := guessDelimiter(line)

		var cols map[models.Field]int
		if delim == models.DelimiterSpace {
			cols = mapColumnsByPosition(line)
		} else {
			cols = mapColumns(line, delim)
		}

		if len(cols) >= 3 {
			return &models.ColumnMapping{
				Delimiter:  delim,
				Columns:    cols,
				HeaderLine: i,
			}
		}
	}

	return &models.ColumnMapping{
		Delimiter:  models.DelimiterSpace,
		Columns:    map[models.Field]int{},
		HeaderLine: -1,
	}
}

// guessDelimiter picks the most frequent of tab, pipe, tilde and comma.
// Ties resolve in that order. A line with none of them is positional.
func guessDelimiter(line string) string {
	best := models.DelimiterSpace
	bestCount := 0
	for _, delim := range []string{"\t", "|", "~", ","} {
		if n := strings.Count(line, delim); n > bestCount {
			best = delim
			bestCount = n
		}
	}
	return best
}

// mapColumns assigns fields to column indices for delimited headers. A
// column may satisfy more than one field (a combined "Debit/Credit"
// column), but a field is never reassigned.
func mapColumns(header, delim string) map[models.Field]int {
	parts := strings.Split(header, delim)
	mapping := make(map[models.Field]int)

	for i, part := range parts {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		for _, field := range fieldOrder {
			if _, done := mapping[field]; done {
				continue
			}
			for _, variant := range fieldVariants[field] {
				if strings.Contains(part, variant) {
					mapping[field] = i
					break
				}
			}
		}
	}

	return mapping
}

// mapColumnsByPosition approximates column indices by token position in
// a space-separated header. Positional layouts lose the alignment that
// defined the columns, so this is best-effort only.
func mapColumnsByPosition(header string) map[models.Field]int {
	mapping := make(map[models.Field]int)

	for i, word := range strings.Fields(header) {
		word = strings.ToLower(strings.Trim(word, ".,:-_"))

		var field models.Field
		switch word {
		case "date", "dt", "posting":
			field = models.FieldDate
		case "description", "narration", "particulars", "merchant":
			field = models.FieldDescription
		case "withdrawal", "debit", "dr", "amount":
			field = models.FieldDebit
		case "deposit", "credit", "cr":
			field = models.FieldCredit
		case "balance", "closing":
			field = models.FieldBalance
		case "reference", "ref", "chq", "txn":
			field = models.FieldReference
		default:
			continue
		}

		if _, done := mapping[field]; !done {
			mapping[field] = i
		}
	}

	return mapping
}
