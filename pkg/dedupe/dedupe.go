// Package dedupe removes transactions that several extraction
// strategies derived from the same source line. Suppression is
// conservative: when two records could plausibly be distinct real
// transactions, both are kept.
package dedupe

import (
	"strings"
	"time"

	"github.com/stparse/stparse/pkg/format"
	"github.com/stparse/stparse/pkg/models"
)

// Deduplicate returns the transactions with near-duplicates removed.
// The pass is stable: input order is preserved and the first occurrence
// of a duplicate group wins. Running it on already-deduplicated input
// is a no-op.
func Deduplicate(txs []models.Transaction) []models.Transaction {
	out := make([]models.Transaction, 0, len(txs))
	accepted := make(map[string][]int) // key -> indices into out

	for _, tx := range txs {
		k := key(&tx)
		dup := false
		for _, i := range accepted[k] {
			if isDuplicate(&tx, &out[i]) {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		out = append(out, tx)
		accepted[k] = append(accepted[k], len(out)-1)
	}

	return out
}

// key buckets candidates by exact cent amount and date; only records in
// the same bucket are ever compared.
func key(tx *models.Transaction) string {
	return tx.Amount.Round(2).String() + "|" + tx.Date
}

// isDuplicate decides whether two same-bucket transactions are the same
// real-world event. Distinct references or distinct narrations prove
// the records are different and always keep both.
func isDuplicate(a, b *models.Transaction) bool {
	if a.Reference != "" && b.Reference != "" && a.Reference != b.Reference {
		return false
	}
	if a.Narration != "" && b.Narration != "" &&
		!strings.EqualFold(a.Narration, b.Narration) {
		return false
	}
	if !withinOneDay(a.Date, b.Date) {
		return false
	}

	da := strings.ToLower(strings.TrimSpace(a.Description))
	db := strings.ToLower(strings.TrimSpace(b.Description))
	if da == db {
		return true
	}
	// One strategy often captures a longer span of the same line.
	return strings.Contains(da, db) || strings.Contains(db, da)
}

func withinOneDay(a, b string) bool {
	ta, oka := format.DateTime(a)
	tb, okb := format.DateTime(b)
	if !oka || !okb {
		return true // bucketing already matched the raw strings
	}
	diff := ta.Sub(tb)
	if diff < 0 {
		diff = -diff
	}
	return diff <= 24*time.Hour
}
