// Package csv renders parsed transactions as CSV for spreadsheet and
// accounting-tool import.
package csv

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/stparse/stparse/pkg/models"
)

// FilterFunc decides whether a transaction is included in the output.
// A nil filter includes everything.
type FilterFunc func(*models.Transaction) bool

var header = []string{"date", "description", "type", "amount", "debit", "credit", "balance", "reference"}

// Render writes the transactions as CSV with a header row.
func Render(txs []models.Transaction, filter FilterFunc) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for i := range txs {
		tx := &txs[i]
		if filter != nil && !filter(tx) {
			continue
		}
		record := []string{
			tx.Date,
			tx.Description,
			string(tx.Type),
			tx.Amount.StringFixed(2),
			tx.Debit.StringFixed(2),
			tx.Credit.StringFixed(2),
			tx.Balance.StringFixed(2),
			tx.Reference,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
