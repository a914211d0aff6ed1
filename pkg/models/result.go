package models

import "github.com/shopspring/decimal"

// Field is a logical column in a statement table.
type Field string

const (
	FieldDate        Field = "date"
	FieldDescription Field = "description"
	FieldDebit       Field = "debit"
	FieldCredit      Field = "credit"
	FieldBalance     Field = "balance"
	FieldReference   Field = "reference"
)

// DelimiterSpace marks a positional (fixed-width) layout where columns
// are separated by runs of spaces rather than an explicit delimiter.
const DelimiterSpace = " "

// ColumnMapping maps logical fields to zero-based column indices for one
// statement. It is built once per parse call and read-only afterwards.
type ColumnMapping struct {
	Delimiter  string
	Columns    map[Field]int
	HeaderLine int
}

// Has reports whether the field was found in the header row.
func (m *ColumnMapping) Has(f Field) bool {
	if m == nil || m.Columns == nil {
		return false
	}
	_, ok := m.Columns[f]
	return ok
}

// Index returns the column index for a field, or -1 when unmapped.
func (m *ColumnMapping) Index(f Field) int {
	if !m.Has(f) {
		return -1
	}
	return m.Columns[f]
}

// Result is the aggregate outcome of one parse call. Transactions keep
// document order except where deduplication removed later duplicates.
// Errors are hard failures that excluded a draft; warnings are soft
// issues that did not.
type Result struct {
	Transactions  []Transaction  `json:"transactions"`
	StatementType StatementType  `json:"statement_type"`
	Errors        []string       `json:"errors"`
	Warnings      []string       `json:"warnings"`
	Metadata      map[string]any `json:"metadata"`
}

// Summary is the small aggregate handed to export layers.
type Summary struct {
	TotalTransactions int             `json:"total_transactions"`
	TotalCredits      decimal.Decimal `json:"total_credits"`
	TotalDebits       decimal.Decimal `json:"total_debits"`
	NetAmount         decimal.Decimal `json:"net_amount"`
}

// Summary computes totals from the explicit debit/credit fields, falling
// back to amount+type when both are zero.
func (r *Result) Summary() Summary {
	s := Summary{
		TotalTransactions: len(r.Transactions),
		TotalCredits:      decimal.Zero,
		TotalDebits:       decimal.Zero,
	}
	for i := range r.Transactions {
		tx := &r.Transactions[i]
		credit := tx.Credit
		debit := tx.Debit
		if credit.IsZero() && debit.IsZero() {
			if tx.Type == TxCredit {
				credit = tx.Amount
			} else {
				debit = tx.Amount
			}
		}
		s.TotalCredits = s.TotalCredits.Add(credit)
		s.TotalDebits = s.TotalDebits.Add(debit)
	}
	s.NetAmount = s.TotalCredits.Sub(s.TotalDebits)
	return s
}
