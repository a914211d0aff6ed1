package models

import "github.com/shopspring/decimal"

// StatementType identifies the kind of statement the text came from.
type StatementType string

const (
	StatementBank       StatementType = "bank"
	StatementCreditCard StatementType = "credit_card"
	StatementUPI        StatementType = "upi"
	StatementUnknown    StatementType = "unknown"
)

// TxType is the direction of a transaction.
type TxType string

const (
	TxCredit TxType = "credit"
	TxDebit  TxType = "debit"
)

// Draft is an unvalidated candidate transaction produced by a single
// extraction strategy. It is either promoted to a Transaction or
// discarded by validation; it never outlives one parse call.
type Draft struct {
	Date        string // canonical DD/MM/YYYY
	Description string
	Amount      decimal.Decimal
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Balance     decimal.Decimal
	Reference   string
	IsCredit    bool
	RawLine     string // original source line, for diagnostics
}

// Transaction is a validated, normalized output record.
type Transaction struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        TxType          `json:"type"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
	Reference   string          `json:"reference,omitempty"`
	CardNo      string          `json:"card_no,omitempty"`
	UPIRef      string          `json:"upi_ref,omitempty"`
	ValueDate   string          `json:"value_date"`
	Merchant    string          `json:"merchant"`
	// Narration is the raw source-column text when it differs from the
	// normalized description; empty otherwise.
	Narration string `json:"narration,omitempty"`
}

// Signed returns the transaction amount, negative for debits.
func (t *Transaction) Signed() decimal.Decimal {
	if t.Type == TxCredit {
		return t.Amount
	}
	return t.Amount.Neg()
}
