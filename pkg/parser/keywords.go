package parser

import "github.com/stparse/stparse/pkg/models"

// Keyword tables are process-wide constants; nothing mutates them after
// init.

// skipKeywords mark boilerplate lines: headers, summaries, disclaimers,
// contact blocks. Matching is word-bounded (see skip.go).
var skipKeywords = []string{
	"statement date", "payment due", "credit limit", "available balance",
	"opening balance", "closing balance", "total amount", "minimum amount",
	"personal details", "address", "email", "phone", "customer id",
	"account number", "branch code", "product code", "ifsc",
	"micr code", "statement from", "statement to", "period",
	"thank you", "regards", "sincerely",
	"reward points", "summary", "transaction details", "transaction date",
	"description", "amount", "balance", "reference", "chq",
	"value date", "withdrawal", "deposit", "narration", "cr",
	"debit", "credit", "cheque", "serial",
	"page", "page no", "continued", "end",
	"account summary", "card summary", "transaction summary",
	"fees", "charges", "interest", "gst", "tax",
	"important", "messages", "notes", "terms", "conditions",
	"reward", "points", "earnings", "bonus", "cashback",
	"emi", "flexipay", "encash", "balance transfer",
	"mobile", "landline", "website", "www", "http", "fax",
	"your", "customer", "member", "client", "holder",
	"beneficiary", "payer", "recipient", "sender",
	"transaction type", "transaction id", "txn id",
	"ref no", "reference number", "transaction reference",
	"card holder", "cardholder", "card no", "card number",
	"statement period", "billing period", "due date", "paid date",
}

// fieldVariants maps each logical column to the header spellings seen
// across bank, card and wallet statements.
var fieldVariants = map[models.Field][]string{
	models.FieldDate:        {"date", "posting", "transaction", "dt"},
	models.FieldDescription: {"description", "narration", "merchant", "payee", "particulars"},
	models.FieldDebit:       {"debit", "withdrawal", "dr", "amount"},
	models.FieldCredit:      {"credit", "deposit", "cr"},
	models.FieldBalance:     {"balance", "closing"},
	models.FieldReference:   {"reference", "ref", "chq", "txn"},
}

// creditKeywords are description tokens that mark a transaction as a
// credit even when the amount was read from a debit-positioned column.
var creditKeywords = []string{
	"CR", "CRED", "CREDIT", "FT-", "DEPOSIT", "CREDCLUB",
	"CRED.C", "NEFT", "RTGS", "IMPS", "TRANSFER IN", "CREDITED",
}

// typeKeywords holds the three scoring tiers per statement type:
// header phrases (weight 3), column tokens (weight 2), free-text
// indicators (weight 1).
type typeKeywords struct {
	header  []string
	columns []string
	text    []string
}

var bankKeywords = typeKeywords{
	header: []string{"statement of accounts", "bank statement", "account statement",
		"account branch", "account no", "account number"},
	columns: []string{"withdrawal amt", "deposit amt", "withdrawal", "deposit",
		"closing balance", "balance", "narration"},
	text: []string{"hdfc bank", "icici bank", "sbi", "axis bank", "kotak bank",
		"yes bank", "state bank", "bank ltd"},
}

var creditCardKeywords = typeKeywords{
	header: []string{"credit card", "card statement", "card no", "card number",
		"card summary", "total amount due", "minimum amount due"},
	columns: []string{"transaction details", "amount", "dr", "cr", "debit", "credit"},
	text:    []string{"credit card", "card holder", "cardsummary"},
}

var upiKeywords = typeKeywords{
	header: []string{"upi", "phonepe", "google pay", "gpay", "payment app",
		"wallet statement", "transaction history"},
	columns: []string{"merchant", "transaction", "amount", "reference"},
	text:    []string{"ixigo", "au bank", "aubl", "phonepe", "googlepay", "upi"},
}
