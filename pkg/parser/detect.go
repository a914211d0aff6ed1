package parser

import (
	"regexp"
	"strings"

	"github.com/stparse/stparse/pkg/models"
)

// Scoring weights for the three keyword tiers.
const (
	weightHeader  = 3
	weightColumns = 2
	weightText    = 1
)

var (
	accountNumberPattern = regexp.MustCompile(`(?i)account\s*(no\.?|number)\s*[:\s]*\d{10,}`)
	inrAmountPattern     = regexp.MustCompile(`INR\s*[0-9,]+\.\d{2}`)
	maskedCardPattern    = regexp.MustCompile(`(?i)card\s*(?:no\.?|number)\s*[:\s]*([0-9Xx*]{4}(?:\s*[0-9Xx*]{4}){2,3})`)
	// Merchant line, then "<day> <amount>", then "<Mon> <day> Dr|Cr" —
	// the grouped wallet layout.
	merchantTriplePattern = regexp.MustCompile(`(?s)[A-Z][a-z]+\s+[A-Z][a-z]+.*\n.*\d{1,2}\s*₹?.*\n.*[A-Za-z]{3}\s+\d{1,2}`)
)

// TypeScores holds the per-type keyword scores, kept in Result metadata
// for diagnostics.
type TypeScores struct {
	Bank       int `json:"bank"`
	CreditCard int `json:"credit_card"`
	UPI        int `json:"upi"`
}

// Classify decides which statement type the text belongs to. Selection
// is by canParse predicate in fixed priority order bank, credit card,
// UPI; ties resolve by that order rather than by raw score, which keeps
// the behavior predictable. The scores are computed for diagnostics.
func Classify(text string) (models.StatementType, TypeScores) {
	lower := strings.ToLower(text)

	scores := TypeScores{
		Bank:       scoreBank(lower),
		CreditCard: scoreCreditCard(lower),
		UPI:        scoreUPI(lower, text),
	}

	switch {
	case canParseBank(lower):
		return models.StatementBank, scores
	case canParseCreditCard(lower):
		return models.StatementCreditCard, scores
	case canParseUPI(lower, text):
		return models.StatementUPI, scores
	default:
		return models.StatementUnknown, scores
	}
}

func scoreKeywords(lower string, kw typeKeywords) int {
	score := 0
	for _, h := range kw.header {
		if strings.Contains(lower, h) {
			score += weightHeader
		}
	}
	for _, c := range kw.columns {
		if strings.Contains(lower, c) {
			score += weightColumns
		}
	}
	for _, t := range kw.text {
		if strings.Contains(lower, t) {
			score += weightText
		}
	}
	return score
}

func scoreBank(lower string) int {
	score := scoreKeywords(lower, bankKeywords)

	if accountNumberPattern.MatchString(lower) {
		score += 2
	}
	// Paired withdrawal/deposit tokens are the strongest bank signal.
	if strings.Contains(lower, "withdrawal") && strings.Contains(lower, "deposit") {
		score += 3
	}
	if inrAmountPattern.MatchString(strings.ToUpper(lower)) {
		score += 3
	}
	if strings.Contains(lower, "debits") && strings.Contains(lower, "credits") {
		score += 3
	}
	return score
}

func scoreCreditCard(lower string) int {
	score := scoreKeywords(lower, creditCardKeywords)

	if strings.Contains(lower, "total amount due") || strings.Contains(lower, "minimum amount due") {
		score += 3
	}
	if maskedCardPattern.MatchString(lower) {
		score += 3
	}
	// Debit/credit pairs also appear in bank statements; weak signal.
	if strings.Contains(lower, "debit") && strings.Contains(lower, "credit") {
		score++
	}
	return score
}

func scoreUPI(lower, text string) int {
	score := scoreKeywords(lower, upiKeywords)

	for _, kw := range []string{"upi ref", "upi reference", "upi id", "upi transaction"} {
		if strings.Contains(lower, kw) {
			score += 3
			break
		}
	}
	if merchantTriplePattern.MatchString(text) {
		score += 3
	}
	return score
}

func canParseBank(lower string) bool {
	for _, indicator := range []string{
		"withdrawal amt", "deposit amt", "closing balance",
		"account branch", "withdrawal", "deposit",
		"statement of accounts", "bank statement",
	} {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}

func canParseCreditCard(lower string) bool {
	for _, indicator := range []string{
		"credit card", "card statement", "card number",
		"total amount due", "minimum amount due",
		"card summary", "transaction details",
	} {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}

func canParseUPI(lower, text string) bool {
	for _, indicator := range []string{
		"upi", "phonepe", "google pay", "gpay", "phone pe",
		"ixigo", "au bank", "aubl", "au credit",
		"payment received", "payment sent",
		"wallet", "payment app",
	} {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return hasMerchantTriple(text)
}

// hasMerchantTriple looks for at least one grouped three-line
// transaction: description, "<day> <amount>", "<Mon> <day> [Dr|Cr]".
func hasMerchantTriple(text string) bool {
	lines := nonEmptyLines(text)
	for i := 0; i+2 < len(lines); i++ {
		if tripleAmountLine.MatchString(lines[i+1]) && tripleDateLine.MatchString(lines[i+2]) {
			return true
		}
	}
	return false
}

// MaskedCardNumber extracts a masked card number from the statement
// header, or "" when absent.
func MaskedCardNumber(text string) string {
	m := maskedCardPattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.Join(strings.Fields(m[1]), "")
}

func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
