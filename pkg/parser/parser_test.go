package parser

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"
	"github.com/stparse/stparse/pkg/models"
)

func testParser(t *testing.T, opts ...Option) *Parser {
	t.Helper()
	return New(log.New(io.Discard), opts...)
}

func assertAmount(t *testing.T, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Errorf("amount = %s, want %s", got, want)
	}
}

func TestParseSingleLineDebit(t *testing.T) {
	text := "HDFC Bank Statement of Accounts\n" +
		"Date Narration Withdrawal Deposit Closing Balance\n" +
		"01/01/2024 Amazon Purchase 500.00\n"

	result := testParser(t).Parse(text)

	if result.StatementType != models.StatementBank {
		t.Errorf("statement type = %s, want bank", result.StatementType)
	}
	if len(result.Transactions) != 1 {
		t.Fatalf("got %d transactions, want 1: %+v", len(result.Transactions), result.Transactions)
	}
	tx := result.Transactions[0]
	if tx.Date != "01/01/2024" {
		t.Errorf("date = %q", tx.Date)
	}
	if tx.Description != "Amazon Purchase" {
		t.Errorf("description = %q", tx.Description)
	}
	if tx.Type != models.TxDebit {
		t.Errorf("type = %s, want debit", tx.Type)
	}
	assertAmount(t, tx.Amount, "500")
}

// A trailing CR marker makes the skip filter reject the line (the "cr"
// keyword), so only the fallback sweep can recover it.
func TestParseCreditLineRecoveredByFallback(t *testing.T) {
	text := "HDFC Bank Statement of Accounts\n" +
		"13/04/2025 11082771581 BBPS Payment received 0 9,720.00 CR\n"

	result := testParser(t).Parse(text)

	if len(result.Transactions) != 1 {
		t.Fatalf("got %d transactions, want 1: %+v", len(result.Transactions), result.Transactions)
	}
	tx := result.Transactions[0]
	if tx.Type != models.TxCredit {
		t.Errorf("type = %s, want credit", tx.Type)
	}
	if tx.Description != "BBPS Payment received" {
		t.Errorf("description = %q", tx.Description)
	}
	assertAmount(t, tx.Amount, "9720")
}

func TestParseFixedWidthGapAnalysis(t *testing.T) {
	text := "HDFC Bank Statement of Accounts\n" +
		"01/01/26  CC REF001  01/01/26  64,065.00            90,855.96\n" +
		"02/01/26  POS AMAZON  02/01/26  1,500.00  89,355.96\n"

	result := testParser(t).Parse(text)

	if len(result.Transactions) != 2 {
		t.Fatalf("got %d transactions, want 2: %+v", len(result.Transactions), result.Transactions)
	}

	credit := result.Transactions[0]
	if credit.Type != models.TxCredit {
		t.Errorf("wide gap should mean credit, got %s", credit.Type)
	}
	assertAmount(t, credit.Amount, "64065")
	assertAmount(t, credit.Balance, "90855.96")
	if credit.Date != "01/01/2026" {
		t.Errorf("date = %q", credit.Date)
	}

	debit := result.Transactions[1]
	if debit.Type != models.TxDebit {
		t.Errorf("adjacent columns without credit keyword should mean debit, got %s", debit.Type)
	}
	assertAmount(t, debit.Amount, "1500")
	assertAmount(t, debit.Balance, "89355.96")
}

func TestParseCSVStatement(t *testing.T) {
	text := "Account Statement\n" +
		"Date,Narration,Chq/Ref No,Value Date,Withdrawal Amt,Deposit Amt,Closing Balance\n" +
		"01/01/2024,NEFT CR-AXIS BANK,N0123456789,01/01/2024,,5000.00,15000.00\n" +
		"02/01/2024,POS PURCHASE SWIGGY,P9876543210,02/01/2024,350.00,,14650.00\n"

	result := testParser(t).Parse(text)

	if len(result.Transactions) != 2 {
		t.Fatalf("got %d transactions, want 2: %+v", len(result.Transactions), result.Transactions)
	}

	neft := result.Transactions[0]
	if neft.Type != models.TxCredit {
		t.Errorf("deposit column should mean credit, got %s", neft.Type)
	}
	if neft.Reference != "N0123456789" {
		t.Errorf("reference = %q", neft.Reference)
	}
	assertAmount(t, neft.Amount, "5000")
	assertAmount(t, neft.Balance, "15000")

	pos := result.Transactions[1]
	if pos.Type != models.TxDebit {
		t.Errorf("withdrawal column should mean debit, got %s", pos.Type)
	}
	assertAmount(t, pos.Amount, "350")
}

func TestParseUPITriples(t *testing.T) {
	text := "AU Bank UPI Transaction History\n" +
		"Swiggy Instamart\n" +
		"6 ₹1,540.00\n" +
		"Oct 6 Dr\n" +
		"Salary Refund\n" +
		"7 ₹2,000.00\n" +
		"Oct 7 Cr\n"

	result := testParser(t).Parse(text)

	if result.StatementType != models.StatementUPI {
		t.Fatalf("statement type = %s, want upi", result.StatementType)
	}
	if len(result.Transactions) != 2 {
		t.Fatalf("got %d transactions, want 2: %+v", len(result.Transactions), result.Transactions)
	}
	if result.Transactions[0].Type != models.TxDebit {
		t.Errorf("first triple is a debit, got %s", result.Transactions[0].Type)
	}
	assertAmount(t, result.Transactions[0].Amount, "1540")
	if result.Transactions[1].Type != models.TxCredit {
		t.Errorf("second triple is a credit, got %s", result.Transactions[1].Type)
	}
}

func TestParseCreditCardStatement(t *testing.T) {
	text := "HDFC Credit Card Statement\n" +
		"Card Number: 4523 XXXX XXXX 9010\n" +
		"15/03/2024 14:22:31 AMAZON RETAIL IN 2,499.00\n" +
		"16/03/2024 09:10:00 PAYMENT RECEIVED ONLINE 5,000.00 Cr\n"

	result := testParser(t).Parse(text)

	if result.StatementType != models.StatementCreditCard {
		t.Fatalf("statement type = %s, want credit_card", result.StatementType)
	}
	if len(result.Transactions) != 2 {
		t.Fatalf("got %d transactions, want 2: %+v", len(result.Transactions), result.Transactions)
	}
	for _, tx := range result.Transactions {
		if tx.CardNo != "4523XXXXXXXX9010" {
			t.Errorf("card no = %q", tx.CardNo)
		}
	}
	if result.Transactions[0].Type != models.TxDebit {
		t.Errorf("unmarked card row is a debit")
	}
	if result.Transactions[1].Type != models.TxCredit {
		t.Errorf("Cr-marked card row is a credit")
	}
}

func TestParseEmptyInput(t *testing.T) {
	for _, text := range []string{"", "   \n\n  ", "no transactions here at all"} {
		result := testParser(t).Parse(text)
		if result == nil {
			t.Fatal("nil result")
		}
		if len(result.Transactions) != 0 {
			t.Errorf("input %q: got %d transactions, want 0", text, len(result.Transactions))
		}
	}
}

func TestParseAssistRunsOnlyWhenEmpty(t *testing.T) {
	calls := 0
	assist := func(text string, _ *models.ColumnMapping) []models.Draft {
		calls++
		return []models.Draft{{
			Date:        "01/01/2024",
			Description: "Recovered Transaction",
			Amount:      decimal.NewFromInt(100),
			Debit:       decimal.NewFromInt(100),
		}}
	}

	p := testParser(t, WithAssist(assist))

	// Parseable input: assist must not fire.
	p.Parse("HDFC Bank Statement of Accounts\n01/01/2024 Amazon Purchase 500.00\n")
	if calls != 0 {
		t.Fatalf("assist fired on parseable input")
	}

	// Unreadable input: assist fires and its draft is used.
	result := p.Parse("bank statement\ngarbled beyond recognition\n")
	if calls != 1 {
		t.Fatalf("assist calls = %d, want 1", calls)
	}
	if len(result.Transactions) != 1 || result.Transactions[0].Description != "Recovered Transaction" {
		t.Errorf("assist draft not promoted: %+v", result.Transactions)
	}
}

func TestParseDeduplicatesAcrossStrategies(t *testing.T) {
	// The fallback re-derives the same line the single-line strategy
	// already extracted; only one transaction may survive.
	text := "Bank Statement\n" +
		"01/01/2024 Coffee Shop 120.00\n"

	result := testParser(t).Parse(text)
	if len(result.Transactions) != 1 {
		t.Fatalf("got %d transactions, want 1: %+v", len(result.Transactions), result.Transactions)
	}
}

func TestParseSummary(t *testing.T) {
	text := "Account Statement\n" +
		"Date,Narration,Chq/Ref No,Value Date,Withdrawal Amt,Deposit Amt,Closing Balance\n" +
		"01/01/2024,NEFT CR-AXIS BANK,N0123456789,01/01/2024,,5000.00,15000.00\n" +
		"02/01/2024,POS PURCHASE SWIGGY,P9876543210,02/01/2024,350.00,,14650.00\n"

	s := testParser(t).Parse(text).Summary()
	if s.TotalTransactions != 2 {
		t.Fatalf("total = %d, want 2", s.TotalTransactions)
	}
	assertAmount(t, s.TotalCredits, "5000")
	assertAmount(t, s.TotalDebits, "350")
	assertAmount(t, s.NetAmount, "4650")
}
