package parser

import (
	"testing"

	"github.com/stparse/stparse/pkg/models"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		text string
		want models.StatementType
	}{
		{
			"bank",
			"HDFC Bank Statement of Accounts\nDate Narration Withdrawal Deposit Closing Balance\n",
			models.StatementBank,
		},
		{
			"credit card",
			"Credit Card Statement\nCard Number: 4523 XXXX XXXX 9010\nTotal Amount Due 12,000.00\n",
			models.StatementCreditCard,
		},
		{
			"upi",
			"PhonePe Transaction History\nUPI Ref: 403921884729\n",
			models.StatementUPI,
		},
		{
			"upi by triple shape",
			"Merchant History\nSwiggy Instamart\n6 ₹1,540.00\nOct 6 Dr\n",
			models.StatementUPI,
		},
		{
			"unknown",
			"quarterly newsletter\nnothing financial here\n",
			models.StatementUnknown,
		},
		{
			// Both bank and card vocabulary present; bank has priority.
			"bank beats card",
			"Bank Statement\nWithdrawal Deposit\nCredit Card Payment 4,000.00\n",
			models.StatementBank,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, _ := Classify(tc.text)
			if got != tc.want {
				t.Errorf("Classify(%q) = %s, want %s", tc.name, got, tc.want)
			}
		})
	}
}

func TestClassifyScores(t *testing.T) {
	_, scores := Classify("HDFC Bank Account Statement\nWithdrawal Amt Deposit Amt Closing Balance\n")
	if scores.Bank <= scores.UPI {
		t.Errorf("bank score %d should beat upi score %d", scores.Bank, scores.UPI)
	}
}

func TestMaskedCardNumber(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"Card Number: 4523 XXXX XXXX 9010", "4523XXXXXXXX9010"},
		{"Card No. 1234 5678 9012 3456", "1234567890123456"},
		{"no card here", ""},
	}
	for _, tc := range cases {
		if got := MaskedCardNumber(tc.text); got != tc.want {
			t.Errorf("MaskedCardNumber(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}
