package parser

import "testing"

func TestIsSkipLine(t *testing.T) {
	skip := []string{
		"",
		"   ",
		"ab",
		"--------------------",
		"==== ====",
		"Page 3",
		"continued",
		"Statement Period: 01/01/2024 to 31/01/2024",
		"Opening Balance 12,345.00",
		"Date  Narration  Chq/Ref No  Value Date  Withdrawal  Deposit",
		"Thank you for banking with us",
		"Customer ID: 998877",
	}
	for _, line := range skip {
		if !IsSkipLine(line) {
			t.Errorf("expected skip: %q", line)
		}
	}

	keep := []string{
		"01/01/2024 Amazon Purchase 500.00",
		"17/03/2025 PIX TRANSF ID_A15/03 2,327.00",
		// "CREDCLUB" must not trigger the "cr"/"credit" keywords.
		"01/02/2024 UPI-CREDCLUB payment 1,200.00",
	}
	for _, line := range keep {
		if IsSkipLine(line) {
			t.Errorf("expected keep: %q", line)
		}
	}
}
