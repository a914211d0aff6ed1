package csv

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stparse/stparse/pkg/models"
)

func sample() []models.Transaction {
	return []models.Transaction{
		{
			Date:        "01/01/2024",
			Description: "Amazon, Retail",
			Type:        models.TxDebit,
			Amount:      decimal.NewFromInt(500),
			Debit:       decimal.NewFromInt(500),
		},
		{
			Date:        "02/01/2024",
			Description: "Salary",
			Type:        models.TxCredit,
			Amount:      decimal.NewFromInt(50000),
			Credit:      decimal.NewFromInt(50000),
		},
	}
}

func TestRender(t *testing.T) {
	out, err := Render(sample(), nil)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2 rows:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "date,description,type") {
		t.Errorf("bad header: %q", lines[0])
	}
	// The comma in the description must be quoted, not split.
	if !strings.Contains(lines[1], `"Amazon, Retail"`) {
		t.Errorf("description not quoted: %q", lines[1])
	}
	if !strings.Contains(lines[2], "50000.00") {
		t.Errorf("amount not fixed-point: %q", lines[2])
	}
}

func TestRenderFiltered(t *testing.T) {
	credits := func(tx *models.Transaction) bool { return tx.Type == models.TxCredit }
	out, err := Render(sample(), credits)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want header + 1 row:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[1], "Salary") {
		t.Errorf("wrong row survived: %q", lines[1])
	}
}
