package validate

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stparse/stparse/pkg/models"
)

func draft() models.Draft {
	return models.Draft{
		Date:        "01/01/2024",
		Description: "Amazon Purchase",
		Amount:      decimal.NewFromInt(500),
		Debit:       decimal.NewFromInt(500),
	}
}

func TestCheckValid(t *testing.T) {
	d := draft()
	r := Check(&d)
	if !r.Valid {
		t.Fatalf("expected valid, errors = %v", r.Errors)
	}
	if len(r.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", r.Warnings)
	}
}

func TestCheckMissingDate(t *testing.T) {
	d := draft()
	d.Date = ""
	if r := Check(&d); r.Valid {
		t.Error("expected invalid without date")
	}
}

func TestCheckDescription(t *testing.T) {
	cases := []string{"", "ab", "12345", "1 2/3"}
	for _, desc := range cases {
		d := draft()
		d.Description = desc
		if r := Check(&d); r.Valid {
			t.Errorf("description %q: expected invalid", desc)
		}
	}
}

func TestCheckNoAmount(t *testing.T) {
	d := draft()
	d.Amount = decimal.Zero
	d.Debit = decimal.Zero
	d.Credit = decimal.Zero
	if r := Check(&d); r.Valid {
		t.Error("expected invalid with no amounts at all")
	}
}

func TestCheckWarnings(t *testing.T) {
	d := draft()
	d.Amount = decimal.NewFromInt(20_000_000)
	d.Debit = d.Amount
	r := Check(&d)
	if !r.Valid {
		t.Fatalf("ceiling breach must stay a warning, errors = %v", r.Errors)
	}
	if len(r.Warnings) == 0 {
		t.Error("expected ceiling warning")
	}

	d = draft()
	d.Date = "2024-01-01"
	r = Check(&d)
	if !r.Valid {
		t.Fatalf("odd date format must stay a warning, errors = %v", r.Errors)
	}
	if len(r.Warnings) == 0 {
		t.Error("expected date format warning")
	}
}

func TestCheckNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on nil draft")
		}
	}()
	Check(nil)
}
