package parser

import (
	"testing"

	"github.com/stparse/stparse/pkg/models"
)

func TestDetectColumnsCSV(t *testing.T) {
	text := "Account Statement\n" +
		"Date,Narration,Chq/Ref No,Value Date,Withdrawal Amt,Deposit Amt,Closing Balance\n" +
		"01/01/2024,NEFT TRANSFER,REF0012345,01/01/2024,,5000.00,15000.00\n"

	mapping := DetectColumns(text)
	if mapping.Delimiter != "," {
		t.Fatalf("delimiter = %q, want comma", mapping.Delimiter)
	}
	if mapping.HeaderLine != 1 {
		t.Errorf("header line = %d, want 1", mapping.HeaderLine)
	}

	want := map[models.Field]int{
		models.FieldDate:        0,
		models.FieldDescription: 1,
		models.FieldReference:   2,
		models.FieldDebit:       4,
		models.FieldCredit:      5,
		models.FieldBalance:     6,
	}
	for field, idx := range want {
		if got := mapping.Index(field); got != idx {
			t.Errorf("field %s mapped to %d, want %d", field, got, idx)
		}
	}
}

func TestDetectColumnsPipe(t *testing.T) {
	text := "Date | Description | Debit | Credit | Balance\n"
	mapping := DetectColumns(text)
	if mapping.Delimiter != "|" {
		t.Fatalf("delimiter = %q, want pipe", mapping.Delimiter)
	}
	if !mapping.Has(models.FieldDate) || !mapping.Has(models.FieldDebit) || !mapping.Has(models.FieldBalance) {
		t.Errorf("missing fields in mapping: %+v", mapping.Columns)
	}
}

func TestDetectColumnsPositional(t *testing.T) {
	text := "Date      Narration                  Withdrawal   Deposit    Balance\n"
	mapping := DetectColumns(text)
	if mapping.Delimiter != models.DelimiterSpace {
		t.Fatalf("delimiter = %q, want positional", mapping.Delimiter)
	}
	if mapping.Index(models.FieldDate) != 0 || mapping.Index(models.FieldDescription) != 1 {
		t.Errorf("positional mapping wrong: %+v", mapping.Columns)
	}
}

func TestDetectColumnsNoHeader(t *testing.T) {
	text := "random prose about nothing in particular\nmore prose\n"
	mapping := DetectColumns(text)
	if len(mapping.Columns) != 0 {
		t.Errorf("expected empty mapping, got %+v", mapping.Columns)
	}
	if mapping.HeaderLine != -1 {
		t.Errorf("header line = %d, want -1", mapping.HeaderLine)
	}
}
