// Package parser turns plain statement text into normalized
// transactions. Extraction is a cascade of strategies ordered from
// precise to permissive; which strategies run, and when the cascade
// stops, depends on the detected statement type and on how many
// candidates have been found so far.
package parser

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/stparse/stparse/pkg/dedupe"
	"github.com/stparse/stparse/pkg/extract"
	"github.com/stparse/stparse/pkg/format"
	"github.com/stparse/stparse/pkg/models"
	"github.com/stparse/stparse/pkg/validate"
)

// Parser extracts transactions from statement text.
type Parser struct {
	logger    *log.Logger
	assist    Strategy
	normalize bool
	dedupe    bool
}

// New creates a parser with the given logger.
func New(logger *log.Logger, opts ...Option) *Parser {
	p := &Parser{
		logger:    logger,
		normalize: true,
		dedupe:    true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse runs the full pipeline on statement text: classify, detect
// columns, run the extraction cascade, then validate, normalize and
// deduplicate. It never fails; unusable input yields an empty result.
func (p *Parser) Parse(text string) *models.Result {
	result := &models.Result{
		Transactions: []models.Transaction{},
		Metadata:     map[string]any{},
	}

	stype, scores := Classify(text)
	result.StatementType = stype

	mapping := DetectColumns(text)

	p.logger.Debug("statement classified",
		"type", stype,
		"scores", fmt.Sprintf("%+v", scores),
		"delimiter", mapping.Delimiter,
		"header_line", mapping.HeaderLine,
	)

	drafts, contributed := runCascade(stagesFor(stype, p.assist), text, mapping)
	p.logger.Debug("cascade finished", "drafts", len(drafts), "strategies", strings.Join(contributed, ","))

	cardNo := ""
	if stype == models.StatementCreditCard {
		cardNo = MaskedCardNumber(text)
	}

	for i := range drafts {
		vr := validate.Check(&drafts[i])
		result.Warnings = append(result.Warnings, vr.Warnings...)
		if !vr.Valid {
			result.Errors = append(result.Errors, vr.Errors...)
			p.logger.Debug("draft rejected", "line", drafts[i].RawLine, "errors", strings.Join(vr.Errors, "; "))
			continue
		}
		result.Transactions = append(result.Transactions, p.promote(&drafts[i], stype, cardNo))
	}

	if p.dedupe {
		before := len(result.Transactions)
		result.Transactions = dedupe.Deduplicate(result.Transactions)
		if removed := before - len(result.Transactions); removed > 0 {
			p.logger.Debug("duplicates removed", "count", removed)
		}
	}

	result.Metadata["parser"] = string(stype)
	result.Metadata["strategies"] = contributed
	result.Metadata["delimiter"] = mapping.Delimiter
	result.Metadata["scores"] = scores
	columns := make(map[string]int, len(mapping.Columns))
	for field, idx := range mapping.Columns {
		columns[string(field)] = idx
	}
	result.Metadata["columns"] = columns

	return result
}

// ProcessBytes extracts text from a source file by extension and parses
// it. Anything that is not a known binary format is treated as text.
func (p *Parser) ProcessBytes(data []byte, filename string) (*models.Result, error) {
	var (
		text string
		err  error
	)

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		text, err = extract.PDFText(data)
	case ".xls":
		text, err = extract.XLSText(data)
	default:
		text = extract.DecodeText(data)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to extract text from %s: %w", filename, err)
	}

	return p.Parse(text), nil
}

// promote converts a validated draft into an output transaction.
func (p *Parser) promote(d *models.Draft, stype models.StatementType, cardNo string) models.Transaction {
	desc := d.Description
	if p.normalize {
		desc = format.NormalizeDescription(desc)
	}

	txType := models.TxDebit
	if d.IsCredit || d.Credit.IsPositive() {
		txType = models.TxCredit
	}

	amount := d.Amount
	if !amount.IsPositive() {
		if d.Credit.IsPositive() {
			amount = d.Credit
		} else {
			amount = d.Debit
		}
	}

	tx := models.Transaction{
		Date:        d.Date,
		Description: desc,
		Amount:      amount,
		Type:        txType,
		Debit:       d.Debit,
		Credit:      d.Credit,
		Balance:     d.Balance,
		Reference:   d.Reference,
		ValueDate:   d.Date,
		Merchant:    desc,
	}
	switch stype {
	case models.StatementCreditCard:
		tx.CardNo = cardNo
	case models.StatementUPI:
		tx.UPIRef = d.Reference
	}
	return tx
}
