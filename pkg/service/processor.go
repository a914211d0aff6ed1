// Package service wires extraction, parsing and output rendering into
// file-level operations shared by the CLI and the HTTP server.
package service

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/stparse/stparse/pkg/config"
	"github.com/stparse/stparse/pkg/csv"
	"github.com/stparse/stparse/pkg/models"
	"github.com/stparse/stparse/pkg/parser"
)

// Processor converts statement files into parsed output files.
type Processor struct {
	config *config.Config
	logger *log.Logger
	parser *parser.Parser
	filter csv.FilterFunc
}

func NewProcessor(cfg *config.Config, logger *log.Logger) *Processor {
	return &Processor{
		config: cfg,
		logger: logger,
		parser: parser.New(logger,
			parser.WithNormalize(cfg.Parse.Normalize),
			parser.WithDeduplicate(cfg.Parse.Deduplicate),
		),
	}
}

// SetFilter restricts which transactions reach the output.
func (p *Processor) SetFilter(f csv.FilterFunc) {
	p.filter = f
}

// ProcessDirectory processes every statement file in dir. Individual
// file failures are logged and do not abort the run.
func (p *Processor) ProcessDirectory(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !isStatementFile(entry.Name()) {
			continue
		}
		if err := p.ProcessFile(filepath.Join(dir, entry.Name())); err != nil {
			p.logger.Error("failed to process file", "file", entry.Name(), "error", err)
		}
	}
	return nil
}

// ProcessFile parses one statement file and writes the rendered output
// next to it (or into the configured output directory).
func (p *Processor) ProcessFile(inputPath string) error {
	result, err := p.Parse(inputPath)
	if err != nil {
		return err
	}

	out, err := p.Render(result)
	if err != nil {
		return err
	}

	outputPath := p.determineOutputPath(inputPath)
	if err := os.WriteFile(outputPath, out, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	summary := result.Summary()
	p.logger.Info("processed file",
		"input", inputPath,
		"output", outputPath,
		"type", result.StatementType,
		"transactions", summary.TotalTransactions,
		"credits", summary.TotalCredits,
		"debits", summary.TotalDebits,
	)
	return nil
}

// Parse reads and parses a statement file without writing anything.
func (p *Processor) Parse(inputPath string) (*models.Result, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return p.parser.ProcessBytes(data, filepath.Base(inputPath))
}

// Render serializes a result in the configured output format.
func (p *Processor) Render(result *models.Result) ([]byte, error) {
	switch p.config.Output.Format {
	case "json":
		return json.MarshalIndent(result, "", "  ")
	case "", "csv":
		return csv.Render(result.Transactions, p.filter)
	default:
		return nil, fmt.Errorf("unsupported output format: %s", p.config.Output.Format)
	}
}

// ProcessManifest processes every statement listed in a YAML manifest.
func (p *Processor) ProcessManifest(path string) error {
	manifest, err := models.ManifestFromFile(path)
	if err != nil {
		return err
	}
	for _, stmt := range manifest.Statements {
		file, err := stmt.File()
		if err != nil {
			p.logger.Error("failed to resolve manifest entry", "file", stmt.FilePath, "error", err)
			continue
		}
		if err := p.ProcessFile(file); err != nil {
			p.logger.Error("failed to process manifest entry", "file", file, "error", err)
		}
	}
	return nil
}

func (p *Processor) determineOutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), ext)

	suffix := "-parsed.csv"
	if p.config.Output.Format == "json" {
		suffix = "-parsed.json"
	}

	if p.config.Output.Dir != "" {
		return filepath.Join(p.config.Output.Dir, base+suffix)
	}
	return strings.TrimSuffix(inputPath, ext) + suffix
}

func isStatementFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf", ".xls", ".txt", ".csv":
		return true
	}
	return false
}
