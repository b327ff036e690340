package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/k0kubun/pp/v3"

	"github.com/tradescan/tradescan/pkg/config"
	"github.com/tradescan/tradescan/pkg/csv"
	"github.com/tradescan/tradescan/pkg/models"
	"github.com/tradescan/tradescan/pkg/parser"
)

type filters struct {
	asset     string
	direction string
	minAmount float64
	maxAmount float64
}

func (f *filters) toFilterFunc() csv.FilterFunc {
	return func(t *models.Trade) bool {
		if f.asset != "" && !strings.Contains(strings.ToLower(t.Asset), strings.ToLower(f.asset)) {
			return false
		}
		if f.direction != "" && !strings.EqualFold(string(t.Direction), f.direction) {
			return false
		}
		if f.minAmount != 0 && t.TradeAmount < f.minAmount {
			return false
		}
		if f.maxAmount != 0 && t.TradeAmount > f.maxAmount {
			return false
		}
		return true
	}
}

type FileProcessor struct {
	logger  *log.Logger
	parser  *parser.Parser
	filters *filters
}

func NewFileProcessor(logger *log.Logger, cfg *config.Config, filters *filters) *FileProcessor {
	return &FileProcessor{
		logger:  logger,
		parser:  parser.New(logger, parser.WithShapeMode(parser.ShapeMode(cfg.ShapeMode))),
		filters: filters,
	}
}

func (p *FileProcessor) ProcessDirectory(inputDir string) error {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return fmt.Errorf("failed to read directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if err := p.ProcessFile(filepath.Join(inputDir, entry.Name())); err != nil {
			p.logger.Warn("error processing file", "error", err)
		}
	}

	return nil
}

// ProcessFile parses one trade-history file and prints the surviving records
// to stdout in source order.
func (p *FileProcessor) ProcessFile(inputPath string) error {
	fileBytes, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	trades, err := p.parser.ProcessBytes(fileBytes, filepath.Base(inputPath))
	if err != nil {
		return fmt.Errorf("failed to process file: %w", err)
	}

	keep := p.filters.toFilterFunc()
	filtered := make([]*models.Trade, 0, len(trades))
	for _, t := range trades {
		if keep(t) {
			filtered = append(filtered, t)
		}
	}

	if dump {
		pp.Println(filtered)
	}

	if asJSON {
		out, err := json.MarshalIndent(filtered, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal records: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Print(string(csv.Create(filtered, nil)))
	return nil
}
