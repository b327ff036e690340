package parser

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tradescan/tradescan/pkg/models"
	"github.com/tradescan/tradescan/pkg/pdf"
	"github.com/tradescan/tradescan/pkg/workbook"
)

// ShapeMode controls what happens when one free-text line satisfies more than
// one line shape (pipe, key-value, comma).
type ShapeMode string

const (
	// ShapeFirstMatch stops at the first shape that accepts the line.
	ShapeFirstMatch ShapeMode = "first-match"
	// ShapeUnion runs every shape on every line, so a single line can
	// contribute to more than one emitted record. This mirrors older
	// importers; it can duplicate a trade under multiple shapes.
	ShapeUnion ShapeMode = "union"
)

type FileType string

const (
	TradeHistoryCSV  FileType = "trade_history_csv"
	TradeHistoryXLS  FileType = "trade_history_xls"
	TradeHistoryPDF  FileType = "trade_history_pdf"
	TradeHistoryText FileType = "trade_history_txt"
)

// Parser extracts canonical trade records from the supported source formats.
// It is stateless across calls and safe to reuse.
type Parser struct {
	logger    *log.Logger
	shapeMode ShapeMode
}

// Option configures a Parser.
type Option func(*Parser)

// WithShapeMode overrides the default first-match line-shape policy.
func WithShapeMode(mode ShapeMode) Option {
	return func(p *Parser) {
		if mode == ShapeUnion {
			p.shapeMode = ShapeUnion
		}
	}
}

func New(logger *log.Logger, opts ...Option) *Parser {
	p := &Parser{
		logger:    logger,
		shapeMode: ShapeFirstMatch,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ProcessBytes decodes the file and runs the importer that matches its type.
// Decode failures abort the whole file; everything past decoding degrades
// per record.
func (p *Parser) ProcessBytes(data []byte, filename string) ([]*models.Trade, error) {
	fileType := detectType(filename)
	p.logger.Debug("detected file type", "type", fileType, "filename", filename)

	switch fileType {
	case TradeHistoryCSV:
		return p.ParseCSV(string(data)), nil
	case TradeHistoryXLS:
		sheets, err := workbook.Decode(data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode workbook: %w", err)
		}
		return p.ParseWorkbook(sheets), nil
	case TradeHistoryPDF:
		text, err := pdf.ExtractText(data)
		if err != nil {
			return nil, fmt.Errorf("failed to extract pdf text: %w", err)
		}
		return p.ParseText(text), nil
	case TradeHistoryText:
		return p.ParseText(string(data)), nil
	default:
		p.logger.Debug("unknown file type", "filename", filename)
		return nil, fmt.Errorf("unsupported file type: %s", filepath.Ext(filename))
	}
}

func detectType(filename string) FileType {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return TradeHistoryCSV
	case ".xls":
		return TradeHistoryXLS
	case ".pdf":
		return TradeHistoryPDF
	case ".txt":
		return TradeHistoryText
	default:
		return ""
	}
}

// finish runs the shared acceptance step: a draft either satisfies the
// completeness rule and builds into a trade, or yields nothing.
func finish(d *models.Draft) *models.Trade {
	if d == nil || !d.Complete() {
		return nil
	}
	return d.Build()
}
