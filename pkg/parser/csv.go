package parser

import (
	"strings"

	"github.com/tradescan/tradescan/pkg/models"
)

// ParseCSV imports a decoded, newline-separated CSV document. The first
// non-blank line is the header; columns are bound to canonical fields once
// for the whole file. Rows that fail to extract are skipped, never partially
// imported.
func (p *Parser) ParseCSV(text string) []*models.Trade {
	lines := strings.Split(text, "\n")

	var header []string
	start := len(lines)
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		header = splitQuoted(line, ',')
		start = i + 1
		break
	}
	if len(header) == 0 {
		return nil
	}

	columns := resolveColumns(header)
	p.logger.Debug("resolved csv header", "columns", len(columns), "fields", len(header))

	var trades []*models.Trade
	for i := start; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}
		if t := p.extractCSVRow(i, lines[i], header, columns); t != nil {
			trades = append(trades, t)
		}
	}
	return trades
}

// resolveColumns binds each canonical field to the index of the first header
// cell that exactly matches one of its aliases, case-insensitively and in
// alias order. Fields with no matching header stay unmapped for the file.
func resolveColumns(header []string) map[string]int {
	columns := make(map[string]int, len(canonicalFields))
	for _, field := range canonicalFields {
		for _, alias := range columnAliases[field] {
			idx := -1
			for i, h := range header {
				if strings.EqualFold(strings.TrimSpace(h), alias) {
					idx = i
					break
				}
			}
			if idx >= 0 {
				columns[field] = idx
				break
			}
		}
	}
	return columns
}

// extractCSVRow turns one data line into zero or one trade. A row shorter
// than the header is dropped whole so a misaligned index can never smear
// values across fields. Any panic while extracting is confined to this row.
func (p *Parser) extractCSVRow(lineNo int, line string, header []string, columns map[string]int) (t *models.Trade) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Debug("row extraction failed, skipping", "line", lineNo, "panic", r)
			t = nil
		}
	}()

	fields := splitQuoted(line, ',')
	if len(fields) < len(header) {
		p.logger.Debug("row shorter than header, skipping", "line", lineNo, "fields", len(fields), "header", len(header))
		return nil
	}

	draft := models.NewDraft()
	for _, field := range canonicalFields {
		idx, ok := columns[field]
		if !ok {
			continue
		}
		applyField(draft, field, fields[idx])
	}
	return finish(draft)
}

// splitQuoted splits a line on delim while honouring double-quoted fields
// that may themselves contain the delimiter. Quoting state toggles on every
// literal quote; doubled-quote escaping is not supported (known limitation).
func splitQuoted(line string, delim byte) []string {
	var fields []string
	var buf strings.Builder
	inQuotes := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			inQuotes = !inQuotes
		case c == delim && !inQuotes:
			fields = append(fields, strings.TrimSpace(buf.String()))
			buf.Reset()
		default:
			buf.WriteByte(c)
		}
	}
	fields = append(fields, strings.TrimSpace(buf.String()))
	return fields
}
