package parser

import (
	"sort"
	"strings"

	"github.com/tradescan/tradescan/pkg/models"
	"github.com/tradescan/tradescan/pkg/workbook"
)

// ParseWorkbook imports every sheet and every row of a decoded workbook.
// Unlike the CSV importer, columns are resolved per row: rows in the same
// sheet may use different header casings or even different alias spellings.
func (p *Parser) ParseWorkbook(sheets []workbook.Sheet) []*models.Trade {
	var trades []*models.Trade
	for _, sheet := range sheets {
		p.logger.Debug("importing sheet", "sheet", sheet.Name, "rows", len(sheet.Rows))
		for i, row := range sheet.Rows {
			if t := p.extractSheetRow(sheet.Name, i, row); t != nil {
				trades = append(trades, t)
			}
		}
	}
	return trades
}

func (p *Parser) extractSheetRow(sheet string, rowNo int, row workbook.Row) (t *models.Trade) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Debug("row extraction failed, skipping", "sheet", sheet, "row", rowNo, "panic", r)
			t = nil
		}
	}()

	draft := models.NewDraft()
	for _, field := range canonicalFields {
		raw := lookupRowValue(row, columnAliases[field])
		if raw == "" {
			continue
		}
		applyField(draft, field, raw)
	}
	return finish(draft)
}

// lookupRowValue resolves one canonical field against one specific row.
// Every original-cased key whose lowercased form equals an alias is a
// candidate; candidates are tried in alias order and the first non-empty
// value wins. Keys are sorted so ties resolve the same way on every run.
func lookupRowValue(row workbook.Row, aliases []string) string {
	for _, alias := range aliases {
		var matches []string
		for key := range row {
			if strings.ToLower(strings.TrimSpace(key)) == alias {
				matches = append(matches, key)
			}
		}
		sort.Strings(matches)
		for _, key := range matches {
			if val := strings.TrimSpace(row[key]); val != "" {
				return val
			}
		}
	}
	return ""
}
