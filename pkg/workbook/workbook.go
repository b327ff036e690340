package workbook

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/extrame/xls"
)

// Row is one spreadsheet row keyed by the original-cased header cell text.
// Cells that are empty in the source are absent, not synthesised.
type Row map[string]string

// Sheet is a named worksheet decoded into key-value rows.
type Sheet struct {
	Name string
	Rows []Row
}

// Decode reads a legacy XLS workbook into named sheets of key-value rows.
// The first non-empty row of every sheet provides the keys for the rows
// below it. Failure here aborts the whole file.
func Decode(data []byte) ([]Sheet, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("error opening workbook: %w", err)
	}

	var sheets []Sheet
	for i := 0; i < wb.NumSheets(); i++ {
		ws := wb.GetSheet(i)
		if ws == nil {
			continue
		}
		sheets = append(sheets, decodeSheet(ws))
	}
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets found in workbook")
	}
	return sheets, nil
}

func decodeSheet(ws *xls.WorkSheet) Sheet {
	sheet := Sheet{Name: ws.Name}
	var keys []string
	for r := 0; r <= int(ws.MaxRow); r++ {
		row := ws.Row(r)
		if row == nil {
			continue
		}
		cells := readCells(row)
		if len(cells) == 0 {
			continue
		}
		if keys == nil {
			keys = cells
			continue
		}
		kv := make(Row, len(cells))
		for c, val := range cells {
			if c >= len(keys) || keys[c] == "" || val == "" {
				continue
			}
			kv[keys[c]] = val
		}
		if len(kv) > 0 {
			sheet.Rows = append(sheet.Rows, kv)
		}
	}
	return sheet
}

func readCells(row *xls.Row) []string {
	var cells []string
	for c := 0; c < row.LastCol(); c++ {
		cells = append(cells, strings.TrimSpace(row.Col(c)))
	}
	for len(cells) > 0 && cells[len(cells)-1] == "" {
		cells = cells[:len(cells)-1]
	}
	return cells
}
