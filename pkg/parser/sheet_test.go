package parser

import (
	"reflect"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/tradescan/tradescan/pkg/models"
	"github.com/tradescan/tradescan/pkg/workbook"
)

func TestParseWorkbookResolvesPerRow(t *testing.T) {
	// Rows in the same sheet use different casings and different alias
	// spellings; each row must still resolve on its own.
	sheets := []workbook.Sheet{
		{
			Name: "January",
			Rows: []workbook.Row{
				{"Symbol": "AAPL", "Type": "call", "Amount": "1500", "Profit": "85"},
				{"TICKER": "TSLA", "Side": "sell", "Investment": "$2,000", "Payout": "-10%"},
			},
		},
	}

	p := New(log.Default())
	trades := p.ParseWorkbook(sheets)
	if len(trades) != 2 {
		t.Fatalf("expected 2 trades, got %d", len(trades))
	}

	if trades[0].Asset != "AAPL" || trades[0].Direction != models.Call || trades[0].TradeAmount != 1500 {
		t.Errorf("row 0 mismatch: %+v", trades[0])
	}
	if trades[1].Asset != "TSLA" || trades[1].Direction != models.Put {
		t.Errorf("row 1 mismatch: %+v", trades[1])
	}
	if trades[1].TradeAmount != 2000 || trades[1].ProfitAmount != -10 {
		t.Errorf("row 1 numerics mismatch: %+v", trades[1])
	}
}

func TestParseWorkbookAliasOrderWins(t *testing.T) {
	// Both "asset" and "symbol" are present; "asset" comes first in the
	// alias list and must win even though "symbol" also matches.
	sheets := []workbook.Sheet{
		{
			Name: "Sheet1",
			Rows: []workbook.Row{
				{"Asset": "GOOG", "Symbol": "MSFT", "Amount": "1200", "Profit": "5"},
			},
		},
	}

	p := New(log.Default())
	trades := p.ParseWorkbook(sheets)
	if len(trades) != 1 {
		t.Fatalf("expected 1 trade, got %d", len(trades))
	}
	if trades[0].Asset != "GOOG" {
		t.Errorf("alias order must pick Asset over Symbol, got %q", trades[0].Asset)
	}
}

func TestParseWorkbookIncompleteRowsDropped(t *testing.T) {
	// No profit, no amount, no asset, zero amount: none may survive.
	sheets := []workbook.Sheet{
		{
			Name: "Sheet1",
			Rows: []workbook.Row{
				{"Symbol": "AAPL", "Amount": "1500"},
				{"Symbol": "TSLA", "Profit": "10"},
				{"Amount": "900", "Profit": "10"},
				{"Symbol": "MSFT", "Amount": "0", "Profit": "10"},
			},
		},
	}

	p := New(log.Default())
	if trades := p.ParseWorkbook(sheets); len(trades) != 0 {
		t.Fatalf("expected every incomplete row to be dropped, got %d", len(trades))
	}
}

func TestParseWorkbookMultipleSheetsInOrder(t *testing.T) {
	sheets := []workbook.Sheet{
		{Name: "A", Rows: []workbook.Row{{"Symbol": "AAPL", "Amount": "1500", "Profit": "85"}}},
		{Name: "B", Rows: []workbook.Row{{"Symbol": "TSLA", "Amount": "2000", "Profit": "15"}}},
	}

	p := New(log.Default())
	first := p.ParseWorkbook(sheets)
	second := p.ParseWorkbook(sheets)
	if !reflect.DeepEqual(first, second) {
		t.Error("re-running the importer on the same input must produce an identical sequence")
	}
	if len(first) != 2 || first[0].Asset != "AAPL" || first[1].Asset != "TSLA" {
		t.Errorf("sheet order must be preserved: %+v", first)
	}
}
