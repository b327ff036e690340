package parser

import (
	"testing"

	"github.com/charmbracelet/log"
)

func TestProcessBytesCSV(t *testing.T) {
	content := []byte("Symbol,Type,Amount,Profit\nAAPL,call,1500,85")

	p := New(log.Default())
	trades, err := p.ProcessBytes(content, "history.csv")
	if err != nil {
		t.Fatalf("ProcessBytes failed: %v", err)
	}
	if len(trades) != 1 || trades[0].Asset != "AAPL" {
		t.Errorf("unexpected trades: %+v", trades)
	}
}

func TestProcessBytesText(t *testing.T) {
	content := []byte("Asset: TSLA\nAmount: $200\nProfit: 15%")

	p := New(log.Default())
	trades, err := p.ProcessBytes(content, "history.txt")
	if err != nil {
		t.Fatalf("ProcessBytes failed: %v", err)
	}
	if len(trades) != 1 || trades[0].Asset != "TSLA" {
		t.Errorf("unexpected trades: %+v", trades)
	}
}

func TestProcessBytesUnknownType(t *testing.T) {
	p := New(log.Default())
	if _, err := p.ProcessBytes([]byte("data"), "history.docx"); err == nil {
		t.Error("expected an error for an unsupported file type")
	}
}

func TestDetectType(t *testing.T) {
	tests := []struct {
		filename string
		want     FileType
	}{
		{"trades.csv", TradeHistoryCSV},
		{"Trades.XLS", TradeHistoryXLS},
		{"statement.pdf", TradeHistoryPDF},
		{"export.txt", TradeHistoryText},
		{"archive.zip", ""},
	}
	for _, tt := range tests {
		if got := detectType(tt.filename); got != tt.want {
			t.Errorf("detectType(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}
