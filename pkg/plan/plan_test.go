package plan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/tradescan/tradescan/pkg/parser"
)

func TestLoadAndRun(t *testing.T) {
	tmpDir := t.TempDir()

	statement := filepath.Join(tmpDir, "history.txt")
	content := "Asset: TSLA\nAmount: $200\nProfit: 15%"
	if err := os.WriteFile(statement, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write statement: %v", err)
	}

	planFile := filepath.Join(tmpDir, "plan.yaml")
	manifest := "files:\n  - path: " + statement + "\n  - path: " + filepath.Join(tmpDir, "missing.csv") + "\n"
	if err := os.WriteFile(planFile, []byte(manifest), 0644); err != nil {
		t.Fatalf("failed to write plan: %v", err)
	}

	p, err := Load(planFile)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(p.Files) != 2 {
		t.Fatalf("expected 2 plan entries, got %d", len(p.Files))
	}

	trades, results := p.Run(parser.New(log.Default()), log.Default())
	if len(trades) != 1 {
		t.Fatalf("expected 1 trade, got %d", len(trades))
	}
	if results[0].Count != 1 || results[0].Err != nil {
		t.Errorf("unexpected result for first entry: %+v", results[0])
	}
	if results[1].Err == nil {
		t.Error("missing file must be recorded as a failure, not dropped")
	}
}

func TestLoadRejectsEmptyPlan(t *testing.T) {
	tmpDir := t.TempDir()
	planFile := filepath.Join(tmpDir, "plan.yaml")
	if err := os.WriteFile(planFile, []byte("files: []\n"), 0644); err != nil {
		t.Fatalf("failed to write plan: %v", err)
	}

	if _, err := Load(planFile); err == nil {
		t.Error("expected an error for a plan with no files")
	}
}

func TestFormatOverride(t *testing.T) {
	tmpDir := t.TempDir()

	// Free-text content stored under an unknown extension; the format
	// override routes it to the text importer anyway.
	statement := filepath.Join(tmpDir, "history.dump")
	content := "call | #1 | AAPL | USD | 10% | 1200 | 5 | 6 | 2024-01-01 | 2024-01-02"
	if err := os.WriteFile(statement, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write statement: %v", err)
	}

	p := &Plan{Files: []File{{Path: statement, Format: "txt"}}}
	trades, results := p.Run(parser.New(log.Default()), log.Default())
	if len(trades) != 1 {
		t.Fatalf("expected 1 trade via format override, got %d (results %+v)", len(trades), results)
	}
}
