package plan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/tradescan/tradescan/pkg/models"
)

// Parser is the contract the plan runner needs from the extraction engine.
type Parser interface {
	ProcessBytes(data []byte, filename string) ([]*models.Trade, error)
}

// Plan is a YAML manifest describing a batch of trade-history files to
// import in one go.
type Plan struct {
	Files []File `yaml:"files"`
}

// File is one entry of the manifest. Format optionally overrides the
// extension-based type detection (csv, xls, pdf, txt).
type File struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format,omitempty"`
}

// Result is the per-file outcome of running a plan.
type Result struct {
	Path  string
	Count int
	Err   error
}

// Load reads and validates a manifest file.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}

	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	if len(p.Files) == 0 {
		return nil, fmt.Errorf("plan has no files")
	}
	return &p, nil
}

// Run imports every file in the manifest. A file that fails to read or
// decode is recorded and skipped; it never aborts the rest of the batch.
func (p *Plan) Run(prs Parser, logger *log.Logger) ([]*models.Trade, []Result) {
	var trades []*models.Trade
	results := make([]Result, 0, len(p.Files))

	for _, f := range p.Files {
		res := Result{Path: f.Path}
		data, err := os.ReadFile(f.Path)
		if err != nil {
			res.Err = err
			logger.Warn("failed to read plan entry", "file", f.Path, "error", err)
			results = append(results, res)
			continue
		}

		name := filepath.Base(f.Path)
		if f.Format != "" {
			name = strings.TrimSuffix(name, filepath.Ext(name)) + "." + strings.TrimPrefix(f.Format, ".")
		}

		parsed, err := prs.ProcessBytes(data, name)
		if err != nil {
			res.Err = err
			logger.Warn("failed to import plan entry", "file", f.Path, "error", err)
			results = append(results, res)
			continue
		}

		res.Count = len(parsed)
		trades = append(trades, parsed...)
		results = append(results, res)
	}
	return trades, results
}

// Print writes a human-readable preview of the manifest to stdout.
func (p *Plan) Print() {
	for i, f := range p.Files {
		format := f.Format
		if format == "" {
			format = "auto"
		}
		fmt.Printf("[%d] file=%s format=%s\n", i+1, f.Path, format)
	}
}
