package parser

import (
	"strings"

	"github.com/tradescan/tradescan/pkg/models"
)

// Minimum token counts a line must reach before it is treated as a
// delimited trade row rather than prose.
const (
	minPipeTokens  = 10
	minCommaTokens = 8
)

// ParseText imports a decoded plain-text document, typically the text layer
// of a PDF statement. Every non-blank line is offered to the line shapes in
// a fixed order: pipe-delimited, key-colon-value, comma-delimited. In
// first-match mode a line feeds at most one shape; in union mode every shape
// sees every line, so one line may contribute to more than one record.
func (p *Parser) ParseText(text string) []*models.Trade {
	var trades []*models.Trade
	acc := newAccumulator()

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		t, matched := p.matchPipe(line)
		if t != nil {
			trades = append(trades, t)
		}

		if !matched || p.shapeMode == ShapeUnion {
			t, ok := p.matchKeyValue(acc, line)
			if t != nil {
				trades = append(trades, t)
			}
			matched = matched || ok
		}

		if !matched || p.shapeMode == ShapeUnion {
			if t, _ := p.matchComma(line); t != nil {
				trades = append(trades, t)
			}
		}
	}

	if !acc.empty() {
		p.logger.Debug("discarding incomplete key-value run at end of input")
	}
	return trades
}

// matchPipe handles lines like
//
//	#1001 | call | AAPL | USD | 1500 | 120.50 | 119.00 | 85% | 2024-01-01 | 2024-01-02
//
// The boolean reports whether the shape claimed the line at all; the trade
// is nil when the tokens never added up to a complete record.
func (p *Parser) matchPipe(line string) (*models.Trade, bool) {
	if !strings.Contains(line, "|") {
		return nil, false
	}
	tokens := splitTokens(line, "|")
	if len(tokens) < minPipeTokens {
		return nil, false
	}
	return p.classifyTokens(tokens), true
}

// matchKeyValue handles one `key: value` line, writing into the running
// accumulator. The key is lowercased and matched by substring containment
// against the priority-ordered rule list. A flush happens the moment the
// accumulated record becomes complete.
func (p *Parser) matchKeyValue(acc *accumulator, line string) (*models.Trade, bool) {
	key, value, found := strings.Cut(line, ":")
	if !found {
		return nil, false
	}
	key = strings.ToLower(strings.TrimSpace(key))
	value = strings.TrimSpace(value)
	if key == "" || value == "" {
		return nil, false
	}
	for _, rule := range keyValueRules {
		if strings.Contains(key, rule.needle) {
			return acc.apply(rule.field, value), true
		}
	}
	return nil, false
}

func (p *Parser) matchComma(line string) (*models.Trade, bool) {
	tokens := splitTokens(line, ",")
	if len(tokens) < minCommaTokens {
		return nil, false
	}
	return p.classifyTokens(tokens), true
}

// splitTokens splits on the delimiter, trims every token and drops empties.
func splitTokens(line, delim string) []string {
	parts := strings.Split(line, delim)
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			tokens = append(tokens, trimmed)
		}
	}
	return tokens
}

// accumulator carries one partial record across consecutive key-value lines.
// Lifecycle: empty, then partial while keys keep arriving, then flush and
// reset the moment the record completes. A run that never completes is
// discarded when the input ends.
type accumulator struct {
	draft *models.Draft
}

func newAccumulator() *accumulator {
	return &accumulator{draft: models.NewDraft()}
}

func (a *accumulator) empty() bool {
	return a.draft.Empty()
}

// apply writes one field and returns the flushed trade if that write
// completed the record.
func (a *accumulator) apply(field, value string) *models.Trade {
	applyField(a.draft, field, value)
	if !a.draft.Complete() {
		return nil
	}
	t := a.draft.Build()
	a.draft = models.NewDraft()
	return t
}
