package parser

import (
	"strconv"
	"strings"

	"github.com/tradescan/tradescan/pkg/models"
)

var numericReplacer = strings.NewReplacer("$", "", ",", "", "%", "")

// parseNumber strips currency/percent decorations and parses the rest as a
// float. The second return reports whether the token was parseable at all;
// the free-text token path discards unparseable candidates instead of
// defaulting them.
func parseNumber(s string) (float64, bool) {
	cleaned := strings.TrimSpace(numericReplacer.Replace(s))
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// coerceNumber is the tabular flavour: a malformed value degrades to zero,
// never to a missing field.
func coerceNumber(s string) float64 {
	v, _ := parseNumber(s)
	return v
}

// coerceDirection maps free-form direction text by case-insensitive substring
// containment. Unrecognised input falls back to call, it is not an error.
func coerceDirection(s string) models.Direction {
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "put"),
		strings.Contains(lower, "sell"),
		strings.Contains(lower, "short"):
		return models.Put
	case strings.Contains(lower, "call"),
		strings.Contains(lower, "buy"),
		strings.Contains(lower, "long"):
		return models.Call
	default:
		return models.Call
	}
}

// applyField writes one raw source value into the draft using the coercer
// appropriate for the canonical field. Blank values are ignored so defaults
// can apply later. Shared by both tabular importers and the key-value shape.
func applyField(d *models.Draft, field, raw string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return
	}
	switch field {
	case fieldDirection:
		d.SetDirection(coerceDirection(raw))
	case fieldOrderNumber:
		d.SetOrderNumber(raw)
	case fieldAsset:
		d.SetAsset(raw)
	case fieldCurrency:
		d.SetCurrency(raw)
	case fieldExpiryTime:
		d.SetExpiryTime(raw)
	case fieldOpenTime:
		d.SetOpenTime(raw)
	case fieldCloseTime:
		d.SetCloseTime(raw)
	case fieldOpenPrice:
		d.SetOpenPrice(coerceNumber(raw))
	case fieldClosePrice:
		d.SetClosePrice(coerceNumber(raw))
	case fieldTradeAmount:
		d.SetTradeAmount(coerceNumber(raw))
	case fieldProfitAmount:
		d.SetProfitAmount(coerceNumber(raw))
	}
}
