package parser

import (
	"regexp"
	"strings"

	"github.com/tradescan/tradescan/pkg/models"
)

var (
	orderNumberPattern = regexp.MustCompile(`^#?\d+$`)
	assetPattern       = regexp.MustCompile(`^[A-Z]+(?:/[A-Z]+)?$`)
	numericPattern     = regexp.MustCompile(`^\$?\d+(?:,\d{3})*(?:\.\d+)?%?$`)
	timePattern        = regexp.MustCompile(`\d{1,2}[:/]\d{2}|\d{4}-\d{2}-\d{2}`)
)

// currencyCodes is the fixed set of currency tokens the token classifier
// recognises. Checked before the asset rule so EUR or USD standing alone is
// never mistaken for a symbol.
var currencyCodes = map[string]struct{}{
	"USD": {}, "EUR": {}, "GBP": {}, "JPY": {}, "CHF": {},
	"AUD": {}, "CAD": {}, "NZD": {}, "RUB": {}, "BTC": {}, "ETH": {},
}

// classifyTokens fills a fresh line-scoped draft from an ordered token
// sequence (pipe- or comma-shaped lines). Tokens are tested in order, first
// matching rule wins per token, and every slot fills at most once except
// currency, which the last seen code overwrites. Tokens matching nothing are
// ignored. Incomplete lines yield nil; nothing carries over to later lines.
func (p *Parser) classifyTokens(tokens []string) *models.Trade {
	draft := models.NewDraft()
	for _, token := range tokens {
		classifyToken(draft, token)
	}
	return finish(draft)
}

func classifyToken(d *models.Draft, token string) {
	lower := strings.ToLower(token)
	_, isCurrency := currencyCodes[strings.ToUpper(token)]

	switch {
	case (lower == "call" || lower == "put") && !d.HasDirection():
		d.SetDirection(models.Direction(lower))
	case orderNumberPattern.MatchString(token) && !d.HasOrderNumber():
		d.SetOrderNumber(token)
	case isCurrency:
		d.SetCurrency(token)
	case assetPattern.MatchString(token) && !d.HasAsset():
		d.SetAsset(token)
	case numericPattern.MatchString(token):
		classifyNumber(d, token)
	case timePattern.MatchString(token):
		classifyTimestamp(d, token)
	}
}

// classifyNumber disambiguates a numeric-looking token by magnitude: percent
// marks profit, anything above 1000 is the staked amount, and the first two
// sub-1000 values fill open then close price. A token that fails to parse is
// discarded, never defaulted at this stage.
func classifyNumber(d *models.Draft, token string) {
	v, ok := parseNumber(token)
	if !ok {
		return
	}
	switch {
	case strings.Contains(token, "%") && !d.HasProfitAmount():
		d.SetProfitAmount(v)
	case v > 1000 && !d.HasTradeAmount():
		d.SetTradeAmount(v)
	case v > 0 && v < 1000 && !d.HasOpenPrice():
		d.SetOpenPrice(v)
	case v > 0 && v < 1000 && !d.HasClosePrice():
		d.SetClosePrice(v)
	}
}

// classifyTimestamp slots date/time-looking tokens in strict first-seen
// order: open time, close time, expiry time.
func classifyTimestamp(d *models.Draft, token string) {
	switch {
	case !d.HasOpenTime():
		d.SetOpenTime(token)
	case !d.HasCloseTime():
		d.SetCloseTime(token)
	case !d.HasExpiryTime():
		d.SetExpiryTime(token)
	}
}
