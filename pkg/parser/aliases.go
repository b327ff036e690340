package parser

// Canonical field names used internally by the header resolver and the
// key-value matcher. They mirror the Trade JSON fields.
const (
	fieldDirection    = "direction"
	fieldOrderNumber  = "orderNumber"
	fieldExpiryTime   = "expiryTime"
	fieldAsset        = "asset"
	fieldOpenTime     = "openTime"
	fieldCloseTime    = "closeTime"
	fieldOpenPrice    = "openPrice"
	fieldClosePrice   = "closePrice"
	fieldTradeAmount  = "tradeAmount"
	fieldProfitAmount = "profitAmount"
	fieldCurrency     = "currency"
)

// canonicalFields fixes the resolution order so two runs over the same header
// always bind the same columns.
var canonicalFields = []string{
	fieldDirection,
	fieldOrderNumber,
	fieldExpiryTime,
	fieldAsset,
	fieldOpenTime,
	fieldCloseTime,
	fieldOpenPrice,
	fieldClosePrice,
	fieldTradeAmount,
	fieldProfitAmount,
	fieldCurrency,
}

// columnAliases maps each canonical field to the header spellings the two
// tabular importers accept, in preference order. All entries are lowercase;
// matching is case-insensitive and exact (no substring games in the tabular
// path). Read-only.
var columnAliases = map[string][]string{
	fieldDirection:    {"direction", "type", "trade type", "side", "action", "option type"},
	fieldOrderNumber:  {"order number", "order id", "order", "order #", "ticket", "trade id", "id"},
	fieldExpiryTime:   {"expiry time", "expiry", "expiration", "expiration time", "expire time"},
	fieldAsset:        {"asset", "symbol", "stock", "ticker", "instrument", "pair"},
	fieldOpenTime:     {"open time", "opened", "entry time", "start time", "time"},
	fieldCloseTime:    {"close time", "closed", "exit time", "end time"},
	fieldOpenPrice:    {"open price", "entry price", "strike price", "open"},
	fieldClosePrice:   {"close price", "exit price", "closing price", "close"},
	fieldTradeAmount:  {"amount", "trade amount", "investment", "stake", "size", "volume"},
	fieldProfitAmount: {"profit", "profit amount", "payout", "pnl", "p/l", "result", "return"},
	fieldCurrency:     {"currency", "ccy", "cur"},
}

// keyValueRule binds one lowercase needle to a canonical field for the
// key-colon-value line shape. Matching is substring containment on the
// lowercased key, so rule order is the priority: more specific needles must
// come before the terms they contain ("close time" before "close", "order"
// before anything that could swallow "order #").
type keyValueRule struct {
	field  string
	needle string
}

var keyValueRules = []keyValueRule{
	{fieldOrderNumber, "order"},
	{fieldOrderNumber, "ticket"},
	{fieldExpiryTime, "expir"},
	{fieldOpenTime, "open time"},
	{fieldOpenTime, "entry time"},
	{fieldOpenTime, "start time"},
	{fieldCloseTime, "close time"},
	{fieldCloseTime, "exit time"},
	{fieldCloseTime, "end time"},
	{fieldOpenPrice, "open price"},
	{fieldOpenPrice, "entry price"},
	{fieldOpenPrice, "strike"},
	{fieldClosePrice, "close price"},
	{fieldClosePrice, "exit price"},
	{fieldTradeAmount, "amount"},
	{fieldTradeAmount, "invest"},
	{fieldTradeAmount, "stake"},
	{fieldProfitAmount, "profit"},
	{fieldProfitAmount, "payout"},
	{fieldProfitAmount, "result"},
	{fieldProfitAmount, "pnl"},
	{fieldAsset, "asset"},
	{fieldAsset, "symbol"},
	{fieldAsset, "instrument"},
	{fieldAsset, "pair"},
	{fieldAsset, "ticker"},
	{fieldDirection, "direction"},
	{fieldDirection, "side"},
	{fieldDirection, "type"},
	{fieldCurrency, "currency"},
}
