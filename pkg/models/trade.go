package models

// Direction classifies a trade as a call (buy/long) or a put (sell/short).
type Direction string

const (
	Call Direction = "call"
	Put  Direction = "put"
)

// DefaultCurrency is assumed whenever a source never names one.
const DefaultCurrency = "USD"

// Trade is the canonical record every importer converges on. Timestamps are
// kept as the raw strings found in the source; their format is not validated.
type Trade struct {
	Direction    Direction `json:"direction"`
	OrderNumber  string    `json:"orderNumber"`
	ExpiryTime   string    `json:"expiryTime"`
	Asset        string    `json:"asset"`
	OpenTime     string    `json:"openTime"`
	CloseTime    string    `json:"closeTime"`
	OpenPrice    float64   `json:"openPrice"`
	ClosePrice   float64   `json:"closePrice"`
	TradeAmount  float64   `json:"tradeAmount"`
	ProfitAmount float64   `json:"profitAmount"`
	Currency     string    `json:"currency"`
}
