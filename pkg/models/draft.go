package models

import "strings"

// Draft accumulates fields for one candidate trade while an importer is still
// deciding whether the row or line is usable. Every field is optional; a Draft
// either builds into a Trade (once Complete) or is thrown away. Defaults are
// applied in exactly one place, Build, so the importers cannot drift apart.
type Draft struct {
	direction    *Direction
	orderNumber  string
	expiryTime   string
	asset        string
	openTime     string
	closeTime    string
	openPrice    *float64
	closePrice   *float64
	tradeAmount  *float64
	profitAmount *float64
	currency     string
}

func NewDraft() *Draft {
	return &Draft{}
}

func (d *Draft) SetDirection(dir Direction) { d.direction = &dir }
func (d *Draft) HasDirection() bool         { return d.direction != nil }

func (d *Draft) SetOrderNumber(s string) { d.orderNumber = strings.TrimSpace(s) }
func (d *Draft) HasOrderNumber() bool    { return d.orderNumber != "" }

// SetAsset and SetCurrency always upper-case on assignment.
func (d *Draft) SetAsset(s string) { d.asset = strings.ToUpper(strings.TrimSpace(s)) }
func (d *Draft) HasAsset() bool    { return d.asset != "" }

func (d *Draft) SetCurrency(s string) { d.currency = strings.ToUpper(strings.TrimSpace(s)) }
func (d *Draft) HasCurrency() bool    { return d.currency != "" }

func (d *Draft) SetExpiryTime(s string) { d.expiryTime = strings.TrimSpace(s) }
func (d *Draft) HasExpiryTime() bool    { return d.expiryTime != "" }

func (d *Draft) SetOpenTime(s string) { d.openTime = strings.TrimSpace(s) }
func (d *Draft) HasOpenTime() bool    { return d.openTime != "" }

func (d *Draft) SetCloseTime(s string) { d.closeTime = strings.TrimSpace(s) }
func (d *Draft) HasCloseTime() bool    { return d.closeTime != "" }

func (d *Draft) SetOpenPrice(v float64) { d.openPrice = &v }
func (d *Draft) HasOpenPrice() bool     { return d.openPrice != nil }

func (d *Draft) SetClosePrice(v float64) { d.closePrice = &v }
func (d *Draft) HasClosePrice() bool     { return d.closePrice != nil }

func (d *Draft) SetTradeAmount(v float64) { d.tradeAmount = &v }
func (d *Draft) HasTradeAmount() bool     { return d.tradeAmount != nil }

func (d *Draft) SetProfitAmount(v float64) { d.profitAmount = &v }
func (d *Draft) HasProfitAmount() bool     { return d.profitAmount != nil }

// Empty reports whether nothing has been written yet. The free-text
// accumulator uses it to distinguish "no run in progress" from "partial".
func (d *Draft) Empty() bool {
	return d.direction == nil && d.orderNumber == "" && d.expiryTime == "" &&
		d.asset == "" && d.openTime == "" && d.closeTime == "" &&
		d.openPrice == nil && d.closePrice == nil &&
		d.tradeAmount == nil && d.profitAmount == nil && d.currency == ""
}

// Complete is the acceptance rule shared by every importer: the asset must be
// known, the staked amount nonzero and the profit defined (zero profit is a
// valid value, an absent one is not). Direction and currency carry defaults
// and therefore never block acceptance. A parsed-but-zero amount is
// indistinguishable from "not found" and is rejected either way.
func (d *Draft) Complete() bool {
	return d.asset != "" &&
		d.tradeAmount != nil && *d.tradeAmount != 0 &&
		d.profitAmount != nil
}

// Build materialises the canonical record, applying the shared defaults:
// direction call, currency USD, prices zero, unset strings empty.
func (d *Draft) Build() *Trade {
	t := &Trade{
		Direction:   Call,
		OrderNumber: d.orderNumber,
		ExpiryTime:  d.expiryTime,
		Asset:       d.asset,
		OpenTime:    d.openTime,
		CloseTime:   d.closeTime,
		Currency:    DefaultCurrency,
	}
	if d.direction != nil {
		t.Direction = *d.direction
	}
	if d.currency != "" {
		t.Currency = d.currency
	}
	if d.openPrice != nil {
		t.OpenPrice = *d.openPrice
	}
	if d.closePrice != nil {
		t.ClosePrice = *d.closePrice
	}
	if d.tradeAmount != nil {
		t.TradeAmount = *d.tradeAmount
	}
	if d.profitAmount != nil {
		t.ProfitAmount = *d.profitAmount
	}
	return t
}
