package csv

import (
	"bytes"
	"fmt"

	"github.com/tradescan/tradescan/pkg/models"
)

// FilterFunc decides whether a trade is included in an export.
type FilterFunc func(*models.Trade) bool

// Create renders trades as a CSV document with one column per canonical
// field. A nil filter exports everything.
func Create(trades []*models.Trade, filter FilterFunc) []byte {
	var buf bytes.Buffer
	buf.WriteString("Direction,OrderNumber,ExpiryTime,Asset,OpenTime,CloseTime,OpenPrice,ClosePrice,TradeAmount,ProfitAmount,Currency\n")
	for _, t := range trades {
		if filter == nil || filter(t) {
			buf.WriteString(fmt.Sprintf("%s,%s,%s,%s,%s,%s,%.2f,%.2f,%.2f,%.2f,%s\n",
				t.Direction,
				t.OrderNumber,
				t.ExpiryTime,
				t.Asset,
				t.OpenTime,
				t.CloseTime,
				t.OpenPrice,
				t.ClosePrice,
				t.TradeAmount,
				t.ProfitAmount,
				t.Currency))
		}
	}
	return buf.Bytes()
}
