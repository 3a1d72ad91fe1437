package analytics

import (
	"time"

	"github.com/MKhiriev/trade-ledger-pro/models"
)

// Bucket is one distribution cell: how many closed trades fell into it
// and their combined P&L.
type Bucket struct {
	Count int     `json:"count"`
	PnL   float64 `json:"pnl"`
}

// Distribution groups closed trades three ways. ByDayOfWeek always
// carries all seven weekdays so charts render a stable axis.
type Distribution struct {
	BySymbol    map[string]Bucket           `json:"bySymbol"`
	ByType      map[models.TradeType]Bucket `json:"byType"`
	ByDayOfWeek map[string]Bucket           `json:"byDayOfWeek"`
}

// ComputeDistribution buckets closed trades by symbol, by trade type, and
// by the local day-of-week of the trade date. The input slice is not
// modified.
func ComputeDistribution(trades []models.Trade) Distribution {
	d := Distribution{
		BySymbol: make(map[string]Bucket),
		ByType: map[models.TradeType]Bucket{
			models.TradeBuy:  {},
			models.TradeSell: {},
		},
		ByDayOfWeek: make(map[string]Bucket, 7),
	}

	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		d.ByDayOfWeek[wd.String()] = Bucket{}
	}

	for _, t := range trades {
		if !t.Closed() {
			continue
		}
		pnl := t.PnL()

		sym := d.BySymbol[t.Symbol]
		sym.Count++
		sym.PnL += pnl
		d.BySymbol[t.Symbol] = sym

		if typ, ok := d.ByType[t.TradeType]; ok {
			typ.Count++
			typ.PnL += pnl
			d.ByType[t.TradeType] = typ
		}

		day := t.TradeDate.Weekday().String()
		wd := d.ByDayOfWeek[day]
		wd.Count++
		wd.PnL += pnl
		d.ByDayOfWeek[day] = wd
	}

	return d
}
