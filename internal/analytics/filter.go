package analytics

import (
	"time"

	"github.com/MKhiriev/trade-ledger-pro/models"
)

// FilterByDay returns the trades recorded on the same local calendar day
// as date. The comparison is on (year, month, day) components, not exact
// timestamps, so trades at different times of the same day all match.
// The input slice is not modified.
func FilterByDay(trades []models.Trade, date time.Time) []models.Trade {
	y, m, d := date.Date()

	out := make([]models.Trade, 0)
	for _, t := range trades {
		ty, tm, td := t.TradeDate.Date()
		if ty == y && tm == m && td == d {
			out = append(out, t)
		}
	}

	return out
}

// FilterByMonth returns the trades recorded in the given local calendar
// month. Month is 1-based (January == 1). The input slice is not modified.
func FilterByMonth(trades []models.Trade, month, year int) []models.Trade {
	out := make([]models.Trade, 0)
	for _, t := range trades {
		if int(t.TradeDate.Month()) == month && t.TradeDate.Year() == year {
			out = append(out, t)
		}
	}

	return out
}
