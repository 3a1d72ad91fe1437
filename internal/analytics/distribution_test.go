package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/trade-ledger-pro/models"
)

func TestComputeDistribution(t *testing.T) {
	aapl := closedOn("2026-08-03", 100) // Monday
	aapl2 := closedOn("2026-08-04", -30)
	tsla := closedOn("2026-08-03", 50)
	tsla.Symbol = "TSLA"
	tsla.TradeType = models.TradeSell

	d := ComputeDistribution([]models.Trade{aapl, aapl2, tsla, openOn("2026-08-05")})

	assert.Equal(t, 2, d.BySymbol["AAPL"].Count)
	assert.InDelta(t, 70, d.BySymbol["AAPL"].PnL, 1e-9)
	assert.Equal(t, 1, d.BySymbol["TSLA"].Count)

	assert.Equal(t, 2, d.ByType[models.TradeBuy].Count)
	assert.Equal(t, 1, d.ByType[models.TradeSell].Count)

	assert.Equal(t, 2, d.ByDayOfWeek[time.Monday.String()].Count)
	assert.InDelta(t, 150, d.ByDayOfWeek[time.Monday.String()].PnL, 1e-9)
}

func TestComputeDistribution_StableAxes(t *testing.T) {
	d := ComputeDistribution(nil)

	assert.Len(t, d.ByDayOfWeek, 7, "all weekdays present even with no trades")
	assert.Contains(t, d.ByType, models.TradeBuy)
	assert.Contains(t, d.ByType, models.TradeSell)
	assert.Empty(t, d.BySymbol)
}
