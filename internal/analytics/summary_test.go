// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/trade-ledger-pro/models"
)

// closedOn builds a closed trade with the given realized P&L on the given day.
func closedOn(day string, pnl float64) models.Trade {
	date, err := time.Parse("2006-01-02", day)
	if err != nil {
		panic(err)
	}
	return models.Trade{
		Symbol:     "AAPL",
		TradeType:  models.TradeBuy,
		Status:     models.TradeClosed,
		ProfitLoss: &pnl,
		TradeDate:  date,
	}
}

func openOn(day string) models.Trade {
	trade := closedOn(day, 0)
	trade.Status = models.TradeOpen
	trade.ProfitLoss = nil
	return trade
}

func TestComputeSummary(t *testing.T) {
	trades := []models.Trade{
		closedOn("2026-08-03", 100),
		closedOn("2026-08-04", -40),
		closedOn("2026-08-05", 60),
		closedOn("2026-08-06", 0),
		openOn("2026-08-07"),
	}

	s := ComputeSummary(trades)

	assert.Equal(t, 5, s.TotalTrades)
	assert.Equal(t, 4, s.ClosedTrades)
	assert.Equal(t, 1, s.OpenTrades)
	assert.Equal(t, 2, s.ProfitableTrades)
	assert.Equal(t, 1, s.LosingTrades)
	assert.InDelta(t, 120, s.TotalPnL, 1e-9)

	// The zero-P&L trade counts toward the closed total but neither side
	// of the win rate.
	assert.InDelta(t, 50, s.WinRate, 1e-9)
	assert.InDelta(t, 80, s.AvgWin, 1e-9)
	assert.InDelta(t, -40, s.AvgLoss, 1e-9)
	assert.InDelta(t, 100, s.LargestWin, 1e-9)
	assert.InDelta(t, -40, s.LargestLoss, 1e-9)
	assert.InDelta(t, 4, s.ProfitFactor, 1e-9)
}

func TestComputeSummary_Empty(t *testing.T) {
	s := ComputeSummary(nil)

	assert.Zero(t, s.TotalTrades)
	assert.Zero(t, s.WinRate)
	assert.Zero(t, s.ProfitFactor)
	assert.Zero(t, s.LargestWin)
	assert.Zero(t, s.LargestLoss)
}

func TestComputeSummary_AllWinning(t *testing.T) {
	trades := []models.Trade{
		closedOn("2026-08-03", 10),
		closedOn("2026-08-04", 20),
	}

	s := ComputeSummary(trades)

	assert.InDelta(t, 100, s.WinRate, 1e-9)
	assert.True(t, math.IsInf(s.ProfitFactor, 1), "no losses with some profit is +Inf")
	assert.Zero(t, s.LargestLoss, "the unused side stays at zero")
}

func TestComputeSummary_AllLosing(t *testing.T) {
	trades := []models.Trade{
		closedOn("2026-08-03", -10),
		closedOn("2026-08-04", -20),
	}

	s := ComputeSummary(trades)

	assert.Zero(t, s.WinRate)
	assert.Zero(t, s.ProfitFactor)
	assert.Zero(t, s.LargestWin)
	assert.InDelta(t, -20, s.LargestLoss, 1e-9)
}
