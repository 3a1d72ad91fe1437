// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package analytics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/trade-ledger-pro/models"
)

func TestComputeRiskMetrics_MaxDrawdown(t *testing.T) {
	// Cumulative walk: 100, 40, 100, 40. Peak 100, trough 40.
	trades := []models.Trade{
		closedOn("2026-08-03", 100),
		closedOn("2026-08-04", -60),
		closedOn("2026-08-05", 60),
		closedOn("2026-08-06", -60),
	}

	m := ComputeRiskMetrics(trades)

	assert.InDelta(t, 60, m.MaxDrawdown, 1e-9)
	assert.InDelta(t, 160, m.GrossProfit, 1e-9)
	assert.InDelta(t, 120, m.GrossLoss, 1e-9)
}

func TestComputeRiskMetrics_OrderMatters(t *testing.T) {
	chronological := []models.Trade{
		closedOn("2026-08-03", 100),
		closedOn("2026-08-04", -60),
		closedOn("2026-08-05", 60),
		closedOn("2026-08-06", -60),
	}
	// Both losses up front: cumulative -60, -120 before any recovery.
	lossesFirst := []models.Trade{
		closedOn("2026-08-04", -60),
		closedOn("2026-08-06", -60),
		closedOn("2026-08-03", 100),
		closedOn("2026-08-05", 60),
	}

	assert.InDelta(t, 60, ComputeRiskMetrics(chronological).MaxDrawdown, 1e-9)
	assert.InDelta(t, 120, ComputeRiskMetrics(lossesFirst).MaxDrawdown, 1e-9)
}

func TestComputeRiskMetrics_Sharpe(t *testing.T) {
	// P&Ls 30 and 10: mean 20, population std dev 10.
	trades := []models.Trade{
		closedOn("2026-08-03", 30),
		closedOn("2026-08-04", 10),
	}

	m := ComputeRiskMetrics(trades)

	assert.InDelta(t, 2*math.Sqrt(252), m.SharpeRatio, 1e-9)
}

func TestComputeRiskMetrics_SharpeZeroDeviation(t *testing.T) {
	trades := []models.Trade{
		closedOn("2026-08-03", 10),
		closedOn("2026-08-04", 10),
	}

	m := ComputeRiskMetrics(trades)

	assert.Zero(t, m.SharpeRatio, "identical P&Ls have zero deviation")
}

func TestComputeRiskMetrics_AvgRiskReward(t *testing.T) {
	stop, take := 90.0, 120.0
	trade := closedOn("2026-08-03", 50)
	trade.EntryPrice = 100
	trade.StopLoss = &stop
	trade.TakeProfit = &take

	noLevels := closedOn("2026-08-04", 10)

	m := ComputeRiskMetrics([]models.Trade{trade, noLevels})

	// Risk 10, reward 20. Trades without both levels do not participate.
	assert.InDelta(t, 2, m.AvgRiskReward, 1e-9)
}

func TestComputeRiskMetrics_Empty(t *testing.T) {
	m := ComputeRiskMetrics(nil)

	assert.Zero(t, m.MaxDrawdown)
	assert.Zero(t, m.SharpeRatio)
	assert.Zero(t, m.ProfitFactor)
	assert.Zero(t, m.AvgRiskReward)
}

func TestComputeRiskMetrics_OpenTradesIgnored(t *testing.T) {
	trades := []models.Trade{
		openOn("2026-08-03"),
		closedOn("2026-08-04", 25),
	}

	m := ComputeRiskMetrics(trades)

	assert.InDelta(t, 25, m.GrossProfit, 1e-9)
	assert.Zero(t, m.SharpeRatio, "a single trade has zero deviation")
}
