// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package analytics

import (
	"math"

	"github.com/MKhiriev/trade-ledger-pro/models"
)

// tradingDaysPerYear annualizes the per-trade Sharpe ratio.
const tradingDaysPerYear = 252

// RiskMetrics holds risk-oriented figures derived from closed trades.
type RiskMetrics struct {
	// AvgRiskReward is the mean reward/risk ratio over closed trades that
	// have both a stop loss and a take profit; zero when no trade does.
	AvgRiskReward float64 `json:"avgRiskReward"`

	// MaxDrawdown is the largest peak-to-trough decline of the running
	// cumulative P&L, walking the trades in their given order. Callers
	// must supply trades in the order whose drawdown they want measured,
	// typically chronological.
	MaxDrawdown float64 `json:"maxDrawdown"`

	// SharpeRatio is mean per-trade P&L over its population standard
	// deviation, annualized by sqrt(252). Zero when the deviation is zero
	// or there are no closed trades. Not calendar-aware.
	SharpeRatio float64 `json:"sharpeRatio"`

	GrossProfit  float64 `json:"grossProfit"`
	GrossLoss    float64 `json:"grossLoss"`
	ProfitFactor float64 `json:"profitFactor"`
}

// ComputeRiskMetrics derives RiskMetrics from trades. Only closed trades
// with a realized P&L participate; the input slice is not modified.
func ComputeRiskMetrics(trades []models.Trade) RiskMetrics {
	var m RiskMetrics

	var rrSum float64
	var rrCount int

	var peak, cumulative float64
	var pnlSum float64
	var closed int

	for _, t := range trades {
		if !t.Closed() {
			continue
		}
		closed++

		pnl := t.PnL()
		pnlSum += pnl

		cumulative += pnl
		if cumulative > peak {
			peak = cumulative
		}
		if dd := peak - cumulative; dd > m.MaxDrawdown {
			m.MaxDrawdown = dd
		}

		if pnl > 0 {
			m.GrossProfit += pnl
		} else if pnl < 0 {
			m.GrossLoss += -pnl
		}

		if t.StopLoss != nil && t.TakeProfit != nil {
			risk := math.Abs(t.EntryPrice - *t.StopLoss)
			reward := math.Abs(*t.TakeProfit - t.EntryPrice)
			if risk > 0 {
				rrSum += reward / risk
			}
			rrCount++
		}
	}

	if rrCount > 0 {
		m.AvgRiskReward = rrSum / float64(rrCount)
	}
	m.ProfitFactor = profitFactor(m.GrossProfit, m.GrossLoss)

	if closed == 0 {
		return m
	}

	// Population standard deviation over per-trade P&L.
	mean := pnlSum / float64(closed)
	var variance float64
	for _, t := range trades {
		if !t.Closed() {
			continue
		}
		d := t.PnL() - mean
		variance += d * d
	}
	variance /= float64(closed)

	if stdDev := math.Sqrt(variance); stdDev > 0 {
		m.SharpeRatio = mean / stdDev * math.Sqrt(tradingDaysPerYear)
	}

	return m
}
