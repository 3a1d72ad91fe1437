// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package analytics

import (
	"math"

	"github.com/MKhiriev/trade-ledger-pro/models"
)

// Summary aggregates a trade list into headline performance figures.
// All monetary fields are in the account currency of the trades.
type Summary struct {
	TotalTrades      int     `json:"totalTrades"`
	ClosedTrades     int     `json:"closedTrades"`
	OpenTrades       int     `json:"openTrades"`
	ProfitableTrades int     `json:"profitableTrades"`
	LosingTrades     int     `json:"losingTrades"`
	TotalPnL         float64 `json:"totalPnL"`

	// WinRate is ProfitableTrades/ClosedTrades as a percentage in [0,100].
	// Zero when there are no closed trades.
	WinRate float64 `json:"winRate"`

	// AvgWin and AvgLoss are means over the strictly-positive and
	// strictly-negative P&L subsets; zero when the subset is empty.
	// A zero-P&L trade counts toward neither.
	AvgWin  float64 `json:"avgWin"`
	AvgLoss float64 `json:"avgLoss"`

	// LargestWin is floored at zero and LargestLoss is ceilinged at zero,
	// so an all-losing (or all-winning) history does not report a
	// misleading sign on the unused side.
	LargestWin  float64 `json:"largestWin"`
	LargestLoss float64 `json:"largestLoss"`

	// ProfitFactor is grossProfit/grossLoss. When there are no losses but
	// some profit it is +Inf; when there is neither it is zero. It is
	// never negative.
	ProfitFactor float64 `json:"profitFactor"`
}

// ComputeSummary derives a Summary from trades. Only closed trades with a
// realized P&L contribute to the monetary figures; open trades are merely
// counted.
func ComputeSummary(trades []models.Trade) Summary {
	var s Summary
	s.TotalTrades = len(trades)

	var grossProfit, grossLoss float64
	var winSum, lossSum float64

	for _, t := range trades {
		if t.Status == models.TradeOpen {
			s.OpenTrades++
		}
		if !t.Closed() {
			continue
		}

		pnl := t.PnL()
		s.ClosedTrades++
		s.TotalPnL += pnl

		switch {
		case pnl > 0:
			s.ProfitableTrades++
			winSum += pnl
			grossProfit += pnl
			if pnl > s.LargestWin {
				s.LargestWin = pnl
			}
		case pnl < 0:
			s.LosingTrades++
			lossSum += pnl
			grossLoss += -pnl
			if pnl < s.LargestLoss {
				s.LargestLoss = pnl
			}
		}
	}

	if s.ClosedTrades > 0 {
		s.WinRate = float64(s.ProfitableTrades) / float64(s.ClosedTrades) * 100
	}
	if s.ProfitableTrades > 0 {
		s.AvgWin = winSum / float64(s.ProfitableTrades)
	}
	if s.LosingTrades > 0 {
		s.AvgLoss = lossSum / float64(s.LosingTrades)
	}

	s.ProfitFactor = profitFactor(grossProfit, grossLoss)

	return s
}

// profitFactor implements the shared sentinel policy: gross loss present →
// plain ratio; profit without loss → +Inf; neither → 0.
func profitFactor(grossProfit, grossLoss float64) float64 {
	switch {
	case grossLoss > 0:
		return grossProfit / grossLoss
	case grossProfit > 0:
		return math.Inf(1)
	default:
		return 0
	}
}
