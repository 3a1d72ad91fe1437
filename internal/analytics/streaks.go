// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package analytics

import (
	"sort"

	"github.com/MKhiriev/trade-ledger-pro/models"
)

// Streaks summarizes per-day consistency over closed trades. Days are the
// unique local calendar days carrying at least one closed trade, walked in
// ascending date order. A day is profitable when its total P&L is strictly
// positive and losing when strictly negative; a zero-P&L day is skipped
// entirely and neither breaks nor extends a streak, mirroring how a
// zero-P&L trade counts toward neither wins nor losses in Summary.
type Streaks struct {
	CurrentWinStreak  int `json:"currentWinStreak"`
	CurrentLoseStreak int `json:"currentLoseStreak"`
	LongestWinStreak  int `json:"longestWinStreak"`
	LongestLoseStreak int `json:"longestLoseStreak"`
	ProfitableDays    int `json:"profitableDays"`
	LosingDays        int `json:"losingDays"`
}

// ComputeStreaks walks the unique trading days of the closed trades in
// ascending order and tracks current and longest win/lose streaks.
// The input slice is not modified.
func ComputeStreaks(trades []models.Trade) Streaks {
	dayPnL := make(map[string]float64)
	for _, t := range trades {
		if !t.Closed() {
			continue
		}
		dayPnL[t.DayKey()] += t.PnL()
	}

	days := make([]string, 0, len(dayPnL))
	for day := range dayPnL {
		days = append(days, day)
	}
	sort.Strings(days)

	var s Streaks
	for _, day := range days {
		pnl := dayPnL[day]
		switch {
		case pnl > 0:
			s.ProfitableDays++
			s.CurrentWinStreak++
			s.CurrentLoseStreak = 0
			if s.CurrentWinStreak > s.LongestWinStreak {
				s.LongestWinStreak = s.CurrentWinStreak
			}
		case pnl < 0:
			s.LosingDays++
			s.CurrentLoseStreak++
			s.CurrentWinStreak = 0
			if s.CurrentLoseStreak > s.LongestLoseStreak {
				s.LongestLoseStreak = s.CurrentLoseStreak
			}
		}
	}

	return s
}

// TargetProgress reports how far an actual value has come toward one goal
// target. An unset target yields Set=false and zero percent, never a
// division by zero.
type TargetProgress struct {
	Set     bool    `json:"set"`
	Target  float64 `json:"target"`
	Actual  float64 `json:"actual"`
	Percent float64 `json:"percent"`
}

// GoalProgress is the month view: actuals, streaks, and clamped progress
// toward each of the goal's optional targets.
type GoalProgress struct {
	TotalTrades    int     `json:"totalTrades"`
	ClosedTrades   int     `json:"closedTrades"`
	TotalPnL       float64 `json:"totalPnL"`
	WinRate        float64 `json:"winRate"`
	MaxTradesInDay int     `json:"maxTradesInDay"`

	Streaks Streaks `json:"streaks"`

	PnLProgress       TargetProgress `json:"pnlProgress"`
	WinRateProgress   TargetProgress `json:"winRateProgress"`
	TradesPerDayLimit TargetProgress `json:"tradesPerDayLimit"`
}

// ComputeGoalProgress derives the goal view for one month's trades. goal
// may be nil (no goal upserted yet); every target then reports "not set".
// Progress percentages are actual/target*100 clamped to [0,100].
func ComputeGoalProgress(monthTrades []models.Trade, goal *models.Goal) GoalProgress {
	summary := ComputeSummary(monthTrades)

	perDay := make(map[string]int)
	for _, t := range monthTrades {
		perDay[t.DayKey()]++
	}
	maxInDay := 0
	for _, n := range perDay {
		if n > maxInDay {
			maxInDay = n
		}
	}

	p := GoalProgress{
		TotalTrades:    summary.TotalTrades,
		ClosedTrades:   summary.ClosedTrades,
		TotalPnL:       summary.TotalPnL,
		WinRate:        summary.WinRate,
		MaxTradesInDay: maxInDay,
		Streaks:        ComputeStreaks(monthTrades),
	}

	if goal == nil {
		return p
	}

	if goal.TargetPnL != nil {
		p.PnLProgress = progressToward(summary.TotalPnL, *goal.TargetPnL)
	}
	if goal.TargetWinRate != nil {
		p.WinRateProgress = progressToward(summary.WinRate, *goal.TargetWinRate)
	}
	if goal.MaxTradesPerDay != nil {
		// For a limit, "progress" is how much of the allowance the busiest
		// day used; still clamped the same way.
		p.TradesPerDayLimit = progressToward(float64(maxInDay), float64(*goal.MaxTradesPerDay))
	}

	return p
}

func progressToward(actual, target float64) TargetProgress {
	tp := TargetProgress{Set: true, Target: target, Actual: actual}
	if target == 0 {
		return tp
	}

	pct := actual / target * 100
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	tp.Percent = pct

	return tp
}
