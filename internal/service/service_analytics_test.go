// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/trade-ledger-pro/internal/logger"
	"github.com/MKhiriev/trade-ledger-pro/internal/store"
	"github.com/MKhiriev/trade-ledger-pro/models"
)

// ─────────────────────────────────────────────
// Mock: store.GoalRepository
// ─────────────────────────────────────────────

type mockGoalRepository struct {
	upsertGoalFn func(ctx context.Context, goal models.Goal) (models.Goal, error)
	findGoalFn   func(ctx context.Context, userID int64, month, year int) (models.Goal, error)
	listGoalsFn  func(ctx context.Context, userID int64) ([]models.Goal, error)
}

func (m *mockGoalRepository) UpsertGoal(ctx context.Context, goal models.Goal) (models.Goal, error) {
	if m.upsertGoalFn != nil {
		return m.upsertGoalFn(ctx, goal)
	}
	return goal, nil
}

func (m *mockGoalRepository) FindGoal(ctx context.Context, userID int64, month, year int) (models.Goal, error) {
	if m.findGoalFn != nil {
		return m.findGoalFn(ctx, userID, month, year)
	}
	return models.Goal{}, store.ErrGoalNotFound
}

func (m *mockGoalRepository) ListGoals(ctx context.Context, userID int64) ([]models.Goal, error) {
	if m.listGoalsFn != nil {
		return m.listGoalsFn(ctx, userID)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func closedTrade(id int64, day time.Time, pnl float64) models.Trade {
	exit := 100 + pnl
	return models.Trade{
		ID:         id,
		UserID:     7,
		Symbol:     "AAPL",
		TradeType:  models.TradeBuy,
		EntryPrice: 100,
		ExitPrice:  &exit,
		Quantity:   1,
		ProfitLoss: &pnl,
		Status:     models.TradeClosed,
		TradeDate:  day,
	}
}

func newTestAnalyticsService(trades *mockTradeRepository, goals *mockGoalRepository) AnalyticsService {
	return NewAnalyticsService(trades, goals, logger.Nop())
}

// ─────────────────────────────────────────────
// Summary
// ─────────────────────────────────────────────

func TestAnalyticsService_Summary_AllTrades(t *testing.T) {
	august := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)
	trades := &mockTradeRepository{
		listTradesFn: func(_ context.Context, _ int64, _ store.TradeFilter) ([]models.Trade, error) {
			return []models.Trade{
				closedTrade(1, august, 200),
				closedTrade(2, august.AddDate(0, 0, 1), -50),
			}, nil
		},
	}
	svc := newTestAnalyticsService(trades, &mockGoalRepository{})

	summary, err := svc.Summary(context.Background(), 7, AnalyticsQuery{})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.TotalTrades)
	assert.InDelta(t, 150.0, summary.TotalPnL, 1e-9)
	assert.InDelta(t, 50.0, summary.WinRate, 1e-9)
}

func TestAnalyticsService_Summary_MonthFilter(t *testing.T) {
	trades := &mockTradeRepository{
		listTradesFn: func(_ context.Context, _ int64, _ store.TradeFilter) ([]models.Trade, error) {
			return []models.Trade{
				closedTrade(1, time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC), 100),
				closedTrade(2, time.Date(2026, 7, 30, 0, 0, 0, 0, time.UTC), 500),
			}, nil
		},
	}
	svc := newTestAnalyticsService(trades, &mockGoalRepository{})

	summary, err := svc.Summary(context.Background(), 7, AnalyticsQuery{Month: 8, Year: 2026})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.TotalTrades)
	assert.InDelta(t, 100.0, summary.TotalPnL, 1e-9)
}

func TestAnalyticsService_Summary_DayFilter(t *testing.T) {
	trades := &mockTradeRepository{
		listTradesFn: func(_ context.Context, _ int64, _ store.TradeFilter) ([]models.Trade, error) {
			return []models.Trade{
				closedTrade(1, time.Date(2026, 8, 3, 9, 30, 0, 0, time.UTC), 100),
				closedTrade(2, time.Date(2026, 8, 3, 15, 45, 0, 0, time.UTC), 25),
				closedTrade(3, time.Date(2026, 8, 4, 9, 30, 0, 0, time.UTC), 500),
			}, nil
		},
	}
	svc := newTestAnalyticsService(trades, &mockGoalRepository{})

	summary, err := svc.Summary(context.Background(), 7, AnalyticsQuery{Day: "2026-08-03"})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.TotalTrades, "both trades of the day regardless of time")
	assert.InDelta(t, 125.0, summary.TotalPnL, 1e-9)
}

func TestAnalyticsService_Summary_BadQuery(t *testing.T) {
	svc := newTestAnalyticsService(&mockTradeRepository{}, &mockGoalRepository{})

	_, err := svc.Summary(context.Background(), 7, AnalyticsQuery{Day: "03.08.2026"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Summary(context.Background(), 7, AnalyticsQuery{Month: 13, Year: 2026})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Summary(context.Background(), 7, AnalyticsQuery{Month: 8})
	assert.ErrorIs(t, err, ErrInvalidDataProvided, "month without year is ambiguous")
}

// ─────────────────────────────────────────────
// Risk
// ─────────────────────────────────────────────

func TestAnalyticsService_Risk(t *testing.T) {
	august := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)
	trades := &mockTradeRepository{
		listTradesFn: func(_ context.Context, _ int64, _ store.TradeFilter) ([]models.Trade, error) {
			// Newest first, the repository's natural order.
			return []models.Trade{
				closedTrade(3, august.AddDate(0, 0, 2), 10),
				closedTrade(2, august.AddDate(0, 0, 1), -50),
				closedTrade(1, august, 200),
			}, nil
		},
	}
	svc := newTestAnalyticsService(trades, &mockGoalRepository{})

	risk, err := svc.Risk(context.Background(), 7)
	require.NoError(t, err)

	// Chronologically: +200, -50, +10. Peak 200, trough 150.
	assert.InDelta(t, 50.0, risk.MaxDrawdown, 1e-9)
	assert.InDelta(t, 210.0, risk.GrossProfit, 1e-9)
	assert.InDelta(t, 50.0, risk.GrossLoss, 1e-9)
	assert.InDelta(t, 4.2, risk.ProfitFactor, 1e-9)
}

func TestAnalyticsService_Risk_SharpeAnnualized(t *testing.T) {
	august := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)
	trades := &mockTradeRepository{
		listTradesFn: func(_ context.Context, _ int64, _ store.TradeFilter) ([]models.Trade, error) {
			return []models.Trade{
				closedTrade(1, august, 30),
				closedTrade(2, august.AddDate(0, 0, 1), 10),
			}, nil
		},
	}
	svc := newTestAnalyticsService(trades, &mockGoalRepository{})

	risk, err := svc.Risk(context.Background(), 7)
	require.NoError(t, err)

	// Mean 20, population stddev 10, annualized by sqrt(252).
	assert.InDelta(t, 2*math.Sqrt(252), risk.SharpeRatio, 1e-9)
}

// ─────────────────────────────────────────────
// Streaks
// ─────────────────────────────────────────────

func TestAnalyticsService_Streaks_SkipsZeroDays(t *testing.T) {
	august := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)
	trades := &mockTradeRepository{
		listTradesFn: func(_ context.Context, _ int64, _ store.TradeFilter) ([]models.Trade, error) {
			return []models.Trade{
				closedTrade(1, august, 100),
				// Day two nets to zero and must not break the streak.
				closedTrade(2, august.AddDate(0, 0, 1), 40),
				closedTrade(3, august.AddDate(0, 0, 1), -40),
				closedTrade(4, august.AddDate(0, 0, 2), 60),
			}, nil
		},
	}
	svc := newTestAnalyticsService(trades, &mockGoalRepository{})

	streaks, err := svc.Streaks(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, 2, streaks.CurrentWinStreak)
	assert.Equal(t, 2, streaks.LongestWinStreak)
	assert.Equal(t, 2, streaks.ProfitableDays)
	assert.Equal(t, 0, streaks.LosingDays)
}

// ─────────────────────────────────────────────
// GoalProgress
// ─────────────────────────────────────────────

func TestAnalyticsService_GoalProgress_Clamped(t *testing.T) {
	august := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)
	trades := &mockTradeRepository{
		listTradesFn: func(_ context.Context, _ int64, _ store.TradeFilter) ([]models.Trade, error) {
			return []models.Trade{closedTrade(1, august, 1500)}, nil
		},
	}
	goals := &mockGoalRepository{
		findGoalFn: func(_ context.Context, userID int64, month, year int) (models.Goal, error) {
			require.Equal(t, 8, month)
			require.Equal(t, 2026, year)
			return models.Goal{UserID: userID, Month: month, Year: year, TargetPnL: floatPtr(1000)}, nil
		},
	}
	svc := newTestAnalyticsService(trades, goals)

	progress, err := svc.GoalProgress(context.Background(), 7, 8, 2026)
	require.NoError(t, err)

	require.True(t, progress.PnLProgress.Set)
	assert.InDelta(t, 100.0, progress.PnLProgress.Percent, 1e-9, "progress past the target is clamped")
	assert.InDelta(t, 1500.0, progress.PnLProgress.Actual, 1e-9)
	assert.False(t, progress.WinRateProgress.Set)
}

func TestAnalyticsService_GoalProgress_NoGoal(t *testing.T) {
	svc := newTestAnalyticsService(&mockTradeRepository{}, &mockGoalRepository{})

	progress, err := svc.GoalProgress(context.Background(), 7, 8, 2026)
	require.NoError(t, err, "a month without a goal is not an error")

	assert.False(t, progress.PnLProgress.Set)
	assert.False(t, progress.WinRateProgress.Set)
	assert.False(t, progress.TradesPerDayLimit.Set)
}

func TestAnalyticsService_GoalProgress_BadMonth(t *testing.T) {
	svc := newTestAnalyticsService(&mockTradeRepository{}, &mockGoalRepository{})

	_, err := svc.GoalProgress(context.Background(), 7, 0, 2026)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}
