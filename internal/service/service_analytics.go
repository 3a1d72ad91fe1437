// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/MKhiriev/trade-ledger-pro/internal/analytics"
	"github.com/MKhiriev/trade-ledger-pro/internal/logger"
	"github.com/MKhiriev/trade-ledger-pro/internal/store"
	"github.com/MKhiriev/trade-ledger-pro/models"
)

// analyticsService is the concrete implementation of [AnalyticsService].
// It loads the user's trades and delegates every computation to the pure
// functions in the analytics package.
type analyticsService struct {
	tradeRepository store.TradeRepository
	goalRepository  store.GoalRepository
	logger          *logger.Logger
}

// NewAnalyticsService constructs an [AnalyticsService] backed by the given
// repositories.
func NewAnalyticsService(tradeRepository store.TradeRepository, goalRepository store.GoalRepository, logger *logger.Logger) AnalyticsService {
	return &analyticsService{
		tradeRepository: tradeRepository,
		goalRepository:  goalRepository,
		logger:          logger,
	}
}

// Summary computes headline figures over the trades selected by query.
func (s *analyticsService) Summary(ctx context.Context, userID int64, query AnalyticsQuery) (analytics.Summary, error) {
	trades, err := s.loadTrades(ctx, userID)
	if err != nil {
		return analytics.Summary{}, err
	}

	trades, err = applyQuery(trades, query)
	if err != nil {
		return analytics.Summary{}, err
	}

	return analytics.ComputeSummary(trades), nil
}

// Risk computes drawdown, Sharpe, and reward/risk figures over the user's
// full history in chronological order.
func (s *analyticsService) Risk(ctx context.Context, userID int64) (analytics.RiskMetrics, error) {
	trades, err := s.loadTrades(ctx, userID)
	if err != nil {
		return analytics.RiskMetrics{}, err
	}

	// Drawdown depends on walk order; the repository returns newest first.
	sortChronological(trades)

	return analytics.ComputeRiskMetrics(trades), nil
}

// Distribution buckets the user's closed trades by symbol, type, and
// day of week.
func (s *analyticsService) Distribution(ctx context.Context, userID int64) (analytics.Distribution, error) {
	trades, err := s.loadTrades(ctx, userID)
	if err != nil {
		return analytics.Distribution{}, err
	}

	return analytics.ComputeDistribution(trades), nil
}

// Streaks computes day-level win and loss streaks over the user's full
// history.
func (s *analyticsService) Streaks(ctx context.Context, userID int64) (analytics.Streaks, error) {
	trades, err := s.loadTrades(ctx, userID)
	if err != nil {
		return analytics.Streaks{}, err
	}

	return analytics.ComputeStreaks(trades), nil
}

// GoalProgress reports the month's actuals against the user's goal for that
// month. A missing goal is not an error; every target then reads "not set".
func (s *analyticsService) GoalProgress(ctx context.Context, userID int64, month, year int) (analytics.GoalProgress, error) {
	if month < 1 || month > 12 {
		return analytics.GoalProgress{}, ErrInvalidDataProvided
	}

	trades, err := s.loadTrades(ctx, userID)
	if err != nil {
		return analytics.GoalProgress{}, err
	}
	monthTrades := analytics.FilterByMonth(trades, month, year)

	var goal *models.Goal
	found, err := s.goalRepository.FindGoal(ctx, userID, month, year)
	switch {
	case err == nil:
		goal = &found
	case errors.Is(err, store.ErrGoalNotFound):
		// no goal set for this month
	default:
		return analytics.GoalProgress{}, fmt.Errorf("goal lookup failed: %w", err)
	}

	return analytics.ComputeGoalProgress(monthTrades, goal), nil
}

func (s *analyticsService) loadTrades(ctx context.Context, userID int64) ([]models.Trade, error) {
	trades, err := s.tradeRepository.ListTrades(ctx, userID, store.TradeFilter{})
	if err != nil {
		return nil, fmt.Errorf("trade listing failed: %w", err)
	}

	return trades, nil
}

func applyQuery(trades []models.Trade, query AnalyticsQuery) ([]models.Trade, error) {
	if query.Day != "" {
		day, err := time.Parse("2006-01-02", query.Day)
		if err != nil {
			return nil, ErrInvalidDataProvided
		}
		return analytics.FilterByDay(trades, day), nil
	}

	if query.Month != 0 || query.Year != 0 {
		if query.Month < 1 || query.Month > 12 || query.Year == 0 {
			return nil, ErrInvalidDataProvided
		}
		return analytics.FilterByMonth(trades, query.Month, query.Year), nil
	}

	return trades, nil
}

func sortChronological(trades []models.Trade) {
	sort.SliceStable(trades, func(i, j int) bool {
		if trades[i].TradeDate.Equal(trades[j].TradeDate) {
			return trades[i].ID < trades[j].ID
		}
		return trades[i].TradeDate.Before(trades[j].TradeDate)
	})
}
