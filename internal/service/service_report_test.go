package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/trade-ledger-pro/internal/delivery"
	"github.com/MKhiriev/trade-ledger-pro/internal/logger"
	"github.com/MKhiriev/trade-ledger-pro/internal/store"
	"github.com/MKhiriev/trade-ledger-pro/models"
)

func newTestReportService(users *mockUserRepository, trades *mockTradeRepository, goals *mockGoalRepository, email *mockChannel) *reportService {
	storages := &store.Storages{
		UserRepository:  users,
		TradeRepository: trades,
		GoalRepository:  goals,
	}
	svc := NewReportService(storages, delivery.NewSender(email, &mockChannel{}), logger.Nop()).(*reportService)
	svc.now = func() time.Time { return time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC) }
	return svc
}

func TestReportService_SendWeeklyReports(t *testing.T) {
	users := &mockUserRepository{
		getAllUsersFn: func(_ context.Context) ([]models.User, error) {
			return []models.User{
				{UserID: 1, Name: "Jane", Email: "jane@example.com"},
				{UserID: 2, Name: "Idle", Email: "idle@example.com"},
			}, nil
		},
	}
	trades := &mockTradeRepository{
		listTradesFn: func(_ context.Context, userID int64, filter store.TradeFilter) ([]models.Trade, error) {
			if userID != 1 {
				return nil, nil
			}
			if filter.From != nil {
				// The weekly window: 7 days back from the fixed clock.
				assert.Equal(t, time.Date(2026, 8, 3, 9, 0, 0, 0, time.UTC), *filter.From)
			}
			return []models.Trade{closedTrade(1, time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC), 150)}, nil
		},
	}
	email := &mockChannel{configured: true}
	svc := newTestReportService(users, trades, &mockGoalRepository{}, email)

	require.NoError(t, svc.SendWeeklyReports(context.Background()))

	require.Len(t, email.sentReports, 1, "users without trades this week get no report")
	assert.Contains(t, email.sentReports[0], "Jane")
	assert.Contains(t, email.sentReports[0], "150.00")
}

func TestReportService_SendWeeklyReports_Unconfigured(t *testing.T) {
	users := &mockUserRepository{
		getAllUsersFn: func(_ context.Context) ([]models.User, error) {
			t.Fatal("an unconfigured channel must short-circuit before listing users")
			return nil, nil
		},
	}
	svc := newTestReportService(users, &mockTradeRepository{}, &mockGoalRepository{}, &mockChannel{configured: false})

	require.NoError(t, svc.SendWeeklyReports(context.Background()))
}

func TestReportService_SendWeeklyReports_GoalAlert(t *testing.T) {
	users := &mockUserRepository{
		getAllUsersFn: func(_ context.Context) ([]models.User, error) {
			return []models.User{{UserID: 1, Name: "Jane", Email: "jane@example.com"}}, nil
		},
	}
	trades := &mockTradeRepository{
		listTradesFn: func(_ context.Context, _ int64, _ store.TradeFilter) ([]models.Trade, error) {
			return []models.Trade{closedTrade(1, time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC), 1200)}, nil
		},
	}
	goals := &mockGoalRepository{
		findGoalFn: func(_ context.Context, userID int64, month, year int) (models.Goal, error) {
			require.Equal(t, 8, month)
			require.Equal(t, 2026, year)
			return models.Goal{UserID: userID, Month: month, Year: year, TargetPnL: floatPtr(1000)}, nil
		},
	}
	email := &mockChannel{configured: true}
	svc := newTestReportService(users, trades, goals, email)

	require.NoError(t, svc.SendWeeklyReports(context.Background()))

	require.Len(t, email.sentAlerts, 1)
	assert.Contains(t, email.sentAlerts[0], "1000.00")
	assert.Contains(t, email.sentAlerts[0], "1200.00")
}

func TestReportService_SendWeeklyReports_NoAlertBelowTarget(t *testing.T) {
	users := &mockUserRepository{
		getAllUsersFn: func(_ context.Context) ([]models.User, error) {
			return []models.User{{UserID: 1, Name: "Jane", Email: "jane@example.com"}}, nil
		},
	}
	trades := &mockTradeRepository{
		listTradesFn: func(_ context.Context, _ int64, _ store.TradeFilter) ([]models.Trade, error) {
			return []models.Trade{closedTrade(1, time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC), 300)}, nil
		},
	}
	goals := &mockGoalRepository{
		findGoalFn: func(_ context.Context, userID int64, month, year int) (models.Goal, error) {
			return models.Goal{UserID: userID, Month: month, Year: year, TargetPnL: floatPtr(1000)}, nil
		},
	}
	email := &mockChannel{configured: true}
	svc := newTestReportService(users, trades, goals, email)

	require.NoError(t, svc.SendWeeklyReports(context.Background()))
	assert.Empty(t, email.sentAlerts)
	assert.Len(t, email.sentReports, 1)
}

func TestReportService_SendWeeklyReports_PartialFailure(t *testing.T) {
	users := &mockUserRepository{
		getAllUsersFn: func(_ context.Context) ([]models.User, error) {
			return []models.User{
				{UserID: 1, Name: "Broken", Email: "broken@example.com"},
				{UserID: 2, Name: "Jane", Email: "jane@example.com"},
			}, nil
		},
	}
	trades := &mockTradeRepository{
		listTradesFn: func(_ context.Context, userID int64, _ store.TradeFilter) ([]models.Trade, error) {
			if userID == 1 {
				return nil, errors.New("connection reset")
			}
			return []models.Trade{closedTrade(1, time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC), 10)}, nil
		},
	}
	email := &mockChannel{configured: true}
	svc := newTestReportService(users, trades, &mockGoalRepository{}, email)

	err := svc.SendWeeklyReports(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2")

	assert.Len(t, email.sentReports, 1, "the failing user does not block the rest")
}
