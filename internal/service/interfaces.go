package service

import (
	"context"

	"github.com/MKhiriev/trade-ledger-pro/internal/analytics"
	"github.com/MKhiriev/trade-ledger-pro/internal/store"
	"github.com/MKhiriev/trade-ledger-pro/models"
)

// AuthService owns the two-step login flow: password check, passcode
// challenge, and session issuance.
type AuthService interface {
	Signup(ctx context.Context, user models.User, password string) (models.User, error)
	Login(ctx context.Context, email, password string, method models.DeliveryMethod) (models.LoginResponse, error)
	VerifyOtp(ctx context.Context, userID int64, code string) (models.User, models.Token, error)
	ResendOtp(ctx context.Context, userID int64, method models.DeliveryMethod) (models.LoginResponse, error)
	Logout(ctx context.Context, sessionID string) error
	Authenticate(ctx context.Context, signedToken string) (models.Token, error)
	Profile(ctx context.Context, userID int64) (models.User, error)
}

// JournalService owns the trade log. Derived fields (profit/loss, status)
// are recomputed on every write; clients never supply them.
type JournalService interface {
	CreateTrade(ctx context.Context, trade models.Trade) (models.Trade, error)
	GetTrade(ctx context.Context, userID, tradeID int64) (models.Trade, error)
	ListTrades(ctx context.Context, userID int64, filter store.TradeFilter) ([]models.Trade, error)
	UpdateTrade(ctx context.Context, trade models.Trade) (models.Trade, error)
	DeleteTrade(ctx context.Context, userID, tradeID int64) error
	ToggleStar(ctx context.Context, userID, tradeID int64) (models.Trade, error)
}

// AnalyticsQuery narrows which trades feed an aggregate. Zero values mean
// "all trades".
type AnalyticsQuery struct {
	// Day filters to one local calendar day ("2006-01-02").
	Day string
	// Month (1-12) and Year filter to one calendar month. Both must be set
	// together.
	Month int
	Year  int
}

// AnalyticsService computes read-only aggregates over the user's journal.
type AnalyticsService interface {
	Summary(ctx context.Context, userID int64, query AnalyticsQuery) (analytics.Summary, error)
	Risk(ctx context.Context, userID int64) (analytics.RiskMetrics, error)
	Distribution(ctx context.Context, userID int64) (analytics.Distribution, error)
	Streaks(ctx context.Context, userID int64) (analytics.Streaks, error)
	GoalProgress(ctx context.Context, userID int64, month, year int) (analytics.GoalProgress, error)
}

// GoalService owns monthly targets.
type GoalService interface {
	UpsertGoal(ctx context.Context, goal models.Goal) (models.Goal, error)
	GetGoal(ctx context.Context, userID int64, month, year int) (models.Goal, error)
	ListGoals(ctx context.Context, userID int64) ([]models.Goal, error)
}

// PlaybookService owns the user's mistake log and pre-trade checklist.
type PlaybookService interface {
	CreateMistake(ctx context.Context, mistake models.Mistake) (models.Mistake, error)
	ListMistakes(ctx context.Context, userID int64) ([]models.Mistake, error)
	RepeatMistake(ctx context.Context, userID, mistakeID int64) (models.Mistake, error)
	DeleteMistake(ctx context.Context, userID, mistakeID int64) error

	CreateRule(ctx context.Context, rule models.TradingRule) (models.TradingRule, error)
	ListRules(ctx context.Context, userID int64) ([]models.TradingRule, error)
	UpdateRule(ctx context.Context, rule models.TradingRule) (models.TradingRule, error)
	DeleteRule(ctx context.Context, userID, ruleID int64) error
}

// AssistantService answers free-form questions about the user's journal
// through the configured language model.
type AssistantService interface {
	Chat(ctx context.Context, userID int64, message string) (string, error)
}

// ReportService renders the weekly performance report and goal alerts
// delivered by the background worker.
type ReportService interface {
	SendWeeklyReports(ctx context.Context) error
}
