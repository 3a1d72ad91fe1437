package store

import (
	"context"
	"time"

	"github.com/MKhiriev/trade-ledger-pro/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	GetUserByID(ctx context.Context, userID int64) (models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
}

// OtpRepository persists passcode challenges. CreateChallenge atomically
// consumes every previous challenge of the same user, so at most one
// unconsumed challenge per user exists at any time.
type OtpRepository interface {
	CreateChallenge(ctx context.Context, challenge models.OtpChallenge) (models.OtpChallenge, error)
	FindActiveChallenge(ctx context.Context, userID int64) (models.OtpChallenge, error)
	ConsumeChallenge(ctx context.Context, challengeID int64) error
}

type SessionRepository interface {
	CreateSession(ctx context.Context, session models.Session) (models.Session, error)
	FindSession(ctx context.Context, sessionID string) (models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// TradeFilter narrows ListTrades results. Zero-valued fields are ignored.
type TradeFilter struct {
	From      *time.Time
	To        *time.Time
	Symbol    string
	Status    models.TradeStatus
	Starred   *bool
	TradeType models.TradeType
}

type TradeRepository interface {
	CreateTrade(ctx context.Context, trade models.Trade) (models.Trade, error)
	GetTrade(ctx context.Context, userID, tradeID int64) (models.Trade, error)
	ListTrades(ctx context.Context, userID int64, filter TradeFilter) ([]models.Trade, error)
	UpdateTrade(ctx context.Context, trade models.Trade) (models.Trade, error)
	DeleteTrade(ctx context.Context, userID, tradeID int64) error
}

type GoalRepository interface {
	UpsertGoal(ctx context.Context, goal models.Goal) (models.Goal, error)
	FindGoal(ctx context.Context, userID int64, month, year int) (models.Goal, error)
	ListGoals(ctx context.Context, userID int64) ([]models.Goal, error)
}

type MistakeRepository interface {
	CreateMistake(ctx context.Context, mistake models.Mistake) (models.Mistake, error)
	ListMistakes(ctx context.Context, userID int64) ([]models.Mistake, error)
	IncrementFrequency(ctx context.Context, userID, mistakeID int64) (models.Mistake, error)
	DeleteMistake(ctx context.Context, userID, mistakeID int64) error
}

type RuleRepository interface {
	CreateRule(ctx context.Context, rule models.TradingRule) (models.TradingRule, error)
	ListRules(ctx context.Context, userID int64) ([]models.TradingRule, error)
	UpdateRule(ctx context.Context, rule models.TradingRule) (models.TradingRule, error)
	DeleteRule(ctx context.Context, userID, ruleID int64) error
}
