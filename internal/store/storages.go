package store

import "github.com/MKhiriev/trade-ledger-pro/internal/logger"

type Storages struct {
	UserRepository    UserRepository
	OtpRepository     OtpRepository
	SessionRepository SessionRepository
	TradeRepository   TradeRepository
	GoalRepository    GoalRepository
	MistakeRepository MistakeRepository
	RuleRepository    RuleRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		OtpRepository:     NewOtpRepository(db, log),
		SessionRepository: NewSessionRepository(db, log),
		TradeRepository:   NewTradeRepository(db, log),
		GoalRepository:    NewGoalRepository(db, log),
		MistakeRepository: NewMistakeRepository(db, log),
		RuleRepository:    NewRuleRepository(db, log),
	}
}
