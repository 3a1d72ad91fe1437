package service

import (
	"github.com/MKhiriev/trade-ledger-pro/internal/config"
	"github.com/MKhiriev/trade-ledger-pro/internal/delivery"
	"github.com/MKhiriev/trade-ledger-pro/internal/llm"
	"github.com/MKhiriev/trade-ledger-pro/internal/logger"
	"github.com/MKhiriev/trade-ledger-pro/internal/store"
)

type Services struct {
	AuthService      AuthService
	JournalService   JournalService
	AnalyticsService AnalyticsService
	GoalService      GoalService
	PlaybookService  PlaybookService
	AssistantService AssistantService
	ReportService    ReportService
}

func NewServices(storages *store.Storages, sender *delivery.Sender, llmClient llm.Client, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:      NewAuthService(storages, sender, cfg.App, logger),
		JournalService:   NewJournalService(storages.TradeRepository, logger),
		AnalyticsService: NewAnalyticsService(storages.TradeRepository, storages.GoalRepository, logger),
		GoalService:      NewGoalService(storages.GoalRepository, logger),
		PlaybookService:  NewPlaybookService(storages.MistakeRepository, storages.RuleRepository, logger),
		AssistantService: NewAssistantService(storages, llmClient, logger),
		ReportService:    NewReportService(storages, sender, logger),
	}
}
