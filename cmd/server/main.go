package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/trade-ledger-pro/internal/config"
	"github.com/MKhiriev/trade-ledger-pro/internal/delivery"
	"github.com/MKhiriev/trade-ledger-pro/internal/handler"
	"github.com/MKhiriev/trade-ledger-pro/internal/llm"
	"github.com/MKhiriev/trade-ledger-pro/internal/logger"
	"github.com/MKhiriev/trade-ledger-pro/internal/news"
	"github.com/MKhiriev/trade-ledger-pro/internal/server"
	"github.com/MKhiriev/trade-ledger-pro/internal/service"
	"github.com/MKhiriev/trade-ledger-pro/internal/store"
	"github.com/MKhiriev/trade-ledger-pro/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("trade-ledger-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := connectDB(cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)

	sender := delivery.NewSender(
		delivery.NewEmailChannel(cfg.Email, log),
		delivery.NewSMSChannel(cfg.SMS, log),
	)

	services := service.NewServices(storages, sender, newLLMClient(cfg.Assistant), cfg, log)

	handlers, err := handler.NewHandlers(services, news.NewFetcher(cfg.News, log), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	workers.NewWorkers(services, storages, cfg.Workers, log).Run()

	srv.RunServer()
}

func connectDB(cfg config.DB, log *logger.Logger) (*store.DB, error) {
	switch cfg.Driver {
	case "sqlite3":
		return store.NewConnectSQLite(context.Background(), cfg, log)
	default:
		return store.NewConnectPostgres(context.Background(), cfg, log)
	}
}

// newLLMClient picks the OpenAI backend when an API key is configured and a
// stub that reports the assistant unavailable otherwise.
func newLLMClient(cfg config.Assistant) llm.Client {
	if cfg.APIKey == "" {
		return llm.Unavailable{}
	}
	return llm.NewOpenAIClient(cfg.APIKey, cfg.Model)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
