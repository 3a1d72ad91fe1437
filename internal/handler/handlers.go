package handler

import (
	"github.com/MKhiriev/trade-ledger-pro/internal/config"
	"github.com/MKhiriev/trade-ledger-pro/internal/handler/http"
	"github.com/MKhiriev/trade-ledger-pro/internal/logger"
	"github.com/MKhiriev/trade-ledger-pro/internal/news"
	"github.com/MKhiriev/trade-ledger-pro/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, newsFetcher *news.Fetcher, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, newsFetcher, logger),
	}, nil
}
