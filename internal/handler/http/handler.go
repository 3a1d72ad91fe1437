package http

import (
	"github.com/MKhiriev/trade-ledger-pro/internal/logger"
	"github.com/MKhiriev/trade-ledger-pro/internal/news"
	"github.com/MKhiriev/trade-ledger-pro/internal/service"
)

type Handler struct {
	services *service.Services
	news     *news.Fetcher

	logger *logger.Logger
}

func NewHandler(services *service.Services, newsFetcher *news.Fetcher, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		news:     newsFetcher,
		logger:   logger,
	}
}
