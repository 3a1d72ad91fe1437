package workers

import (
	"github.com/MKhiriev/trade-ledger-pro/internal/config"
	"github.com/MKhiriev/trade-ledger-pro/internal/logger"
	"github.com/MKhiriev/trade-ledger-pro/internal/service"
	"github.com/MKhiriev/trade-ledger-pro/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles every background worker the application runs: the
// periodic weekly-report sender and the expired-session purge.
func NewWorkers(services *service.Services, storages *store.Storages, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			newReportWorker(services.ReportService, cfg.ReportInterval, logger),
			newSessionPurgeWorker(storages.SessionRepository, logger),
		},
	}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
