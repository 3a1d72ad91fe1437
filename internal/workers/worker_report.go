// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/trade-ledger-pro/internal/logger"
	"github.com/MKhiriev/trade-ledger-pro/internal/service"
)

// reportWorker periodically triggers weekly performance reports.
// A zero interval disables the worker.
type reportWorker struct {
	reports  service.ReportService
	interval time.Duration
	logger   *logger.Logger
}

func newReportWorker(reports service.ReportService, interval time.Duration, logger *logger.Logger) *reportWorker {
	return &reportWorker{
		reports:  reports,
		interval: interval,
		logger:   logger,
	}
}

func (w *reportWorker) Run() {
	if w.interval <= 0 {
		w.logger.Info().Msg("report worker disabled")
		return
	}

	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for range ticker.C {
			if err := w.reports.SendWeeklyReports(context.Background()); err != nil {
				w.logger.Err(err).Str("func", "*reportWorker.Run").Msg("error sending weekly reports")
			}
		}
	}()
}
