package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/trade-ledger-pro/internal/logger"
)

const sessionPurgeInterval = time.Hour

// sessionPurger is the slice of store.SessionRepository the purge worker needs.
type sessionPurger interface {
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// sessionPurgeWorker deletes expired sessions so revoked and stale rows do
// not accumulate in storage.
type sessionPurgeWorker struct {
	sessions sessionPurger
	interval time.Duration
	logger   *logger.Logger
}

func newSessionPurgeWorker(sessions sessionPurger, logger *logger.Logger) *sessionPurgeWorker {
	return &sessionPurgeWorker{
		sessions: sessions,
		interval: sessionPurgeInterval,
		logger:   logger,
	}
}

func (w *sessionPurgeWorker) Run() {
	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for range ticker.C {
			deleted, err := w.sessions.DeleteExpiredSessions(context.Background(), time.Now())
			if err != nil {
				w.logger.Err(err).Str("func", "*sessionPurgeWorker.Run").Msg("error purging sessions")
				continue
			}
			if deleted > 0 {
				w.logger.Info().Int64("deleted", deleted).Msg("purged expired sessions")
			}
		}
	}()
}
