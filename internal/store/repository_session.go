package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/MKhiriev/trade-ledger-pro/internal/logger"
	"github.com/MKhiriev/trade-ledger-pro/models"
)

// sessionRepository is the SQL-backed implementation of [SessionRepository].
// A session row existing is what makes its JWT valid; deleting the row
// revokes the token.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided database connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSession persists a new session row. The caller supplies the ID
// (a UUID that doubles as the JWT jti claim).
func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) (models.Session, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createSession, session.ID, session.UserID, session.ExpiresAt)
	if err := row.Scan(&session.ID, &session.UserID, &session.CreatedAt, &session.ExpiresAt); err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error: scanning error")
		return models.Session{}, errors.Join(ErrScanningRow, err)
	}

	return session, nil
}

// FindSession returns the session row with the given ID.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrSessionNotFound].
func (r *sessionRepository) FindSession(ctx context.Context, sessionID string) (models.Session, error) {
	log := logger.FromContext(ctx)

	var session models.Session
	row := r.db.QueryRowContext(ctx, findSession, sessionID)

	if err := row.Scan(&session.ID, &session.UserID, &session.CreatedAt, &session.ExpiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrSessionNotFound
		}
		log.Err(err).Str("func", "*sessionRepository.FindSession").Msg("error: scanning error")
		return models.Session{}, errors.Join(ErrScanningRow, err)
	}

	return session, nil
}

// DeleteSession removes the session row, revoking its JWT. Deleting an
// already-deleted session is not an error.
func (r *sessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteSession, sessionID); err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteSession").Msg("error executing statement")
		return errors.Join(ErrExecutingStatement, err)
	}

	return nil
}

// DeleteExpiredSessions removes every session whose ExpiresAt is before now
// and returns the number of rows deleted.
func (r *sessionRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteExpiredSessions, now)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteExpiredSessions").Msg("error executing statement")
		return 0, errors.Join(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, errors.Join(ErrExecutingStatement, err)
	}

	return affected, nil
}
