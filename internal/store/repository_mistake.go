package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MKhiriev/trade-ledger-pro/internal/logger"
	"github.com/MKhiriev/trade-ledger-pro/models"
)

// mistakeRepository is the SQL-backed implementation of [MistakeRepository].
type mistakeRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMistakeRepository constructs a [MistakeRepository] backed by the
// provided database connection and logger.
func NewMistakeRepository(db *DB, logger *logger.Logger) MistakeRepository {
	logger.Debug().Msg("creating mistake repository")
	return &mistakeRepository{
		db:     db,
		logger: logger,
	}
}

func scanMistake(row interface{ Scan(dest ...any) error }, m *models.Mistake) error {
	return row.Scan(&m.ID, &m.UserID, &m.Title, &m.Category, &m.Description, &m.Frequency, &m.CreatedAt)
}

// CreateMistake persists a new mistake and returns it with server-assigned
// fields (ID, CreatedAt).
func (r *mistakeRepository) CreateMistake(ctx context.Context, mistake models.Mistake) (models.Mistake, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createMistake, mistake.UserID, mistake.Title, mistake.Category, mistake.Description, mistake.Frequency)
	if err := scanMistake(row, &mistake); err != nil {
		log.Err(err).Str("func", "*mistakeRepository.CreateMistake").Msg("error: scanning error")
		return models.Mistake{}, errors.Join(ErrScanningRow, err)
	}

	return mistake, nil
}

// ListMistakes returns the user's mistakes ordered by frequency, most
// frequent first.
func (r *mistakeRepository) ListMistakes(ctx context.Context, userID int64) ([]models.Mistake, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listMistakes, userID)
	if err != nil {
		log.Err(err).Str("func", "*mistakeRepository.ListMistakes").Msg("error executing query")
		return nil, errors.Join(ErrExecutingQuery, err)
	}
	defer rows.Close()

	var mistakes []models.Mistake
	for rows.Next() {
		var m models.Mistake
		if err := scanMistake(rows, &m); err != nil {
			log.Err(err).Str("func", "*mistakeRepository.ListMistakes").Msg("error scanning rows")
			return nil, errors.Join(ErrScanningRows, err)
		}
		mistakes = append(mistakes, m)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrScanningRows, err)
	}

	return mistakes, nil
}

// IncrementFrequency bumps the repeat counter of the mistake identified by
// (mistakeID, userID) and returns the updated row.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrMistakeNotFound].
func (r *mistakeRepository) IncrementFrequency(ctx context.Context, userID, mistakeID int64) (models.Mistake, error) {
	log := logger.FromContext(ctx)

	var mistake models.Mistake
	row := r.db.QueryRowContext(ctx, incrementMistakeFrequency, mistakeID, userID)
	if err := scanMistake(row, &mistake); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Mistake{}, ErrMistakeNotFound
		}
		log.Err(err).Str("func", "*mistakeRepository.IncrementFrequency").Msg("error: scanning error")
		return models.Mistake{}, errors.Join(ErrScanningRow, err)
	}

	return mistake, nil
}

// DeleteMistake removes the mistake identified by (mistakeID, userID).
//
// Error handling:
//   - zero affected rows → [ErrMistakeNotFound].
func (r *mistakeRepository) DeleteMistake(ctx context.Context, userID, mistakeID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteMistake, mistakeID, userID)
	if err != nil {
		log.Err(err).Str("func", "*mistakeRepository.DeleteMistake").Msg("error executing statement")
		return errors.Join(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Join(ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrMistakeNotFound
	}

	return nil
}
