package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MKhiriev/trade-ledger-pro/internal/logger"
	"github.com/MKhiriev/trade-ledger-pro/models"
)

// goalRepository is the SQL-backed implementation of [GoalRepository].
// Writes go through an ON CONFLICT upsert keyed by (user_id, month, year)
// so at most one goal row exists per user per calendar month.
type goalRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewGoalRepository constructs a [GoalRepository] backed by the provided
// database connection and logger.
func NewGoalRepository(db *DB, logger *logger.Logger) GoalRepository {
	logger.Debug().Msg("creating goal repository")
	return &goalRepository{
		db:     db,
		logger: logger,
	}
}

func scanGoal(row interface{ Scan(dest ...any) error }, g *models.Goal) error {
	return row.Scan(&g.ID, &g.UserID, &g.Month, &g.Year, &g.TargetPnL, &g.TargetWinRate, &g.MaxTradesPerDay, &g.CreatedAt, &g.UpdatedAt)
}

// UpsertGoal inserts the goal or, when a row for (user_id, month, year)
// already exists, overwrites its targets.
func (r *goalRepository) UpsertGoal(ctx context.Context, goal models.Goal) (models.Goal, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, upsertGoal,
		goal.UserID, goal.Month, goal.Year,
		goal.TargetPnL, goal.TargetWinRate, goal.MaxTradesPerDay,
	)
	if err := scanGoal(row, &goal); err != nil {
		log.Err(err).Str("func", "*goalRepository.UpsertGoal").Msg("error: scanning error")
		return models.Goal{}, errors.Join(ErrScanningRow, err)
	}

	return goal, nil
}

// FindGoal returns the user's goal for the given month and year.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrGoalNotFound].
func (r *goalRepository) FindGoal(ctx context.Context, userID int64, month, year int) (models.Goal, error) {
	log := logger.FromContext(ctx)

	var goal models.Goal
	row := r.db.QueryRowContext(ctx, findGoal, userID, month, year)
	if err := scanGoal(row, &goal); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Goal{}, ErrGoalNotFound
		}
		log.Err(err).Str("func", "*goalRepository.FindGoal").Msg("error: scanning error")
		return models.Goal{}, errors.Join(ErrScanningRow, err)
	}

	return goal, nil
}

// ListGoals returns all of the user's goals, newest month first.
func (r *goalRepository) ListGoals(ctx context.Context, userID int64) ([]models.Goal, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listGoals, userID)
	if err != nil {
		log.Err(err).Str("func", "*goalRepository.ListGoals").Msg("error executing query")
		return nil, errors.Join(ErrExecutingQuery, err)
	}
	defer rows.Close()

	var goals []models.Goal
	for rows.Next() {
		var g models.Goal
		if err := scanGoal(rows, &g); err != nil {
			log.Err(err).Str("func", "*goalRepository.ListGoals").Msg("error scanning rows")
			return nil, errors.Join(ErrScanningRows, err)
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrScanningRows, err)
	}

	return goals, nil
}
