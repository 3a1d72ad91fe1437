package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MKhiriev/trade-ledger-pro/internal/logger"
	"github.com/MKhiriev/trade-ledger-pro/models"
)

// ruleRepository is the SQL-backed implementation of [RuleRepository].
type ruleRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRuleRepository constructs a [RuleRepository] backed by the provided
// database connection and logger.
func NewRuleRepository(db *DB, logger *logger.Logger) RuleRepository {
	logger.Debug().Msg("creating rule repository")
	return &ruleRepository{
		db:     db,
		logger: logger,
	}
}

func scanRule(row interface{ Scan(dest ...any) error }, tr *models.TradingRule) error {
	return row.Scan(&tr.ID, &tr.UserID, &tr.Rule, &tr.Position, &tr.IsActive, &tr.CreatedAt)
}

// CreateRule persists a new checklist rule and returns it with
// server-assigned fields (ID, CreatedAt).
func (r *ruleRepository) CreateRule(ctx context.Context, rule models.TradingRule) (models.TradingRule, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createRule, rule.UserID, rule.Rule, rule.Position, rule.IsActive)
	if err := scanRule(row, &rule); err != nil {
		log.Err(err).Str("func", "*ruleRepository.CreateRule").Msg("error: scanning error")
		return models.TradingRule{}, errors.Join(ErrScanningRow, err)
	}

	return rule, nil
}

// ListRules returns the user's checklist in position order.
func (r *ruleRepository) ListRules(ctx context.Context, userID int64) ([]models.TradingRule, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listRules, userID)
	if err != nil {
		log.Err(err).Str("func", "*ruleRepository.ListRules").Msg("error executing query")
		return nil, errors.Join(ErrExecutingQuery, err)
	}
	defer rows.Close()

	var rules []models.TradingRule
	for rows.Next() {
		var tr models.TradingRule
		if err := scanRule(rows, &tr); err != nil {
			log.Err(err).Str("func", "*ruleRepository.ListRules").Msg("error scanning rows")
			return nil, errors.Join(ErrScanningRows, err)
		}
		rules = append(rules, tr)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrScanningRows, err)
	}

	return rules, nil
}

// UpdateRule overwrites the rule text, position, and active flag of the
// rule identified by (rule.ID, rule.UserID) and returns the stored row.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrRuleNotFound].
func (r *ruleRepository) UpdateRule(ctx context.Context, rule models.TradingRule) (models.TradingRule, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateRule, rule.Rule, rule.Position, rule.IsActive, rule.ID, rule.UserID)
	if err := scanRule(row, &rule); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.TradingRule{}, ErrRuleNotFound
		}
		log.Err(err).Str("func", "*ruleRepository.UpdateRule").Msg("error: scanning error")
		return models.TradingRule{}, errors.Join(ErrScanningRow, err)
	}

	return rule, nil
}

// DeleteRule removes the rule identified by (ruleID, userID).
//
// Error handling:
//   - zero affected rows → [ErrRuleNotFound].
func (r *ruleRepository) DeleteRule(ctx context.Context, userID, ruleID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteRule, ruleID, userID)
	if err != nil {
		log.Err(err).Str("func", "*ruleRepository.DeleteRule").Msg("error executing statement")
		return errors.Join(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Join(ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRuleNotFound
	}

	return nil
}
