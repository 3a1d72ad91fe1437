// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/trade-ledger-pro/internal/logger"
	"github.com/MKhiriev/trade-ledger-pro/models"
)

// tradeColumns is the canonical column order shared by every trade query
// and scan in this file.
var tradeColumns = []string{
	"id", "user_id", "symbol", "trade_type", "instrument_type",
	"entry_price", "exit_price", "quantity", "stop_loss", "take_profit",
	"profit_loss", "status", "notes", "is_starred", "trade_date", "created_at",
}

// tradeRepository is the SQL-backed implementation of [TradeRepository].
// Every query is scoped by user_id so one user can never see or touch
// another user's journal.
type tradeRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTradeRepository constructs a [TradeRepository] backed by the provided
// database connection and logger.
func NewTradeRepository(db *DB, logger *logger.Logger) TradeRepository {
	logger.Debug().Msg("creating trade repository")
	return &tradeRepository{
		db:     db,
		logger: logger,
	}
}

func scanTrade(row interface{ Scan(dest ...any) error }, t *models.Trade) error {
	return row.Scan(
		&t.ID, &t.UserID, &t.Symbol, &t.TradeType, &t.InstrumentType,
		&t.EntryPrice, &t.ExitPrice, &t.Quantity, &t.StopLoss, &t.TakeProfit,
		&t.ProfitLoss, &t.Status, &t.Notes, &t.IsStarred, &t.TradeDate, &t.CreatedAt,
	)
}

// CreateTrade persists a new trade and returns it with server-assigned
// fields (ID, CreatedAt).
func (r *tradeRepository) CreateTrade(ctx context.Context, trade models.Trade) (models.Trade, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createTrade,
		trade.UserID, trade.Symbol, trade.TradeType, trade.InstrumentType,
		trade.EntryPrice, trade.ExitPrice, trade.Quantity, trade.StopLoss, trade.TakeProfit,
		trade.ProfitLoss, trade.Status, trade.Notes, trade.IsStarred, trade.TradeDate,
	)
	if err := scanTrade(row, &trade); err != nil {
		log.Err(err).Str("func", "*tradeRepository.CreateTrade").Msg("error: scanning error")
		return models.Trade{}, errors.Join(ErrScanningRow, err)
	}

	return trade, nil
}

// GetTrade returns the trade with the given ID owned by userID.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrTradeNotFound].
func (r *tradeRepository) GetTrade(ctx context.Context, userID, tradeID int64) (models.Trade, error) {
	log := logger.FromContext(ctx)

	var trade models.Trade
	row := r.db.QueryRowContext(ctx, getTrade, tradeID, userID)
	if err := scanTrade(row, &trade); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Trade{}, ErrTradeNotFound
		}
		log.Err(err).Str("func", "*tradeRepository.GetTrade").Msg("error: scanning error")
		return models.Trade{}, errors.Join(ErrScanningRow, err)
	}

	return trade, nil
}

// ListTrades returns the user's trades matching filter, newest trade date
// first. The SELECT is built dynamically with squirrel; zero-valued filter
// fields add no predicate.
func (r *tradeRepository) ListTrades(ctx context.Context, userID int64, filter TradeFilter) ([]models.Trade, error) {
	log := logger.FromContext(ctx)

	builder := sq.Select(tradeColumns...).
		From("trades").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("trade_date DESC", "id DESC").
		PlaceholderFormat(sq.Dollar)

	if filter.From != nil {
		builder = builder.Where(sq.GtOrEq{"trade_date": *filter.From})
	}
	if filter.To != nil {
		builder = builder.Where(sq.Lt{"trade_date": *filter.To})
	}
	if filter.Symbol != "" {
		builder = builder.Where(sq.Eq{"symbol": filter.Symbol})
	}
	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"status": filter.Status})
	}
	if filter.TradeType != "" {
		builder = builder.Where(sq.Eq{"trade_type": filter.TradeType})
	}
	if filter.Starred != nil {
		builder = builder.Where(sq.Eq{"is_starred": *filter.Starred})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*tradeRepository.ListTrades").Msg("error building query")
		return nil, errors.Join(ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*tradeRepository.ListTrades").Msg("error executing query")
		return nil, errors.Join(ErrExecutingQuery, err)
	}
	defer rows.Close()

	var trades []models.Trade
	for rows.Next() {
		var t models.Trade
		if err := scanTrade(rows, &t); err != nil {
			log.Err(err).Str("func", "*tradeRepository.ListTrades").Msg("error scanning rows")
			return nil, errors.Join(ErrScanningRows, err)
		}
		trades = append(trades, t)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrScanningRows, err)
	}

	return trades, nil
}

// UpdateTrade overwrites the mutable fields of the trade identified by
// (trade.ID, trade.UserID) and returns the stored row.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrTradeNotFound].
func (r *tradeRepository) UpdateTrade(ctx context.Context, trade models.Trade) (models.Trade, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateTrade,
		trade.Symbol, trade.TradeType, trade.InstrumentType,
		trade.EntryPrice, trade.ExitPrice, trade.Quantity, trade.StopLoss, trade.TakeProfit,
		trade.ProfitLoss, trade.Status, trade.Notes, trade.IsStarred, trade.TradeDate,
		trade.ID, trade.UserID,
	)
	if err := scanTrade(row, &trade); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Trade{}, ErrTradeNotFound
		}
		log.Err(err).Str("func", "*tradeRepository.UpdateTrade").Msg("error: scanning error")
		return models.Trade{}, errors.Join(ErrScanningRow, err)
	}

	return trade, nil
}

// DeleteTrade removes the trade identified by (tradeID, userID).
//
// Error handling:
//   - zero affected rows → [ErrTradeNotFound].
func (r *tradeRepository) DeleteTrade(ctx context.Context, userID, tradeID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteTrade, tradeID, userID)
	if err != nil {
		log.Err(err).Str("func", "*tradeRepository.DeleteTrade").Msg("error executing statement")
		return errors.Join(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Join(ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrTradeNotFound
	}

	return nil
}
