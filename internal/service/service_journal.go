package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/trade-ledger-pro/internal/logger"
	"github.com/MKhiriev/trade-ledger-pro/internal/store"
	"github.com/MKhiriev/trade-ledger-pro/models"
)

// journalService is the concrete implementation of [JournalService].
//
// Profit/loss and status are derived server-side on every write via
// [models.Trade.Recalculate]; whatever the client sent in those fields is
// discarded.
type journalService struct {
	tradeRepository store.TradeRepository
	logger          *logger.Logger
}

// NewJournalService constructs a [JournalService] backed by the given trade
// repository.
func NewJournalService(tradeRepository store.TradeRepository, logger *logger.Logger) JournalService {
	return &journalService{
		tradeRepository: tradeRepository,
		logger:          logger,
	}
}

// CreateTrade validates and persists a new trade. P&L and status are
// recomputed from the price fields before the write.
func (s *journalService) CreateTrade(ctx context.Context, trade models.Trade) (models.Trade, error) {
	log := logger.FromContext(ctx)

	if err := validateTrade(trade); err != nil {
		return models.Trade{}, err
	}

	trade.Recalculate()

	created, err := s.tradeRepository.CreateTrade(ctx, trade)
	if err != nil {
		log.Err(err).Int64("userID", trade.UserID).Msg("trade creation failed")
		return models.Trade{}, fmt.Errorf("trade creation failed: %w", err)
	}

	return created, nil
}

// GetTrade returns one trade owned by userID.
func (s *journalService) GetTrade(ctx context.Context, userID, tradeID int64) (models.Trade, error) {
	trade, err := s.tradeRepository.GetTrade(ctx, userID, tradeID)
	if err != nil {
		return models.Trade{}, fmt.Errorf("trade lookup failed: %w", err)
	}

	return trade, nil
}

// ListTrades returns the user's trades matching filter, newest first.
func (s *journalService) ListTrades(ctx context.Context, userID int64, filter store.TradeFilter) ([]models.Trade, error) {
	trades, err := s.tradeRepository.ListTrades(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("trade listing failed: %w", err)
	}
	if trades == nil {
		trades = []models.Trade{}
	}

	return trades, nil
}

// UpdateTrade validates and overwrites an existing trade. P&L and status
// are recomputed; adding an exit price closes the trade, clearing it
// reopens it.
func (s *journalService) UpdateTrade(ctx context.Context, trade models.Trade) (models.Trade, error) {
	log := logger.FromContext(ctx)

	if err := validateTrade(trade); err != nil {
		return models.Trade{}, err
	}

	// Reopen when the exit price was cleared.
	if trade.ExitPrice == nil {
		trade.Status = models.TradeOpen
	}
	trade.Recalculate()

	updated, err := s.tradeRepository.UpdateTrade(ctx, trade)
	if err != nil {
		log.Err(err).Int64("userID", trade.UserID).Int64("tradeID", trade.ID).Msg("trade update failed")
		return models.Trade{}, fmt.Errorf("trade update failed: %w", err)
	}

	return updated, nil
}

// DeleteTrade removes one trade owned by userID.
func (s *journalService) DeleteTrade(ctx context.Context, userID, tradeID int64) error {
	if err := s.tradeRepository.DeleteTrade(ctx, userID, tradeID); err != nil {
		return fmt.Errorf("trade deletion failed: %w", err)
	}

	return nil
}

// ToggleStar flips the bookmark flag of one trade and returns the stored
// row.
func (s *journalService) ToggleStar(ctx context.Context, userID, tradeID int64) (models.Trade, error) {
	trade, err := s.tradeRepository.GetTrade(ctx, userID, tradeID)
	if err != nil {
		return models.Trade{}, fmt.Errorf("trade lookup failed: %w", err)
	}

	trade.IsStarred = !trade.IsStarred

	updated, err := s.tradeRepository.UpdateTrade(ctx, trade)
	if err != nil {
		return models.Trade{}, fmt.Errorf("trade update failed: %w", err)
	}

	return updated, nil
}

func validateTrade(trade models.Trade) error {
	if trade.UserID == 0 || trade.Symbol == "" || trade.Quantity <= 0 || trade.EntryPrice <= 0 {
		return ErrInvalidDataProvided
	}
	if trade.TradeType != models.TradeBuy && trade.TradeType != models.TradeSell {
		return ErrInvalidDataProvided
	}
	if trade.TradeDate.IsZero() {
		return ErrInvalidDataProvided
	}

	return nil
}
