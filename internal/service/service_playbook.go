package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/trade-ledger-pro/internal/logger"
	"github.com/MKhiriev/trade-ledger-pro/internal/store"
	"github.com/MKhiriev/trade-ledger-pro/models"
)

// playbookService is the concrete implementation of [PlaybookService]. It
// groups the two self-review features: the mistake log and the pre-trade
// checklist.
type playbookService struct {
	mistakeRepository store.MistakeRepository
	ruleRepository    store.RuleRepository
	logger            *logger.Logger
}

// NewPlaybookService constructs a [PlaybookService] backed by the given
// repositories.
func NewPlaybookService(mistakeRepository store.MistakeRepository, ruleRepository store.RuleRepository, logger *logger.Logger) PlaybookService {
	return &playbookService{
		mistakeRepository: mistakeRepository,
		ruleRepository:    ruleRepository,
		logger:            logger,
	}
}

// CreateMistake records a new mistake with an initial frequency of one.
func (s *playbookService) CreateMistake(ctx context.Context, mistake models.Mistake) (models.Mistake, error) {
	if mistake.UserID == 0 || mistake.Title == "" {
		return models.Mistake{}, ErrInvalidDataProvided
	}
	if mistake.Frequency < 1 {
		mistake.Frequency = 1
	}

	created, err := s.mistakeRepository.CreateMistake(ctx, mistake)
	if err != nil {
		return models.Mistake{}, fmt.Errorf("mistake creation failed: %w", err)
	}

	return created, nil
}

// ListMistakes returns the user's mistakes, most frequent first.
func (s *playbookService) ListMistakes(ctx context.Context, userID int64) ([]models.Mistake, error) {
	mistakes, err := s.mistakeRepository.ListMistakes(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("mistake listing failed: %w", err)
	}
	if mistakes == nil {
		mistakes = []models.Mistake{}
	}

	return mistakes, nil
}

// RepeatMistake bumps the frequency counter of one mistake.
func (s *playbookService) RepeatMistake(ctx context.Context, userID, mistakeID int64) (models.Mistake, error) {
	mistake, err := s.mistakeRepository.IncrementFrequency(ctx, userID, mistakeID)
	if err != nil {
		return models.Mistake{}, fmt.Errorf("mistake increment failed: %w", err)
	}

	return mistake, nil
}

// DeleteMistake removes one mistake owned by userID.
func (s *playbookService) DeleteMistake(ctx context.Context, userID, mistakeID int64) error {
	if err := s.mistakeRepository.DeleteMistake(ctx, userID, mistakeID); err != nil {
		return fmt.Errorf("mistake deletion failed: %w", err)
	}

	return nil
}

// CreateRule adds a checklist item.
func (s *playbookService) CreateRule(ctx context.Context, rule models.TradingRule) (models.TradingRule, error) {
	if rule.UserID == 0 || rule.Rule == "" {
		return models.TradingRule{}, ErrInvalidDataProvided
	}

	created, err := s.ruleRepository.CreateRule(ctx, rule)
	if err != nil {
		return models.TradingRule{}, fmt.Errorf("rule creation failed: %w", err)
	}

	return created, nil
}

// ListRules returns the user's checklist in position order.
func (s *playbookService) ListRules(ctx context.Context, userID int64) ([]models.TradingRule, error) {
	rules, err := s.ruleRepository.ListRules(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("rule listing failed: %w", err)
	}
	if rules == nil {
		rules = []models.TradingRule{}
	}

	return rules, nil
}

// UpdateRule overwrites one checklist item.
func (s *playbookService) UpdateRule(ctx context.Context, rule models.TradingRule) (models.TradingRule, error) {
	if rule.UserID == 0 || rule.ID == 0 || rule.Rule == "" {
		return models.TradingRule{}, ErrInvalidDataProvided
	}

	updated, err := s.ruleRepository.UpdateRule(ctx, rule)
	if err != nil {
		return models.TradingRule{}, fmt.Errorf("rule update failed: %w", err)
	}

	return updated, nil
}

// DeleteRule removes one checklist item owned by userID.
func (s *playbookService) DeleteRule(ctx context.Context, userID, ruleID int64) error {
	if err := s.ruleRepository.DeleteRule(ctx, userID, ruleID); err != nil {
		return fmt.Errorf("rule deletion failed: %w", err)
	}

	return nil
}
