package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/trade-ledger-pro/internal/logger"
	"github.com/MKhiriev/trade-ledger-pro/internal/store"
	"github.com/MKhiriev/trade-ledger-pro/models"
)

// goalService is the concrete implementation of [GoalService].
type goalService struct {
	goalRepository store.GoalRepository
	logger         *logger.Logger
}

// NewGoalService constructs a [GoalService] backed by the given repository.
func NewGoalService(goalRepository store.GoalRepository, logger *logger.Logger) GoalService {
	return &goalService{
		goalRepository: goalRepository,
		logger:         logger,
	}
}

// UpsertGoal creates or replaces the user's goal for one calendar month.
func (s *goalService) UpsertGoal(ctx context.Context, goal models.Goal) (models.Goal, error) {
	log := logger.FromContext(ctx)

	if goal.UserID == 0 || goal.Month < 1 || goal.Month > 12 || goal.Year < 2000 {
		return models.Goal{}, ErrInvalidDataProvided
	}

	stored, err := s.goalRepository.UpsertGoal(ctx, goal)
	if err != nil {
		log.Err(err).Int64("userID", goal.UserID).Msg("goal upsert failed")
		return models.Goal{}, fmt.Errorf("goal upsert failed: %w", err)
	}

	return stored, nil
}

// GetGoal returns the user's goal for one calendar month.
func (s *goalService) GetGoal(ctx context.Context, userID int64, month, year int) (models.Goal, error) {
	goal, err := s.goalRepository.FindGoal(ctx, userID, month, year)
	if err != nil {
		return models.Goal{}, fmt.Errorf("goal lookup failed: %w", err)
	}

	return goal, nil
}

// ListGoals returns all of the user's goals, newest month first.
func (s *goalService) ListGoals(ctx context.Context, userID int64) ([]models.Goal, error) {
	goals, err := s.goalRepository.ListGoals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("goal listing failed: %w", err)
	}
	if goals == nil {
		goals = []models.Goal{}
	}

	return goals, nil
}
