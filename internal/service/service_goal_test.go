package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/trade-ledger-pro/internal/logger"
	"github.com/MKhiriev/trade-ledger-pro/internal/store"
	"github.com/MKhiriev/trade-ledger-pro/models"
)

func TestGoalService_UpsertGoal(t *testing.T) {
	goals := &mockGoalRepository{
		upsertGoalFn: func(_ context.Context, goal models.Goal) (models.Goal, error) {
			goal.ID = 1
			return goal, nil
		},
	}
	svc := NewGoalService(goals, logger.Nop())

	stored, err := svc.UpsertGoal(context.Background(), models.Goal{UserID: 7, Month: 8, Year: 2026, TargetPnL: floatPtr(1000)})
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.ID)
}

func TestGoalService_UpsertGoal_Validation(t *testing.T) {
	svc := NewGoalService(&mockGoalRepository{}, logger.Nop())

	tests := []struct {
		name string
		goal models.Goal
	}{
		{"no user", models.Goal{Month: 8, Year: 2026}},
		{"month zero", models.Goal{UserID: 7, Month: 0, Year: 2026}},
		{"month thirteen", models.Goal{UserID: 7, Month: 13, Year: 2026}},
		{"ancient year", models.Goal{UserID: 7, Month: 8, Year: 1999}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpsertGoal(context.Background(), tt.goal)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestGoalService_GetGoal_NotFound(t *testing.T) {
	svc := NewGoalService(&mockGoalRepository{}, logger.Nop())

	_, err := svc.GetGoal(context.Background(), 7, 8, 2026)
	assert.ErrorIs(t, err, store.ErrGoalNotFound)
}

func TestGoalService_ListGoals_NeverNil(t *testing.T) {
	svc := NewGoalService(&mockGoalRepository{}, logger.Nop())

	goals, err := svc.ListGoals(context.Background(), 7)
	require.NoError(t, err)
	assert.NotNil(t, goals)
	assert.Empty(t, goals)
}
