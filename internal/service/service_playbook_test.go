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

func newTestPlaybookService(mistakes *mockMistakeRepository, rules *mockRuleRepository) PlaybookService {
	return NewPlaybookService(mistakes, rules, logger.Nop())
}

func TestPlaybookService_CreateMistake_DefaultsFrequency(t *testing.T) {
	var persisted models.Mistake
	mistakes := &mockMistakeRepository{
		createMistakeFn: func(_ context.Context, mistake models.Mistake) (models.Mistake, error) {
			persisted = mistake
			mistake.ID = 1
			return mistake, nil
		},
	}
	svc := newTestPlaybookService(mistakes, &mockRuleRepository{})

	created, err := svc.CreateMistake(context.Background(), models.Mistake{UserID: 7, Title: "Oversizing"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, 1, persisted.Frequency, "a fresh mistake has happened at least once")
}

func TestPlaybookService_CreateMistake_Validation(t *testing.T) {
	svc := newTestPlaybookService(&mockMistakeRepository{}, &mockRuleRepository{})

	_, err := svc.CreateMistake(context.Background(), models.Mistake{UserID: 7})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestPlaybookService_RepeatMistake(t *testing.T) {
	mistakes := &mockMistakeRepository{
		incrementFrequencyFn: func(_ context.Context, userID, mistakeID int64) (models.Mistake, error) {
			require.Equal(t, int64(7), userID)
			require.Equal(t, int64(3), mistakeID)
			return models.Mistake{ID: 3, UserID: 7, Title: "Oversizing", Frequency: 4}, nil
		},
	}
	svc := newTestPlaybookService(mistakes, &mockRuleRepository{})

	bumped, err := svc.RepeatMistake(context.Background(), 7, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, bumped.Frequency)
}

func TestPlaybookService_RepeatMistake_NotFound(t *testing.T) {
	svc := newTestPlaybookService(&mockMistakeRepository{}, &mockRuleRepository{})

	_, err := svc.RepeatMistake(context.Background(), 7, 404)
	assert.ErrorIs(t, err, store.ErrMistakeNotFound)
}

func TestPlaybookService_CreateRule_Validation(t *testing.T) {
	svc := newTestPlaybookService(&mockMistakeRepository{}, &mockRuleRepository{})

	_, err := svc.CreateRule(context.Background(), models.TradingRule{UserID: 7})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestPlaybookService_UpdateRule(t *testing.T) {
	rules := &mockRuleRepository{
		updateRuleFn: func(_ context.Context, rule models.TradingRule) (models.TradingRule, error) {
			return rule, nil
		},
	}
	svc := newTestPlaybookService(&mockMistakeRepository{}, rules)

	updated, err := svc.UpdateRule(context.Background(), models.TradingRule{ID: 1, UserID: 7, Rule: "Wait for confirmation", IsActive: false})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	_, err = svc.UpdateRule(context.Background(), models.TradingRule{ID: 0, UserID: 7, Rule: "x"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestPlaybookService_ListRules_NeverNil(t *testing.T) {
	svc := newTestPlaybookService(&mockMistakeRepository{}, &mockRuleRepository{})

	rules, err := svc.ListRules(context.Background(), 7)
	require.NoError(t, err)
	assert.NotNil(t, rules)
	assert.Empty(t, rules)
}
