package service

import (
	"context"
	"errors"
	"testing"

	"github.com/dchernov/weightkeeper/internal/logger"
	"github.com/dchernov/weightkeeper/internal/store"
	"github.com/dchernov/weightkeeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerService_Append(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the entry and reports the goal status", func(t *testing.T) {
		appended := models.MeasurementEntry{EntryID: 9, AccountID: 1, EntryDate: "2026-01-05", Weight: 174}
		measurements := &mockMeasurementRepository{
			appendFn: func(ctx context.Context, entry models.MeasurementEntry) (models.MeasurementEntry, error) {
				entry.EntryID = 9
				return entry, nil
			},
			latestFn: func(ctx context.Context, accountID int64) (*models.MeasurementEntry, error) {
				return &appended, nil
			},
		}
		accounts := &mockAccountRepository{
			getGoalWeightFn: func(ctx context.Context, accountID int64) (float64, error) { return 170, nil },
		}
		notifier := &mockNotifier{}
		svc := NewLedgerService(measurements, accounts, notifier, logger.Nop())

		entry, status, err := svc.Append(ctx, 1, "2026-01-05", 174)
		require.NoError(t, err)

		assert.Equal(t, int64(9), entry.EntryID)
		assert.True(t, status.GoalSet)
		assert.False(t, status.Reached)
		require.NotNil(t, status.DeltaToGoal)
		assert.Equal(t, 4.0, *status.DeltaToGoal)
		assert.Zero(t, notifier.calls, "no notification while above goal")
	})

	t.Run("notifies once when the appended entry reaches the goal", func(t *testing.T) {
		reached := models.MeasurementEntry{EntryID: 10, AccountID: 1, EntryDate: "2026-01-06", Weight: 169}
		measurements := &mockMeasurementRepository{
			latestFn: func(ctx context.Context, accountID int64) (*models.MeasurementEntry, error) {
				return &reached, nil
			},
		}
		accounts := &mockAccountRepository{
			getGoalWeightFn: func(ctx context.Context, accountID int64) (float64, error) { return 170, nil },
		}
		notifier := &mockNotifier{}
		svc := NewLedgerService(measurements, accounts, notifier, logger.Nop())

		_, status, err := svc.Append(ctx, 1, "2026-01-06", 169)
		require.NoError(t, err)

		assert.True(t, status.Reached)
		assert.Equal(t, 1, notifier.calls)
	})

	t.Run("a notification failure does not fail the append", func(t *testing.T) {
		reached := models.MeasurementEntry{EntryID: 11, AccountID: 1, EntryDate: "2026-01-06", Weight: 170}
		measurements := &mockMeasurementRepository{
			latestFn: func(ctx context.Context, accountID int64) (*models.MeasurementEntry, error) {
				return &reached, nil
			},
		}
		accounts := &mockAccountRepository{
			getGoalWeightFn: func(ctx context.Context, accountID int64) (float64, error) { return 170, nil },
		}
		notifier := &mockNotifier{
			notifyFn: func(ctx context.Context, accountID int64, currentWeight, goalWeight float64) error {
				return errors.New("webhook down")
			},
		}
		svc := NewLedgerService(measurements, accounts, notifier, logger.Nop())

		_, status, err := svc.Append(ctx, 1, "2026-01-06", 170)
		require.NoError(t, err)
		assert.True(t, status.Reached)
	})

	t.Run("rejects malformed dates and weights", func(t *testing.T) {
		svc := NewLedgerService(&mockMeasurementRepository{}, &mockAccountRepository{}, &mockNotifier{}, logger.Nop())

		for _, tc := range []struct {
			name   string
			date   string
			weight float64
		}{
			{"empty date", "", 174},
			{"wrong layout", "05.01.2026", 174},
			{"not a calendar date", "2026-02-30", 174},
			{"non-padded date", "2026-1-5", 174},
			{"zero weight", "2026-01-05", 0},
			{"negative weight", "2026-01-05", -3},
		} {
			t.Run(tc.name, func(t *testing.T) {
				_, _, err := svc.Append(ctx, 1, tc.date, tc.weight)
				assert.ErrorIs(t, err, ErrInvalidDataProvided)
			})
		}
	})

	t.Run("unknown account", func(t *testing.T) {
		measurements := &mockMeasurementRepository{
			appendFn: func(ctx context.Context, entry models.MeasurementEntry) (models.MeasurementEntry, error) {
				return models.MeasurementEntry{}, store.ErrUnknownAccount
			},
		}
		svc := NewLedgerService(measurements, &mockAccountRepository{}, &mockNotifier{}, logger.Nop())

		_, _, err := svc.Append(ctx, 99, "2026-01-05", 174)
		assert.ErrorIs(t, err, store.ErrUnknownAccount)
	})
}

func TestLedgerService_List(t *testing.T) {
	ctx := context.Background()

	entries := []models.MeasurementEntry{
		{EntryID: 3, AccountID: 1, EntryDate: "2026-01-05", Weight: 175},
		{EntryID: 2, AccountID: 1, EntryDate: "2026-01-05", Weight: 174},
		{EntryID: 1, AccountID: 1, EntryDate: "2026-01-01", Weight: 180},
	}
	measurements := &mockMeasurementRepository{
		listFn: func(ctx context.Context, accountID int64) ([]models.MeasurementEntry, error) {
			return entries, nil
		},
	}
	accounts := &mockAccountRepository{
		getGoalWeightFn: func(ctx context.Context, accountID int64) (float64, error) { return 170, nil },
	}
	svc := NewLedgerService(measurements, accounts, &mockNotifier{}, logger.Nop())

	listed, status, err := svc.List(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, entries, listed)
	require.NotNil(t, status.Current)
	assert.Equal(t, 175.0, *status.Current, "the first listed entry is the current one")

	t.Run("empty ledger yields a bare status", func(t *testing.T) {
		empty := &mockMeasurementRepository{}
		svc := NewLedgerService(empty, accounts, &mockNotifier{}, logger.Nop())

		listed, status, err := svc.List(ctx, 1)
		require.NoError(t, err)
		assert.Empty(t, listed)
		assert.True(t, status.GoalSet)
		assert.Nil(t, status.Current)
		assert.False(t, status.Reached)
	})
}

func TestLedgerService_UpdateRemove(t *testing.T) {
	ctx := context.Background()

	measurements := &mockMeasurementRepository{
		updateFn: func(ctx context.Context, accountID, entryID int64, entryDate string, weight float64) (bool, error) {
			return accountID == 42 && entryID == 5, nil
		},
		removeFn: func(ctx context.Context, accountID, entryID int64) (int64, error) {
			if accountID == 42 && entryID == 5 {
				return 1, nil
			}
			return 0, nil
		},
	}
	svc := NewLedgerService(measurements, &mockAccountRepository{}, &mockNotifier{}, logger.Nop())

	updated, err := svc.Update(ctx, 42, 5, "2026-01-07", 173)
	require.NoError(t, err)
	assert.True(t, updated)

	updated, err = svc.Update(ctx, 42, 6, "2026-01-07", 173)
	require.NoError(t, err)
	assert.False(t, updated)

	// the mutation is scoped to the owning account
	updated, err = svc.Update(ctx, 43, 5, "2026-01-07", 173)
	require.NoError(t, err)
	assert.False(t, updated)

	_, err = svc.Update(ctx, 42, 5, "bad-date", 173)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	removed, err := svc.Remove(ctx, 42, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	// removing the same id again is a no-op, not an error
	removed, err = svc.Remove(ctx, 42, 6)
	require.NoError(t, err)
	assert.Zero(t, removed)

	removed, err = svc.Remove(ctx, 43, 5)
	require.NoError(t, err)
	assert.Zero(t, removed)
}
