package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/dchernov/weightkeeper/internal/goal"
	"github.com/dchernov/weightkeeper/internal/logger"
	"github.com/dchernov/weightkeeper/internal/store"
	"github.com/dchernov/weightkeeper/models"
)

// entryDateLayout is the only accepted shape for measurement dates. It is
// fixed-width, so lexical order of stored dates is chronological order.
const entryDateLayout = "2006-01-02"

// ledgerService implements LedgerService over a MeasurementRepository,
// recomputing the goal status after every read or append and pushing a
// notification when an append reaches the goal.
type ledgerService struct {
	measurementRepository store.MeasurementRepository
	accountRepository     store.AccountRepository
	notifier              GoalNotifier
	logger                *logger.Logger
}

// NewLedgerService constructs a LedgerService. notifier must not be nil;
// pass a no-op notifier when goal notifications are not configured.
func NewLedgerService(measurementRepository store.MeasurementRepository, accountRepository store.AccountRepository, notifier GoalNotifier, logger *logger.Logger) LedgerService {
	return &ledgerService{
		measurementRepository: measurementRepository,
		accountRepository:     accountRepository,
		notifier:              notifier,
		logger:                logger,
	}
}

// Append validates and stores one measurement, then recomputes the goal
// status from the stored state.
//
// When the appended measurement is the latest entry and puts the account at
// or under its goal, the notifier is called exactly once. A notification
// failure is logged and swallowed: the append has already committed.
//
// Returns ErrInvalidDataProvided when the date is not a calendar date in
// YYYY-MM-DD form or the weight is not a positive finite number, and
// store.ErrUnknownAccount when the account does not exist.
func (l *ledgerService) Append(ctx context.Context, accountID int64, entryDate string, weight float64) (models.MeasurementEntry, models.GoalStatus, error) {
	log := logger.FromContext(ctx)

	if err := validateEntry(entryDate, weight); err != nil {
		log.Error().Int64("account", accountID).Str("date", entryDate).Float64("weight", weight).Msg("invalid measurement")
		return models.MeasurementEntry{}, models.GoalStatus{}, err
	}

	entry, err := l.measurementRepository.Append(ctx, models.MeasurementEntry{
		AccountID: accountID,
		EntryDate: entryDate,
		Weight:    weight,
	})
	if err != nil {
		log.Err(err).Int64("account", accountID).Msg("measurement append failed")
		return models.MeasurementEntry{}, models.GoalStatus{}, fmt.Errorf("measurement append failed: %w", err)
	}

	status, goalWeight, err := l.status(ctx, accountID)
	if err != nil {
		return models.MeasurementEntry{}, models.GoalStatus{}, err
	}

	if status.Reached && status.Current != nil {
		if err := l.notifier.NotifyGoalReached(ctx, accountID, *status.Current, goalWeight); err != nil {
			log.Err(err).Int64("account", accountID).Msg("goal notification failed")
		}
	}

	return entry, status, nil
}

// List returns the account's ledger, most recent entry first, together with
// the goal status derived from it.
func (l *ledgerService) List(ctx context.Context, accountID int64) ([]models.MeasurementEntry, models.GoalStatus, error) {
	log := logger.FromContext(ctx)

	entries, err := l.measurementRepository.ListForAccount(ctx, accountID)
	if err != nil {
		log.Err(err).Int64("account", accountID).Msg("measurement listing failed")
		return nil, models.GoalStatus{}, fmt.Errorf("measurement listing failed: %w", err)
	}

	goalWeight, err := l.accountRepository.GetGoalWeight(ctx, accountID)
	if err != nil {
		log.Err(err).Int64("account", accountID).Msg("goal weight lookup failed")
		return nil, models.GoalStatus{}, fmt.Errorf("goal weight lookup failed: %w", err)
	}

	var latest *models.MeasurementEntry
	if len(entries) > 0 {
		latest = &entries[0]
	}

	return entries, goal.Status(goalWeight, latest), nil
}

// Update rewrites the date and weight of an entry owned by the account.
// Returns true when a row was updated and false when no entry with that id
// belongs to the account.
func (l *ledgerService) Update(ctx context.Context, accountID, entryID int64, entryDate string, weight float64) (bool, error) {
	log := logger.FromContext(ctx)

	if err := validateEntry(entryDate, weight); err != nil {
		log.Error().Int64("entry", entryID).Str("date", entryDate).Float64("weight", weight).Msg("invalid measurement")
		return false, err
	}

	updated, err := l.measurementRepository.Update(ctx, accountID, entryID, entryDate, weight)
	if err != nil {
		log.Err(err).Int64("entry", entryID).Msg("measurement update failed")
		return false, fmt.Errorf("measurement update failed: %w", err)
	}

	return updated, nil
}

// Remove deletes an entry owned by the account and returns the number of
// rows removed. Removing an absent or foreign id is not an error.
func (l *ledgerService) Remove(ctx context.Context, accountID, entryID int64) (int64, error) {
	log := logger.FromContext(ctx)

	removed, err := l.measurementRepository.Remove(ctx, accountID, entryID)
	if err != nil {
		log.Err(err).Int64("entry", entryID).Msg("measurement removal failed")
		return 0, fmt.Errorf("measurement removal failed: %w", err)
	}

	return removed, nil
}

// status derives the goal status from the stored goal weight and the latest
// ledger entry, returning the goal weight alongside for notification use.
func (l *ledgerService) status(ctx context.Context, accountID int64) (models.GoalStatus, float64, error) {
	log := logger.FromContext(ctx)

	goalWeight, err := l.accountRepository.GetGoalWeight(ctx, accountID)
	if err != nil {
		log.Err(err).Int64("account", accountID).Msg("goal weight lookup failed")
		return models.GoalStatus{}, 0, fmt.Errorf("goal weight lookup failed: %w", err)
	}

	latest, err := l.measurementRepository.Latest(ctx, accountID)
	if err != nil {
		log.Err(err).Int64("account", accountID).Msg("latest measurement lookup failed")
		return models.GoalStatus{}, 0, fmt.Errorf("latest measurement lookup failed: %w", err)
	}

	return goal.Status(goalWeight, latest), goalWeight, nil
}

// validateEntry rejects dates that are not real calendar dates in
// YYYY-MM-DD form and weights that are not positive finite numbers.
func validateEntry(entryDate string, weight float64) error {
	parsed, err := time.Parse(entryDateLayout, entryDate)
	if err != nil || parsed.Format(entryDateLayout) != entryDate {
		return ErrInvalidDataProvided
	}
	if weight <= 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return ErrInvalidDataProvided
	}

	return nil
}
