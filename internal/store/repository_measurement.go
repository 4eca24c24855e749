package store

import (
	"context"
	"fmt"

	"github.com/dchernov/weightkeeper/internal/logger"
	"github.com/dchernov/weightkeeper/models"
)

// measurementRepository is the SQL-backed implementation of
// [MeasurementRepository].
type measurementRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMeasurementRepository constructs a [MeasurementRepository] backed by the
// provided database connection and logger.
func NewMeasurementRepository(db *DB, logger *logger.Logger) MeasurementRepository {
	logger.Debug().Msg("creating measurement repository")
	return &measurementRepository{
		db:     db,
		logger: logger,
	}
}

// Append inserts a new ledger entry. The foreign key on account_id makes the
// engine itself reject orphaned inserts, which the constraint mapper reports
// as [ErrUnknownAccount].
func (r *measurementRepository) Append(ctx context.Context, entry models.MeasurementEntry) (models.MeasurementEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertMeasurementQuery(r.db.builder, entry)
	if err != nil {
		log.Err(err).Str("func", "*measurementRepository.Append").Msg("error building insert query")
		return models.MeasurementEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&entry.EntryID); err != nil {
		if mapped := r.db.constraints.Map(err); mapped != nil {
			log.Err(err).Str("func", "*measurementRepository.Append").Int64("account_id", entry.AccountID).Msg("constraint violation on measurement insert")
			return models.MeasurementEntry{}, mapped
		}
		log.Err(err).Str("func", "*measurementRepository.Append").Msg("unexpected DB error")
		return models.MeasurementEntry{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return entry, nil
}

// ListForAccount returns the full ledger for the account, most recent entry
// first.
func (r *measurementRepository) ListForAccount(ctx context.Context, accountID int64) ([]models.MeasurementEntry, error) {
	return r.list(ctx, accountID, 0)
}

// Latest returns the most recent entry for the account, or nil when the
// ledger is empty.
func (r *measurementRepository) Latest(ctx context.Context, accountID int64) (*models.MeasurementEntry, error) {
	entries, err := r.list(ctx, accountID, 1)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return &entries[0], nil
}

func (r *measurementRepository) list(ctx context.Context, accountID int64, limit uint64) ([]models.MeasurementEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListMeasurementsQuery(r.db.builder, accountID, limit)
	if err != nil {
		log.Err(err).Str("func", "*measurementRepository.list").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*measurementRepository.list").Msg("error executing select query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.MeasurementEntry, 0)
	for rows.Next() {
		var entry models.MeasurementEntry
		if err = rows.Scan(&entry.EntryID, &entry.AccountID, &entry.EntryDate, &entry.Weight); err != nil {
			log.Err(err).Str("func", "*measurementRepository.list").Msg("error scanning measurement row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

// Update rewrites the date and weight of an existing entry owned by the
// account. A missing or foreign id is an expected outcome reported as false,
// not an error.
func (r *measurementRepository) Update(ctx context.Context, accountID, entryID int64, entryDate string, weight float64) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateMeasurementQuery(r.db.builder, accountID, entryID, entryDate, weight)
	if err != nil {
		log.Err(err).Str("func", "*measurementRepository.Update").Msg("error building update query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*measurementRepository.Update").Msg("error executing update query")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return rows > 0, nil
}

// Remove deletes an entry owned by the account and returns the removed row
// count (0 or 1). Removing twice is idempotent in effect: the second call
// returns zero.
func (r *measurementRepository) Remove(ctx context.Context, accountID, entryID int64) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildRemoveMeasurementQuery(r.db.builder, accountID, entryID)
	if err != nil {
		log.Err(err).Str("func", "*measurementRepository.Remove").Msg("error building delete query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*measurementRepository.Remove").Msg("error executing delete query")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return rows, nil
}
