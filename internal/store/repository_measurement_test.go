package store

import (
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/dchernov/weightkeeper/internal/logger"
	"github.com/dchernov/weightkeeper/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasurementRepository_Append(t *testing.T) {
	insertSQL := regexp.QuoteMeta("INSERT INTO measurements (account_id,entry_date,weight) VALUES ($1,$2,$3) RETURNING id")

	t.Run("returns the server-assigned id", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewMeasurementRepository(db, logger.Nop())

		mock.ExpectQuery(insertSQL).
			WithArgs(int64(1), "2026-01-05", 174.0).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(9)))

		entry, err := repo.Append(testContext(), models.MeasurementEntry{AccountID: 1, EntryDate: "2026-01-05", Weight: 174})
		require.NoError(t, err)

		assert.Equal(t, int64(9), entry.EntryID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("orphaned insert maps to ErrUnknownAccount", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewMeasurementRepository(db, logger.Nop())

		mock.ExpectQuery(insertSQL).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "measurements_account_id_fkey"})

		_, err := repo.Append(testContext(), models.MeasurementEntry{AccountID: 99, EntryDate: "2026-01-05", Weight: 174})
		assert.ErrorIs(t, err, ErrUnknownAccount)
	})
}

func TestMeasurementRepository_ListForAccount(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewMeasurementRepository(db, logger.Nop())

	listSQL := regexp.QuoteMeta("SELECT id, account_id, entry_date, weight FROM measurements WHERE account_id = $1 ORDER BY entry_date DESC, id DESC")

	mock.ExpectQuery(listSQL).WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(measurementColumns).
			AddRow(int64(3), int64(1), "2026-01-05", 175.0).
			AddRow(int64(2), int64(1), "2026-01-05", 174.0).
			AddRow(int64(1), int64(1), "2026-01-01", 180.0))

	entries, err := repo.ListForAccount(testContext(), 1)
	require.NoError(t, err)

	require.Len(t, entries, 3)
	assert.Equal(t, int64(3), entries[0].EntryID)
	assert.Equal(t, 175.0, entries[0].Weight)
	assert.Equal(t, "2026-01-01", entries[2].EntryDate)

	t.Run("empty ledger yields an empty slice", func(t *testing.T) {
		mock.ExpectQuery(listSQL).WithArgs(int64(2)).
			WillReturnRows(sqlmock.NewRows(measurementColumns))

		entries, err := repo.ListForAccount(testContext(), 2)
		require.NoError(t, err)
		assert.NotNil(t, entries)
		assert.Empty(t, entries)
	})

	t.Run("query errors are wrapped", func(t *testing.T) {
		mock.ExpectQuery(listSQL).WillReturnError(errors.New("disk I/O error"))

		_, err := repo.ListForAccount(testContext(), 1)
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})
}

func TestMeasurementRepository_Latest(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewMeasurementRepository(db, logger.Nop())

	latestSQL := regexp.QuoteMeta("ORDER BY entry_date DESC, id DESC LIMIT 1")

	mock.ExpectQuery(latestSQL).WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(measurementColumns).
			AddRow(int64(3), int64(1), "2026-01-05", 175.0))

	latest, err := repo.Latest(testContext(), 1)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, 175.0, latest.Weight)

	t.Run("empty ledger yields nil without error", func(t *testing.T) {
		mock.ExpectQuery(latestSQL).WithArgs(int64(2)).
			WillReturnRows(sqlmock.NewRows(measurementColumns))

		latest, err := repo.Latest(testContext(), 2)
		require.NoError(t, err)
		assert.Nil(t, latest)
	})
}

func TestMeasurementRepository_Update(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewMeasurementRepository(db, logger.Nop())

	updateSQL := regexp.QuoteMeta("UPDATE measurements SET entry_date = $1, weight = $2 WHERE id = $3 AND account_id = $4")

	mock.ExpectExec(updateSQL).WithArgs("2026-01-07", 173.0, int64(5), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	updated, err := repo.Update(testContext(), 42, 5, "2026-01-07", 173)
	require.NoError(t, err)
	assert.True(t, updated)

	// an entry owned by another account matches no row
	mock.ExpectExec(updateSQL).WithArgs("2026-01-07", 173.0, int64(5), int64(43)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	updated, err = repo.Update(testContext(), 43, 5, "2026-01-07", 173)
	require.NoError(t, err)
	assert.False(t, updated)
}

func TestMeasurementRepository_Remove(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewMeasurementRepository(db, logger.Nop())

	removeSQL := regexp.QuoteMeta("DELETE FROM measurements WHERE id = $1 AND account_id = $2")

	mock.ExpectExec(removeSQL).WithArgs(int64(5), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	removed, err := repo.Remove(testContext(), 42, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	// second removal of the same id affects nothing and is not an error
	mock.ExpectExec(removeSQL).WithArgs(int64(5), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	removed, err = repo.Remove(testContext(), 42, 5)
	require.NoError(t, err)
	assert.Zero(t, removed)
}
