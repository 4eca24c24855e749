// Package migrations owns the table definitions and the versioned migration
// sequence for the weightkeeper store.
//
// Steps are Go migrations registered with goose. Every step is idempotent:
// before adding a column it asks the database whether the column already
// exists, so re-running a step against a schema that already has the target
// shape is a no-op. Column presence, not the recorded version number, is the
// authoritative check — a database upgraded manually or partially in the past
// migrates cleanly.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

// Supported goose dialects. The dialect also selects which flavour of DDL
// and introspection query each migration step runs.
const (
	DialectSQLite   = "sqlite3"
	DialectPostgres = "pgx"
)

// ErrMigrationFailure wraps every error returned by Migrate. It is fatal:
// store open must be aborted and the store must not be used. It is not
// retried automatically; a second manual open is safe because the idempotent
// column checks re-derive actual schema state.
var ErrMigrationFailure = errors.New("migration failure")

//go:embed 00*.go
var embedMigrations embed.FS

// currentDialect is read by the migration steps to pick dialect-specific DDL.
// Set once per Migrate call; the store opens a single backend per process.
var currentDialect = DialectSQLite

// Migrate brings db to the latest schema version, preserving existing rows.
// On a fresh database the whole sequence runs, producing the current shape;
// on an already-migrated database it is a no-op.
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return fmt.Errorf("%w: db is nil", ErrMigrationFailure)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("%w: setting dialect for db: %w", ErrMigrationFailure, err)
	}
	currentDialect = dialect

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("%w: %w", ErrMigrationFailure, err)
	}

	return nil
}
