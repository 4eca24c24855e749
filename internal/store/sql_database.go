package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/dchernov/weightkeeper/internal/logger"
	"github.com/dchernov/weightkeeper/migrations"
)

// DB bundles an open database handle with the backend-specific pieces the
// repositories need: a squirrel statement builder configured with the right
// placeholder format, the constraint mapper for that driver, and the dialect
// name used by the migrator.
type DB struct {
	*sql.DB

	dialect     string
	builder     sq.StatementBuilderType
	constraints ConstraintMapper
	logger      *logger.Logger
}

// Migrate brings the schema to the latest version. It must be called once at
// store open; a failure here is fatal and the store must not be used.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
