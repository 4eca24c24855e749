package store

import (
	"context"
	"fmt"

	"github.com/dchernov/weightkeeper/internal/config"
	"github.com/dchernov/weightkeeper/internal/logger"
)

// Repositories bundles every persistence surface the services depend on.
type Repositories struct {
	AccountRepository     AccountRepository
	MeasurementRepository MeasurementRepository

	db *DB
}

// NewRepositories opens the configured backend, runs create-or-migrate once,
// and wires the repositories on top of the shared connection.
//
// A migration failure is fatal: no repositories are returned and the caller
// must not retry automatically, because retrying a failed schema change is
// only safe after the idempotent column checks re-derive actual state on the
// next manual open.
func NewRepositories(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Repositories, error) {
	var db *DB
	var err error

	switch cfg.DB.Driver {
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	default:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	}
	if err != nil {
		return nil, fmt.Errorf("error connecting storage: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error migrating storage: %w", err)
	}

	return &Repositories{
		AccountRepository:     NewAccountRepository(db, log),
		MeasurementRepository: NewMeasurementRepository(db, log),
		db:                    db,
	}, nil
}

// Close releases the underlying database connection.
func (r *Repositories) Close() error {
	return r.db.Close()
}
