package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/dchernov/weightkeeper/internal/config"
	"github.com/dchernov/weightkeeper/internal/logger"
	"github.com/dchernov/weightkeeper/migrations"
)

// NewConnectSQLite opens (creating if necessary) the embedded SQLite store
// described by cfg and returns it ready for use.
//
// Foreign-key enforcement is switched on via the DSN so that orphaned
// measurement inserts are rejected by the engine itself. In-memory databases
// are pinned to a single connection, otherwise every pooled connection would
// see its own empty database.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dsn, inMemory := sqliteDSN(cfg.DSN)

	if !inMemory {
		if err := createLocalDBFileIfNotExists(sqliteFilePath(cfg.DSN)); err != nil {
			log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
			return nil, fmt.Errorf("error creating database file")
		}
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB")
	}

	if inMemory {
		conn.SetMaxOpenConns(1)
	}

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	db := &DB{
		DB:          conn,
		dialect:     migrations.DialectSQLite,
		builder:     sq.StatementBuilder.PlaceholderFormat(sq.Question),
		constraints: NewSQLiteConstraintMapper(),
		logger:      log,
	}

	return db, nil
}

// sqliteDSN appends the connection parameters the store depends on and
// reports whether the target is an in-memory database.
func sqliteDSN(path string) (string, bool) {
	if path == "" || path == ":memory:" || path == "memory" {
		return "file::memory:?_foreign_keys=on", true
	}

	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on&_busy_timeout=5000", false
}

// sqliteFilePath reduces a DSN to the bare filesystem path: the optional
// file: scheme and any connection parameters are not part of the file name.
func sqliteFilePath(dsn string) string {
	path := strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	return path
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}
