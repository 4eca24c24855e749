// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Chernov

package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upInitSchema, downInitSchema)
}

// upInitSchema creates the first-version tables: accounts with credentials
// and goal weight, and the measurement ledger referencing accounts by id.
// CREATE TABLE IF NOT EXISTS keeps the step a no-op on databases that already
// carry the shape, including ones created before goose tracked versions.
func upInitSchema(ctx context.Context, tx *sql.Tx) error {
	accountsDDL := `
		CREATE TABLE IF NOT EXISTS accounts (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			username    TEXT NOT NULL UNIQUE,
			password    TEXT NOT NULL,
			goal_weight REAL NOT NULL DEFAULT 0
		)`
	measurementsDDL := `
		CREATE TABLE IF NOT EXISTS measurements (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			account_id INTEGER NOT NULL REFERENCES accounts(id),
			entry_date TEXT NOT NULL,
			weight     REAL NOT NULL
		)`

	if currentDialect == DialectPostgres {
		accountsDDL = `
			CREATE TABLE IF NOT EXISTS accounts (
				id          BIGSERIAL PRIMARY KEY,
				username    TEXT NOT NULL UNIQUE,
				password    TEXT NOT NULL,
				goal_weight DOUBLE PRECISION NOT NULL DEFAULT 0
			)`
		measurementsDDL = `
			CREATE TABLE IF NOT EXISTS measurements (
				id         BIGSERIAL PRIMARY KEY,
				account_id BIGINT NOT NULL REFERENCES accounts(id),
				entry_date TEXT NOT NULL,
				weight     DOUBLE PRECISION NOT NULL
			)`
	}

	if _, err := tx.ExecContext(ctx, accountsDDL); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, measurementsDDL); err != nil {
		return err
	}

	return nil
}

func downInitSchema(ctx context.Context, tx *sql.Tx) error {
	if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS measurements`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS accounts`); err != nil {
		return err
	}

	return nil
}
