// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Chernov

package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upAccountRecovery, downAccountRecovery)
}

// upAccountRecovery brings a first-version accounts table to the current
// shape: contact email, profile names, the recovery question and answer, and
// the creation timestamp. Every addition is guarded by a column-presence
// check, so the step tolerates schemas that were upgraded manually or only
// partially before.
//
// The unique index on email enforces uniqueness of non-empty normalized
// addresses; NULL emails never collide.
func upAccountRecovery(ctx context.Context, tx *sql.Tx) error {
	createdAtType := "TIMESTAMP"
	if currentDialect == DialectPostgres {
		createdAtType = "TIMESTAMPTZ"
	}

	columns := []struct {
		name       string
		definition string
	}{
		{"email", "TEXT"},
		{"first_name", "TEXT"},
		{"last_name", "TEXT"},
		{"security_question", "TEXT"},
		{"security_answer", "TEXT"},
		{"created_at", createdAtType},
	}

	for _, column := range columns {
		if err := addColumnIfMissing(ctx, tx, "accounts", column.name, column.definition); err != nil {
			return err
		}
	}

	if _, err := tx.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_accounts_email ON accounts(email)`); err != nil {
		return err
	}

	return nil
}

func downAccountRecovery(ctx context.Context, tx *sql.Tx) error {
	if _, err := tx.ExecContext(ctx, `DROP INDEX IF EXISTS idx_accounts_email`); err != nil {
		return err
	}

	for _, column := range []string{"email", "first_name", "last_name", "security_question", "security_answer", "created_at"} {
		exists, err := columnExists(ctx, tx, "accounts", column)
		if err != nil {
			return err
		}
		if !exists {
			continue
		}
		if _, err = tx.ExecContext(ctx, "ALTER TABLE accounts DROP COLUMN "+column); err != nil {
			return err
		}
	}

	return nil
}
