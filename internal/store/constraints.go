// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Chernov

package store

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ConstraintMapper translates driver-level constraint violations into the
// store's sentinel errors. Each supported backend has its own implementation
// because the drivers surface violations differently.
//
// Map returns one of the store sentinels when err is a recognised constraint
// violation, and nil otherwise, in which case the caller should treat err as
// an unexpected database error.
type ConstraintMapper interface {
	Map(err error) error
}

// sqliteConstraintMapper implements [ConstraintMapper] for mattn/go-sqlite3.
//
// SQLite reports which constraint failed only through the error message
// ("UNIQUE constraint failed: accounts.username"), so unique violations are
// disambiguated by inspecting that text.
type sqliteConstraintMapper struct{}

// NewSQLiteConstraintMapper constructs a [ConstraintMapper] for the sqlite3
// driver.
func NewSQLiteConstraintMapper() ConstraintMapper {
	return sqliteConstraintMapper{}
}

func (sqliteConstraintMapper) Map(err error) error {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return nil
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		msg := sqliteErr.Error()
		switch {
		case strings.Contains(msg, "accounts.username"):
			return ErrDuplicateUsername
		case strings.Contains(msg, "accounts.email"):
			return ErrDuplicateEmail
		}
	case sqlite3.ErrConstraintForeignKey:
		return ErrUnknownAccount
	}

	return nil
}

// postgresConstraintMapper implements [ConstraintMapper] for the pgx driver.
// Violations are matched on the SQLSTATE code and disambiguated by the name
// of the violated constraint.
type postgresConstraintMapper struct{}

// NewPostgresConstraintMapper constructs a [ConstraintMapper] for the pgx
// driver.
func NewPostgresConstraintMapper() ConstraintMapper {
	return postgresConstraintMapper{}
}

func (postgresConstraintMapper) Map(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		if strings.Contains(pgErr.ConstraintName, "email") {
			return ErrDuplicateEmail
		}
		return ErrDuplicateUsername
	case pgerrcode.ForeignKeyViolation:
		return ErrUnknownAccount
	}

	return nil
}
