// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Chernov

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/dchernov/weightkeeper/models"
)

// Account column order shared by every query that scans a full account row.
var accountColumns = []string{
	"id", "username", "password", "goal_weight", "email",
	"first_name", "last_name", "security_question", "security_answer", "created_at",
}

// Measurement column order shared by every query that scans a ledger entry.
var measurementColumns = []string{"id", "account_id", "entry_date", "weight"}

// nullableText maps an empty string to NULL so optional columns stay absent
// rather than empty, and so the unique email index never sees two empty
// values as a collision.
func nullableText(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func buildInsertAccountQuery(b sq.StatementBuilderType, account models.Account) (string, []any, error) {
	return b.Insert(account.TableName()).
		Columns("username", "password", "goal_weight", "email",
			"first_name", "last_name", "security_question", "security_answer", "created_at").
		Values(account.Username, account.Password, account.GoalWeight, nullableText(account.Email),
			nullableText(account.FirstName), nullableText(account.LastName),
			nullableText(account.SecurityQuestion), nullableText(account.SecurityAnswer), account.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
}

func buildSelectAccountByUsernameQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return b.Select(accountColumns...).
		From(models.Account{}.TableName()).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func buildAccountExistsQuery(b sq.StatementBuilderType, column, value string) (string, []any, error) {
	return b.Select("id").
		From(models.Account{}.TableName()).
		Where(sq.Eq{column: value}).
		Limit(1).
		ToSql()
}

func buildSelectAccountColumnByColumnQuery(b sq.StatementBuilderType, selected, where, value string) (string, []any, error) {
	return b.Select(selected).
		From(models.Account{}.TableName()).
		Where(sq.Eq{where: value}).
		ToSql()
}

func buildUpdatePasswordQuery(b sq.StatementBuilderType, username, newPassword string) (string, []any, error) {
	return b.Update(models.Account{}.TableName()).
		Set("password", newPassword).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func buildSetGoalWeightQuery(b sq.StatementBuilderType, accountID int64, value float64) (string, []any, error) {
	return b.Update(models.Account{}.TableName()).
		Set("goal_weight", value).
		Where(sq.Eq{"id": accountID}).
		ToSql()
}

func buildGetGoalWeightQuery(b sq.StatementBuilderType, accountID int64) (string, []any, error) {
	return b.Select("goal_weight").
		From(models.Account{}.TableName()).
		Where(sq.Eq{"id": accountID}).
		ToSql()
}

func buildInsertMeasurementQuery(b sq.StatementBuilderType, entry models.MeasurementEntry) (string, []any, error) {
	return b.Insert(entry.TableName()).
		Columns("account_id", "entry_date", "weight").
		Values(entry.AccountID, entry.EntryDate, entry.Weight).
		Suffix("RETURNING id").
		ToSql()
}

// buildListMeasurementsQuery orders by entry_date descending with ties broken
// by id descending, so the most recently inserted entry wins among equal
// dates. "Most recent" drives the goal computation's notion of current
// weight, which is why the tie-break is explicit.
func buildListMeasurementsQuery(b sq.StatementBuilderType, accountID int64, limit uint64) (string, []any, error) {
	query := b.Select(measurementColumns...).
		From(models.MeasurementEntry{}.TableName()).
		Where(sq.Eq{"account_id": accountID}).
		OrderBy("entry_date DESC", "id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	return query.ToSql()
}

// Mutations on existing entries are scoped to the owning account so one
// account can never touch another's ledger by guessing ids.
func buildUpdateMeasurementQuery(b sq.StatementBuilderType, accountID, entryID int64, entryDate string, weight float64) (string, []any, error) {
	return b.Update(models.MeasurementEntry{}.TableName()).
		Set("entry_date", entryDate).
		Set("weight", weight).
		Where(sq.Eq{"id": entryID}).
		Where(sq.Eq{"account_id": accountID}).
		ToSql()
}

func buildRemoveMeasurementQuery(b sq.StatementBuilderType, accountID, entryID int64) (string, []any, error) {
	return b.Delete(models.MeasurementEntry{}.TableName()).
		Where(sq.Eq{"id": entryID}).
		Where(sq.Eq{"account_id": accountID}).
		ToSql()
}
