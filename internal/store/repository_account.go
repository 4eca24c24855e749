package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dchernov/weightkeeper/internal/logger"
	"github.com/dchernov/weightkeeper/models"
)

// accountRepository is the SQL-backed implementation of [AccountRepository].
// It works against any backend the [DB] was opened for; backend differences
// are confined to the statement builder and the constraint mapper carried by
// the connection.
type accountRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a new account record and returns it with server-assigned
// fields populated.
//
// Uniqueness is enforced by the insert itself: there is deliberately no
// existence check beforehand, so two concurrent registrations cannot both
// pass a pre-check and both insert. A violated constraint surfaces as
// [ErrDuplicateUsername] or [ErrDuplicateEmail] via the constraint mapper.
func (r *accountRepository) Create(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	account.CreatedAt = time.Now().UTC()

	query, args, err := buildInsertAccountQuery(r.db.builder, account)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.Create").Msg("error building insert query")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&account.AccountID); err != nil {
		if mapped := r.db.constraints.Map(err); mapped != nil {
			log.Err(err).Str("func", "*accountRepository.Create").Str("username", account.Username).Msg("constraint violation on account insert")
			return models.Account{}, mapped
		}
		log.Err(err).Str("func", "*accountRepository.Create").Msg("unexpected DB error")
		return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return account, nil
}

// FindByUsername retrieves the full account record for an exact username
// match, including the stored credential for verification by the service
// layer.
func (r *accountRepository) FindByUsername(ctx context.Context, username string) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAccountByUsernameQuery(r.db.builder, username)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.FindByUsername").Msg("error building select query")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var account models.Account
	var email, first, last, secQuestion, secAnswer sql.NullString

	row := r.db.QueryRowContext(ctx, query, args...)
	err = row.Scan(&account.AccountID, &account.Username, &account.Password, &account.GoalWeight,
		&email, &first, &last, &secQuestion, &secAnswer, &account.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, ErrAccountNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.FindByUsername").Msg("error: scanning error")
		return models.Account{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	account.Email = email.String
	account.FirstName = first.String
	account.LastName = last.String
	account.SecurityQuestion = secQuestion.String
	account.SecurityAnswer = secAnswer.String

	return account, nil
}

// UsernameExists reports whether the exact username is already taken.
func (r *accountRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, "username", username)
}

// EmailExists reports whether the normalized email is already taken.
// An empty email never collides, so it reports false without querying.
func (r *accountRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	if email == "" {
		return false, nil
	}
	return r.exists(ctx, "email", email)
}

func (r *accountRepository) exists(ctx context.Context, column, value string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildAccountExistsQuery(r.db.builder, column, value)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.exists").Msg("error building exists query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.exists").Str("column", column).Msg("error executing exists query")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return true, nil
}

// FindUsernameByEmail resolves a username from a normalized email address.
func (r *accountRepository) FindUsernameByEmail(ctx context.Context, email string) (string, bool, error) {
	return r.selectTextColumn(ctx, "username", "email", email)
}

// GetSecurityQuestion returns the stored security question for the username.
func (r *accountRepository) GetSecurityQuestion(ctx context.Context, username string) (string, bool, error) {
	return r.selectTextColumn(ctx, "security_question", "username", username)
}

// GetSecurityAnswer returns the stored security answer for the username.
func (r *accountRepository) GetSecurityAnswer(ctx context.Context, username string) (string, bool, error) {
	return r.selectTextColumn(ctx, "security_answer", "username", username)
}

// selectTextColumn fetches one nullable text column from the accounts table.
// The bool result reports whether a matching row exists at all; a NULL column
// on an existing row comes back as ("", true).
func (r *accountRepository) selectTextColumn(ctx context.Context, selected, where, value string) (string, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAccountColumnByColumnQuery(r.db.builder, selected, where, value)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.selectTextColumn").Msg("error building select query")
		return "", false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var result sql.NullString
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&result)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.selectTextColumn").Str("column", selected).Msg("error executing select query")
		return "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return result.String, true, nil
}

// UpdatePassword replaces the stored credential for the username. A missing
// username is an expected outcome reported as false, not an error.
func (r *accountRepository) UpdatePassword(ctx context.Context, username, newPassword string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePasswordQuery(r.db.builder, username, newPassword)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.UpdatePassword").Msg("error building update query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.UpdatePassword").Msg("error executing update query")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return rows > 0, nil
}

// SetGoalWeight stores the goal weight for the account; zero clears the goal.
func (r *accountRepository) SetGoalWeight(ctx context.Context, accountID int64, value float64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSetGoalWeightQuery(r.db.builder, accountID, value)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.SetGoalWeight").Msg("error building update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.SetGoalWeight").Msg("error executing update query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if rows == 0 {
		return ErrUnknownAccount
	}

	return nil
}

// GetGoalWeight returns the stored goal weight, zero when no goal is set.
func (r *accountRepository) GetGoalWeight(ctx context.Context, accountID int64) (float64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetGoalWeightQuery(r.db.builder, accountID)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.GetGoalWeight").Msg("error building select query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var goalWeight float64
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&goalWeight)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrUnknownAccount
	}
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.GetGoalWeight").Msg("error executing select query")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return goalWeight, nil
}
