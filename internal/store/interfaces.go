package store

import (
	"context"

	"github.com/dchernov/weightkeeper/models"
)

// AccountRepository is the persistence surface for user accounts, their
// credentials, recovery data, and goal weight.
//
// Lookup-style "not found" conditions are reported as absence (a false bool),
// not as errors, because absence is an expected, common outcome. Mutating
// operations on a missing row follow the same rule where the contract allows
// it (UpdatePassword); operations that require a live account return
// [ErrUnknownAccount].
type AccountRepository interface {
	// Create persists a new account and returns it with server-assigned
	// fields (AccountID, CreatedAt). Uniqueness of username and normalized
	// email is enforced atomically by the insert itself; violations surface
	// as [ErrDuplicateUsername] or [ErrDuplicateEmail].
	Create(ctx context.Context, account models.Account) (models.Account, error)

	// FindByUsername retrieves the full account record for an exact,
	// case-sensitive username match. Returns [ErrAccountNotFound] when no
	// row matches.
	FindByUsername(ctx context.Context, username string) (models.Account, error)

	// UsernameExists reports whether an account with the exact username
	// exists. Advisory pre-validation only, never the duplicate guard.
	UsernameExists(ctx context.Context, username string) (bool, error)

	// EmailExists reports whether an account with the normalized email
	// exists. Advisory pre-validation only, never the duplicate guard.
	EmailExists(ctx context.Context, email string) (bool, error)

	// FindUsernameByEmail resolves a username from a normalized email.
	// The bool result is false when no account has that email.
	FindUsernameByEmail(ctx context.Context, email string) (string, bool, error)

	// GetSecurityQuestion returns the stored security question for the
	// username. The bool result is false when the account does not exist.
	GetSecurityQuestion(ctx context.Context, username string) (string, bool, error)

	// GetSecurityAnswer returns the stored security answer for the
	// username. The bool result is false when the account does not exist.
	GetSecurityAnswer(ctx context.Context, username string) (string, bool, error)

	// UpdatePassword replaces the stored credential for the username.
	// Returns true when a row was updated and false when no such username
	// exists.
	UpdatePassword(ctx context.Context, username, newPassword string) (bool, error)

	// SetGoalWeight stores the goal weight for the account; zero clears the
	// goal. Returns [ErrUnknownAccount] when the id does not exist.
	SetGoalWeight(ctx context.Context, accountID int64, value float64) error

	// GetGoalWeight returns the stored goal weight, zero when unset.
	// Returns [ErrUnknownAccount] when the id does not exist.
	GetGoalWeight(ctx context.Context, accountID int64) (float64, error)
}

// MeasurementRepository is the persistence surface for the per-account
// measurement ledger.
type MeasurementRepository interface {
	// Append inserts a new entry and returns it with the server-assigned id.
	// Returns [ErrUnknownAccount] when the account id does not exist.
	Append(ctx context.Context, entry models.MeasurementEntry) (models.MeasurementEntry, error)

	// ListForAccount returns the account's entries ordered by entry_date
	// descending, ties broken by id descending, so the first element is the
	// entry the goal computation treats as current.
	ListForAccount(ctx context.Context, accountID int64) ([]models.MeasurementEntry, error)

	// Latest returns the most recent entry under the ListForAccount order,
	// or nil when the account has no entries.
	Latest(ctx context.Context, accountID int64) (*models.MeasurementEntry, error)

	// Update rewrites the date and weight of an existing entry owned by the
	// account. Returns true when a row was updated and false when no entry
	// with that id belongs to the account.
	Update(ctx context.Context, accountID, entryID int64, entryDate string, weight float64) (bool, error)

	// Remove deletes an entry owned by the account and returns the number of
	// rows removed (0 or 1). Removing a missing or foreign id is not an
	// error; it removes nothing.
	Remove(ctx context.Context, accountID, entryID int64) (int64, error)
}
