package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrDuplicateUsername is returned when an account insert violates the
	// unique constraint on the username column.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrDuplicateEmail is returned when an account insert violates the
	// unique index on the normalized email column.
	ErrDuplicateEmail = errors.New("email already exists")

	// ErrUnknownAccount is returned when an operation references an account
	// id that does not exist, including foreign-key rejections of orphaned
	// measurement inserts.
	ErrUnknownAccount = errors.New("account does not exist")

	// ErrAccountNotFound is returned when a query expected to match exactly
	// one account record produces an empty result set.
	ErrAccountNotFound = errors.New("no account was found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails for a reason the constraint mapper does not recognise.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
