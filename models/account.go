package models

import "time"

// Account represents a registered user's credential and profile record,
// including the goal weight the tracker measures progress against.
// Sensitive fields must never be exposed outside trusted boundaries.
type Account struct {
	// AccountID is the internal unique identifier of the account.
	// It is assigned by the store and stable for the account's lifetime.
	AccountID int64 `json:"-"`

	// Username is the unique login identifier, compared case-sensitively.
	Username string `json:"username"`

	// Password holds the stored credential representation. The shape is
	// policy-dependent: plain text by default, a bcrypt digest when the
	// bcrypt credential policy is configured.
	Password string `json:"-"`

	// Email is the normalized (trimmed, lowercased) contact address.
	// Empty when the user did not provide one; non-empty values are unique.
	Email string `json:"email"`

	// FirstName and LastName are optional profile fields, trimmed on input.
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// SecurityQuestion and SecurityAnswer drive the password recovery flow.
	// The answer is compared case-insensitively at verification time.
	SecurityQuestion string `json:"security_question"`
	SecurityAnswer   string `json:"-"`

	// GoalWeight is the target weight; 0 means "no goal set".
	GoalWeight float64 `json:"goal_weight"`

	// CreatedAt is the timestamp when the account was created. Immutable.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}
