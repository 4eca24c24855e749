package models

import "time"

// Recovery flow steps. Each completed step advances the session; a step may
// only run when the previous one has completed.
const (
	// RecoveryStepStarted means the username was resolved from the email and
	// the account has a security question on file.
	RecoveryStepStarted = 1

	// RecoveryStepVerified means the security answer was verified.
	RecoveryStepVerified = 2
)

// RecoverySession is the short-lived state object that carries the resolved
// username between the three password-reset steps. The store and services are
// stateless across steps; the caller holds this session (typically encoded as
// a signed token) and presents it on each subsequent step.
type RecoverySession struct {
	// SessionID uniquely identifies one reset attempt.
	SessionID string `json:"session_id"`

	// Username is the account resolved from the email in step one.
	Username string `json:"username"`

	// Step is the last completed recovery step.
	Step int `json:"step"`

	// IssuedAt is when the session was started.
	IssuedAt time.Time `json:"issued_at"`
}
