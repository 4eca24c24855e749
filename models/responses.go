package models

// RegisterRequest is the payload for the account registration endpoint.
// Email, names, question and answer are optional; username and password are
// required.
type RegisterRequest struct {
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Email            string `json:"email"`
	Username         string `json:"username"`
	Password         string `json:"password"`
	SecurityQuestion string `json:"security_question"`
	SecurityAnswer   string `json:"security_answer"`
}

// LoginRequest is the payload for the login endpoint.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AvailabilityResponse reports pre-validation lookups used by registration
// forms. These checks are advisory only; the insert itself is the duplicate
// guard.
type AvailabilityResponse struct {
	UsernameTaken bool `json:"username_taken"`
	EmailTaken    bool `json:"email_taken"`
}

// UsernameResponse carries the username resolved from an email address.
type UsernameResponse struct {
	Username string `json:"username"`
}

// RecoveryStartRequest begins the password-reset flow.
type RecoveryStartRequest struct {
	Email string `json:"email"`
}

// RecoveryStartResponse returns the security question together with the
// signed recovery session the client must present on the next step.
type RecoveryStartResponse struct {
	Question      string `json:"question"`
	RecoveryToken string `json:"recovery_token"`
}

// RecoveryAnswerRequest verifies the security answer for an open recovery
// session.
type RecoveryAnswerRequest struct {
	RecoveryToken string `json:"recovery_token"`
	Answer        string `json:"answer"`
}

// RecoveryAnswerResponse returns the advanced recovery session after a
// correct answer.
type RecoveryAnswerResponse struct {
	RecoveryToken string `json:"recovery_token"`
}

// RecoveryPasswordRequest completes the reset with the new password entered
// twice.
type RecoveryPasswordRequest struct {
	RecoveryToken string `json:"recovery_token"`
	NewPassword   string `json:"new_password"`
	NewPassword2  string `json:"new_password_repeat"`
}

// GoalRequest sets the goal weight for the authenticated account.
// A value of zero clears the goal.
type GoalRequest struct {
	GoalWeight float64 `json:"goal_weight"`
}

// GoalResponse reports the stored goal weight.
type GoalResponse struct {
	GoalWeight float64 `json:"goal_weight"`
}

// MeasurementRequest appends or updates one ledger entry.
type MeasurementRequest struct {
	EntryDate string  `json:"entry_date"`
	Weight    float64 `json:"weight"`
}

// MeasurementResponse returns a stored entry together with the goal status
// recomputed after the mutation.
type MeasurementResponse struct {
	Entry  MeasurementEntry `json:"entry"`
	Status GoalStatus       `json:"status"`
}

// MeasurementListResponse returns the ledger for an account, most recent
// entry first.
type MeasurementListResponse struct {
	Entries []MeasurementEntry `json:"entries"`
	Status  GoalStatus         `json:"status"`
}
