package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dchernov/weightkeeper/internal/config"
	"github.com/dchernov/weightkeeper/internal/logger"
	"github.com/dchernov/weightkeeper/internal/store"
	"github.com/dchernov/weightkeeper/internal/utils"
	"github.com/dchernov/weightkeeper/models"
	"github.com/google/uuid"
)

// minPasswordLength is the minimum length accepted for a reset password.
const minPasswordLength = 6

// recoveryService implements the three-step password reset flow: resolve
// the account from an email, verify the security answer, store the new
// password.
//
// The service holds no per-attempt state. Each step returns an advanced
// RecoverySession which the caller carries to the next step as a signed
// recovery token; steps refuse to run unless the session proves the
// previous step completed.
type recoveryService struct {
	accountRepository store.AccountRepository
	verifier          CredentialVerifier

	// tokenSignKey and tokenIssuer sign recovery tokens; they are shared
	// with the session token configuration.
	tokenSignKey string
	tokenIssuer  string

	// tokenDuration bounds how long one reset attempt stays valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewRecoveryService constructs a RecoveryService wired to the given
// AccountRepository and populated with token parameters from cfg.
func NewRecoveryService(accountRepository store.AccountRepository, verifier CredentialVerifier, cfg config.App, logger *logger.Logger) RecoveryService {
	return &recoveryService{
		accountRepository: accountRepository,
		verifier:          verifier,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.RecoveryTokenDuration,
		logger:            logger,
	}
}

// Start begins a reset attempt for the account registered under email.
//
// Returns a fresh session at RecoveryStepStarted together with the
// account's security question, or:
//   - ErrInvalidDataProvided if the email is empty after normalization.
//   - store.ErrAccountNotFound if no account has that email.
//   - ErrNoSecurityQuestion if the account never set a question; such an
//     account cannot be recovered through this flow.
func (r *recoveryService) Start(ctx context.Context, email string) (models.RecoverySession, string, error) {
	log := logger.FromContext(ctx)

	normalized := normalizeEmail(email)
	if normalized == "" {
		return models.RecoverySession{}, "", ErrInvalidDataProvided
	}

	username, found, err := r.accountRepository.FindUsernameByEmail(ctx, normalized)
	if err != nil {
		log.Err(err).Msg("username lookup by email failed")
		return models.RecoverySession{}, "", fmt.Errorf("username lookup by email failed: %w", err)
	}
	if !found {
		return models.RecoverySession{}, "", store.ErrAccountNotFound
	}

	question, found, err := r.accountRepository.GetSecurityQuestion(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("security question lookup failed")
		return models.RecoverySession{}, "", fmt.Errorf("security question lookup failed: %w", err)
	}
	if !found {
		return models.RecoverySession{}, "", store.ErrAccountNotFound
	}
	if strings.TrimSpace(question) == "" {
		log.Error().Str("username", username).Msg("account has no security question")
		return models.RecoverySession{}, "", ErrNoSecurityQuestion
	}

	session := models.RecoverySession{
		SessionID: uuid.NewString(),
		Username:  username,
		Step:      models.RecoveryStepStarted,
		IssuedAt:  time.Now().UTC(),
	}

	return session, question, nil
}

// VerifyAnswer checks the supplied security answer for an open session.
//
// The comparison ignores case and surrounding whitespace. On success the
// returned session is advanced to RecoveryStepVerified; the input session
// is not mutated.
//
// Returns ErrRecoverySequence when the session has not completed Start,
// ErrWrongAnswer when the answer does not match, and
// store.ErrAccountNotFound when the account disappeared mid-flow.
func (r *recoveryService) VerifyAnswer(ctx context.Context, session models.RecoverySession, answer string) (models.RecoverySession, error) {
	log := logger.FromContext(ctx)

	if session.Username == "" || session.Step < models.RecoveryStepStarted {
		return models.RecoverySession{}, ErrRecoverySequence
	}

	stored, found, err := r.accountRepository.GetSecurityAnswer(ctx, session.Username)
	if err != nil {
		log.Err(err).Str("username", session.Username).Msg("security answer lookup failed")
		return models.RecoverySession{}, fmt.Errorf("security answer lookup failed: %w", err)
	}
	if !found {
		return models.RecoverySession{}, store.ErrAccountNotFound
	}

	if !strings.EqualFold(strings.TrimSpace(stored), strings.TrimSpace(answer)) {
		log.Error().Str("username", session.Username).Msg("wrong security answer")
		return models.RecoverySession{}, ErrWrongAnswer
	}

	session.Step = models.RecoveryStepVerified
	return session, nil
}

// CompleteReset stores a new password for a fully verified session.
//
// The password must be entered twice and be at least minPasswordLength
// characters long; it is passed through the credential verifier before
// storage so the stored shape follows the configured policy.
//
// Returns ErrRecoverySequence when the session has not completed
// VerifyAnswer, ErrPasswordMismatch or ErrPasswordTooShort on input
// problems, and store.ErrAccountNotFound when the account disappeared.
func (r *recoveryService) CompleteReset(ctx context.Context, session models.RecoverySession, newPassword, newPasswordRepeat string) error {
	log := logger.FromContext(ctx)

	if session.Username == "" || session.Step < models.RecoveryStepVerified {
		return ErrRecoverySequence
	}
	if newPassword != newPasswordRepeat {
		return ErrPasswordMismatch
	}
	if len(newPassword) < minPasswordLength {
		return ErrPasswordTooShort
	}

	stored, err := r.verifier.Hash(newPassword)
	if err != nil {
		log.Err(err).Str("username", session.Username).Msg("hashing reset password failed")
		return fmt.Errorf("hashing reset password failed: %w", err)
	}

	updated, err := r.accountRepository.UpdatePassword(ctx, session.Username, stored)
	if err != nil {
		log.Err(err).Str("username", session.Username).Msg("password update failed")
		return fmt.Errorf("password update failed: %w", err)
	}
	if !updated {
		return store.ErrAccountNotFound
	}

	return nil
}

// IssueToken signs the session into a compact recovery token the client
// presents on the next step.
func (r *recoveryService) IssueToken(session models.RecoverySession) (string, error) {
	token, err := utils.GenerateRecoveryToken(session, r.tokenIssuer, r.tokenDuration, r.tokenSignKey)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a recovery token and restores the session it
// carries. Any validation failure is normalised to
// ErrTokenIsExpiredOrInvalid.
func (r *recoveryService) ParseToken(tokenString string) (models.RecoverySession, error) {
	session, err := utils.ValidateAndParseRecoveryToken(tokenString, r.tokenSignKey, r.tokenIssuer)
	if err != nil {
		return models.RecoverySession{}, ErrTokenIsExpiredOrInvalid
	}

	return session, nil
}
