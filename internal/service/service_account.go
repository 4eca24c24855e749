package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dchernov/weightkeeper/internal/config"
	"github.com/dchernov/weightkeeper/internal/logger"
	"github.com/dchernov/weightkeeper/internal/store"
	"github.com/dchernov/weightkeeper/internal/utils"
	"github.com/dchernov/weightkeeper/models"
)

// accountService is the concrete implementation of AccountService.
// It handles registration, credential verification, availability lookups,
// the goal weight, and the JWT session token lifecycle, delegating
// persistence to an AccountRepository.
type accountService struct {
	// accountRepository is the data-access layer for account records.
	accountRepository store.AccountRepository

	// verifier turns passwords into their stored representation and
	// compares supplied passwords against it.
	verifier CredentialVerifier

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAccountService constructs an AccountService wired to the given
// AccountRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAccountService(accountRepository store.AccountRepository, verifier CredentialVerifier, cfg config.App, logger *logger.Logger) AccountService {
	return &accountService{
		accountRepository: accountRepository,
		verifier:          verifier,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		logger:            logger,
	}
}

// Register creates a new account from the registration payload.
//
// Username and password are required; all other fields are optional. The
// email is normalized (trimmed, lowercased) before storage so lookups and
// the uniqueness constraint always see one canonical form. Uniqueness of
// username and email is enforced by the insert itself, not checked here.
//
// Returns the persisted account (with a server-assigned AccountID) or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - A wrapped storage error if the insert fails (duplicate username or
//     email — see store.ErrDuplicateUsername, store.ErrDuplicateEmail).
func (a *accountService) Register(ctx context.Context, request models.RegisterRequest) (models.Account, error) {
	log := logger.FromContext(ctx)

	username := strings.TrimSpace(request.Username)
	if username == "" || request.Password == "" {
		log.Error().Str("username", username).Msg("registration with empty username or password")
		return models.Account{}, ErrInvalidDataProvided
	}

	storedPassword, err := a.verifier.Hash(request.Password)
	if err != nil {
		log.Err(err).Msg("hashing registration password failed")
		return models.Account{}, fmt.Errorf("hashing registration password failed: %w", err)
	}

	account := models.Account{
		Username:         username,
		Password:         storedPassword,
		Email:            normalizeEmail(request.Email),
		FirstName:        strings.TrimSpace(request.FirstName),
		LastName:         strings.TrimSpace(request.LastName),
		SecurityQuestion: strings.TrimSpace(request.SecurityQuestion),
		SecurityAnswer:   strings.TrimSpace(request.SecurityAnswer),
	}

	registered, err := a.accountRepository.Create(ctx, account)
	if err != nil {
		log.Err(err).Str("username", username).Msg("account creation ended with error")
		return models.Account{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	return registered, nil
}

// Authenticate verifies a username/password pair.
//
// A missing account and a wrong password are reported identically as
// ErrInvalidCredentials so the login surface does not reveal which part
// was wrong.
func (a *accountService) Authenticate(ctx context.Context, username, password string) (models.Account, error) {
	log := logger.FromContext(ctx)

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return models.Account{}, ErrInvalidDataProvided
	}

	account, err := a.accountRepository.FindByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("account search by username failed")
		return models.Account{}, ErrInvalidCredentials
	}

	if !a.verifier.Verify(account.Password, password) {
		log.Error().Int64("id", account.AccountID).Str("username", username).Msg("wrong password")
		return models.Account{}, ErrInvalidCredentials
	}

	return account, nil
}

// CreateToken issues a signed JWT for the given account.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after
// tokenDuration.
func (a *accountService) CreateToken(ctx context.Context, account models.Account) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, account.AccountID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised
// to ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *accountService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// UsernameTaken reports whether the username is already registered.
// Advisory only: the registration insert remains the duplicate guard.
func (a *accountService) UsernameTaken(ctx context.Context, username string) (bool, error) {
	return a.accountRepository.UsernameExists(ctx, strings.TrimSpace(username))
}

// EmailTaken reports whether the normalized email is already registered.
// An empty email is never taken.
func (a *accountService) EmailTaken(ctx context.Context, email string) (bool, error) {
	return a.accountRepository.EmailExists(ctx, normalizeEmail(email))
}

// FindUsernameByEmail resolves a username from an email address; the bool
// result is false when no account has that email.
func (a *accountService) FindUsernameByEmail(ctx context.Context, email string) (string, bool, error) {
	normalized := normalizeEmail(email)
	if normalized == "" {
		return "", false, ErrInvalidDataProvided
	}

	return a.accountRepository.FindUsernameByEmail(ctx, normalized)
}

// SetGoalWeight stores the goal weight for the account; zero clears the
// goal. Negative and non-finite values are rejected with
// ErrInvalidDataProvided.
func (a *accountService) SetGoalWeight(ctx context.Context, accountID int64, value float64) error {
	log := logger.FromContext(ctx)

	if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		log.Error().Int64("id", accountID).Float64("value", value).Msg("invalid goal weight")
		return ErrInvalidDataProvided
	}

	if err := a.accountRepository.SetGoalWeight(ctx, accountID, value); err != nil {
		log.Err(err).Int64("id", accountID).Msg("storing goal weight failed")
		return fmt.Errorf("storing goal weight failed: %w", err)
	}

	return nil
}

// GetGoalWeight returns the stored goal weight, zero when no goal is set.
func (a *accountService) GetGoalWeight(ctx context.Context, accountID int64) (float64, error) {
	return a.accountRepository.GetGoalWeight(ctx, accountID)
}

// normalizeEmail trims surrounding whitespace and lowercases the address so
// that storage and lookups always operate on one canonical form.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
