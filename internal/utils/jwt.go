package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dchernov/weightkeeper/models"
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT session token.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the account ID encoded as a string
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// All parameters are required. Returns an error if any of them are empty or
// zero.
func GenerateJWTToken(issuer string, accountID int64, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatInt(accountID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence and conversion to int64 AccountID
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.Token{}, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	accountIDStr, err := token.Claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if accountIDStr == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	accountID, err := strconv.ParseInt(accountIDStr, 10, 64)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during converting subject to account id: %w", err)
	}

	return models.Token{Token: token, AccountID: accountID}, nil
}

// recoveryClaims is the claim set carried by a recovery-session token.
// The username travels in a private claim; the standard subject stays free
// for session tokens so the two token kinds cannot be confused.
type recoveryClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Step     int    `json:"step"`
}

// GenerateRecoveryToken signs a [models.RecoverySession] into a compact JWS
// so the caller can carry reset-flow state between the three steps without
// the server holding any.
func GenerateRecoveryToken(session models.RecoverySession, issuer string, duration time.Duration, signKey string) (string, error) {
	if issuer == "" || duration == 0 || signKey == "" {
		return "", errors.New("invalid params for generating recovery token")
	}

	// the token lifetime must never depend on the caller having populated
	// the session timestamp
	issuedAt := session.IssuedAt
	if issuedAt.IsZero() {
		issuedAt = time.Now()
	}

	claims := &recoveryClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			ID:        session.SessionID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(duration)),
		},
		Username: session.Username,
		Step:     session.Step,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing recovery token: %w", err)
	}

	return signed, nil
}

// ValidateAndParseRecoveryToken verifies a recovery token's signature,
// issuer, and expiry, and reconstructs the [models.RecoverySession] it
// carries.
func ValidateAndParseRecoveryToken(tokenString, signKey, issuer string) (models.RecoverySession, error) {
	var claims recoveryClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithIssuer(issuer))
	if err != nil {
		return models.RecoverySession{}, fmt.Errorf("error occurred validating recovery token: %w", err)
	}

	session := models.RecoverySession{
		SessionID: claims.ID,
		Username:  claims.Username,
		Step:      claims.Step,
	}
	if claims.IssuedAt != nil {
		session.IssuedAt = claims.IssuedAt.Time
	}

	return session, nil
}
