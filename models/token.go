package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT session token issued after registration or login.
//
// It embeds [jwt.Token] for signing and claim inspection and
// [jwt.RegisteredClaims] for standard claim access. SignedString holds the
// compact serialized form (header.payload.signature) ready to be transmitted
// in the Authorization header.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides the standard JWT claim set (RFC 7519).
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// AccountID is the owner identifier extracted from the "sub" claim.
	// Internal server-side cache, never serialized.
	AccountID int64 `json:"-"`
}

// GetAccountID extracts the account identifier from the token's "sub" claim
// and parses it as a base-10 int64.
//
// Returns an error if the subject claim is missing, empty, or cannot be
// converted to int64.
func (t *Token) GetAccountID() (int64, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting account id from token: %w", err)
	}

	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting account id from token to int64: %w", err)
	}

	return id, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
