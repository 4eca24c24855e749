// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Chernov

package service

import (
	"fmt"

	"github.com/dchernov/weightkeeper/internal/config"
	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier abstracts how passwords are turned into their stored
// representation and compared against it. The stored shape is policy-owned:
// repositories and services never inspect it.
type CredentialVerifier interface {
	// Hash converts a plain password into the representation to store.
	Hash(password string) (string, error)

	// Verify reports whether the supplied plain password matches the stored
	// representation.
	Verify(stored, supplied string) bool
}

// NewCredentialVerifier selects a verifier by the configured policy name.
func NewCredentialVerifier(policy string) (CredentialVerifier, error) {
	switch policy {
	case "", config.CredentialPolicyPlain:
		return plainVerifier{}, nil
	case config.CredentialPolicyBcrypt:
		return bcryptVerifier{}, nil
	default:
		return nil, fmt.Errorf("unknown credential policy %q", policy)
	}
}

// plainVerifier stores passwords verbatim and compares them byte-for-byte.
type plainVerifier struct{}

func (plainVerifier) Hash(password string) (string, error) { return password, nil }

func (plainVerifier) Verify(stored, supplied string) bool { return stored == supplied }

// bcryptVerifier stores bcrypt digests at the default cost.
type bcryptVerifier struct{}

func (bcryptVerifier) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("bcrypt hash failed: %w", err)
	}
	return string(digest), nil
}

func (bcryptVerifier) Verify(stored, supplied string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
}
