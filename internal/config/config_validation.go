// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Chernov

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	switch cfg.App.CredentialPolicy {
	case CredentialPolicyPlain, CredentialPolicyBcrypt:
	default:
		return ErrInvalidAppConfigs
	}

	switch cfg.Storage.DB.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
