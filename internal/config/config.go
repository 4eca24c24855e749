package config

import (
	"time"
)

// Supported database drivers for [DB.Driver].
const (
	// DriverSQLite selects the embedded SQLite backend. The default.
	DriverSQLite = "sqlite3"

	// DriverPostgres selects the PostgreSQL backend via the pgx stdlib
	// driver, for server deployments.
	DriverPostgres = "pgx"
)

// Credential comparison policies for [App.CredentialPolicy].
const (
	// CredentialPolicyPlain stores and compares passwords as provided.
	CredentialPolicyPlain = "plain"

	// CredentialPolicyBcrypt stores bcrypt digests and compares with
	// constant-time verification.
	CredentialPolicyBcrypt = "bcrypt"
)

// StructuredConfig is the top-level configuration container for the
// weightkeeper application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, an optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as token parameters and the
	// credential comparison policy.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Notify holds the outbound goal-reached webhook settings. The webhook
	// collaborator is optional: with an empty URL no notification leaves the
	// process.
	Notify Notify `envPrefix:"NOTIFY_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged underneath the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control token
// lifecycle and credential handling.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens,
	// both session and recovery. Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a session JWT remains valid after
	// issuance (e.g. "24h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// RecoveryTokenDuration specifies how long one password-reset attempt
	// stays open across its three steps (e.g. "10m").
	// Env: APP_RECOVERY_TOKEN_DURATION
	RecoveryTokenDuration time.Duration `env:"RECOVERY_TOKEN_DURATION"`

	// CredentialPolicy selects how passwords are stored and compared:
	// [CredentialPolicyPlain] (default) or [CredentialPolicyBcrypt].
	// Env: APP_CREDENTIAL_POLICY
	CredentialPolicy string `env:"CREDENTIAL_POLICY"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the database backend.
type DB struct {
	// Driver selects the backend: [DriverSQLite] or [DriverPostgres].
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the data source name: a file path (or ":memory:") for SQLite,
	// a connection string for PostgreSQL.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound HTTP transport.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "localhost:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown on SIGINT/SIGTERM.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Notify holds settings for the outbound goal-reached webhook collaborator.
type Notify struct {
	// WebhookURL receives a POST with account id, current weight and goal
	// weight every time an append leaves the account at or under its goal.
	// Empty disables notifications.
	// Env: NOTIFY_WEBHOOK_URL
	WebhookURL string `env:"WEBHOOK_URL"`

	// Timeout bounds one webhook delivery attempt.
	// Env: NOTIFY_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in priority order
// (environment, flags, JSON file, defaults).
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
