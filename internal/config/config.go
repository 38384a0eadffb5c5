// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// sync client and the reference server. It is populated by merging values
// from environment variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds keys, tokens and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds the local SQLite database and the reference data file.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen address and timeouts of the reference server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's view of the remote service.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Sync holds the orchestrator and fetch coordinator tuning.
	Sync Sync `envPrefix:"SYNC_"`

	// Workers holds background trigger settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// Args holds positional command-line arguments left after flag parsing
	// (sub-commands such as "add" or "token").
	Args []string
}

// App holds application-level configuration values.
type App struct {
	// HashKey is the HMAC key used for upload integrity hashes.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Token is the bearer token the client presents to the remote service.
	// Env: APP_TOKEN
	Token string `env:"TOKEN"`

	// TokenSignKey is the secret used by the reference server to sign and
	// verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long an issued token stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is the version string reported by GET /api/version/.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogFile is the client log file path. Empty means "logs" next to the
	// executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the local database settings.
	DB DB `envPrefix:"DB_"`

	// Files holds file-system settings.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the client's SQLite database.
type DB struct {
	// DSN is the SQLite file path (e.g. "observer.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds file-system settings.
type Files struct {
	// ReferenceFile is the JSON file with form definitions served by the
	// reference server.
	// Env: STORAGE_FILES_REFERENCE_FILE
	ReferenceFile string `env:"REFERENCE_FILE"`
}

// Server holds network and timeout settings of the reference server.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling time of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the client's remote service settings.
type Adapter struct {
	// HTTPAddress is the base address of the remote service.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the timeout of a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RetryCount is the number of transport-level retries per request.
	// Env: ADAPTER_RETRY_COUNT
	RetryCount int `env:"RETRY_COUNT"`
}

// Sync holds the tuning of a sync round.
type Sync struct {
	// Mode is "upload", "full" or "watch".
	// Env: SYNC_MODE
	Mode string `env:"MODE"`

	// FetchTimeout bounds every single reference fetch. Zero means no bound.
	// Env: SYNC_FETCH_TIMEOUT
	FetchTimeout time.Duration `env:"FETCH_TIMEOUT"`

	// MaxConcurrentFetches limits the fan-out. Zero means unlimited.
	// Env: SYNC_MAX_CONCURRENT_FETCHES
	MaxConcurrentFetches int `env:"MAX_CONCURRENT_FETCHES"`

	// ContinueOnFailure keeps the remaining fetches running after the first
	// failure instead of cancelling them.
	// Env: SYNC_CONTINUE_ON_FAILURE
	ContinueOnFailure bool `env:"CONTINUE_ON_FAILURE"`

	// InvalidateOnCommit defers the purge of cached answers and notes until
	// the new version set is committed.
	// Env: SYNC_INVALIDATE_ON_COMMIT
	InvalidateOnCommit bool `env:"INVALIDATE_ON_COMMIT"`

	// RecordKinds lists the per-record kinds drained by the upload phase.
	// Env: SYNC_RECORD_KINDS (comma separated)
	RecordKinds []string `env:"RECORD_KINDS" envSeparator:","`
}

// Workers holds configuration for background triggers.
type Workers struct {
	// SyncInterval is the period of the watch-mode trigger.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// GetStructuredConfig loads, merges and validates the configuration from all
// sources in the following priority order (last source wins for non-zero
// fields):
//  1. Environment variables
//  2. Command-line flags (parsed from args)
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
