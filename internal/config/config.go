// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-tenant-vet server. It aggregates all sub-configurations and is
// populated by merging defaults, an optional .env file, environment
// variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as token parameters,
	// the estimated completion policy and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the orchestration dependency settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds the simulated delays and background health check intervals.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// DotEnvPath is the .env file loaded into the process environment
	// before environment variables are parsed. A missing file is ignored.
	DotEnvPath string `env:"DOTENV_PATH"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values that control token
// lifecycle, check policy and versioning.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "1h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// EstimatedCompletion is added to the creation time of every check to
	// produce its estimatedCompletion field.
	// Env: APP_ESTIMATED_COMPLETION
	EstimatedCompletion time.Duration `env:"ESTIMATED_COMPLETION"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address on which the gRPC health server
	// listens. Empty disables the gRPC server.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the database backend.
type DB struct {
	// DSN selects the backend: empty or "memory" keeps everything in
	// process, "sqlite://path" or "file:path" opens SQLite, anything else
	// is a PostgreSQL connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds the settings of the external orchestration dependency.
type Adapter struct {
	// Enabled turns external dispatch on. When false every check runs
	// through the stage simulator.
	// Env: ADAPTER_ORCHESTRATION_ENABLED
	Enabled bool `env:"ORCHESTRATION_ENABLED"`

	// OrchestrationURL is the base URL of the orchestration dependency.
	// Env: ADAPTER_ORCHESTRATION_URL
	OrchestrationURL string `env:"ORCHESTRATION_URL"`

	// APIKey is sent with every outbound request and signs inbound
	// callbacks.
	// Env: ADAPTER_ORCHESTRATION_API_KEY
	APIKey string `env:"ORCHESTRATION_API_KEY"`

	// CallbackBaseURL is the public base URL of this service; the callback
	// path is appended to it.
	// Env: ADAPTER_CALLBACK_BASE_URL
	CallbackBaseURL string `env:"CALLBACK_BASE_URL"`

	// Env: ADAPTER_DISPATCH_TIMEOUT
	DispatchTimeout time.Duration `env:"DISPATCH_TIMEOUT"`

	// Env: ADAPTER_POLL_TIMEOUT
	PollTimeout time.Duration `env:"POLL_TIMEOUT"`

	// Env: ADAPTER_HEALTH_TIMEOUT
	HealthTimeout time.Duration `env:"HEALTH_TIMEOUT"`
}

// Workers holds configuration for background work.
type Workers struct {
	// StageDuration is the simulated duration of one simulator stage.
	// Env: WORKERS_STAGE_DURATION
	StageDuration time.Duration `env:"STAGE_DURATION"`

	// FallbackDelay is the simulated latency of a fallback result.
	// Env: WORKERS_FALLBACK_DELAY
	FallbackDelay time.Duration `env:"FALLBACK_DELAY"`

	// HealthInterval is how often the orchestration dependency is checked.
	// Env: WORKERS_HEALTH_INTERVAL
	HealthInterval time.Duration `env:"HEALTH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. .env file (loaded into the process environment)
//  3. Environment variables
//  4. Command-line flags
//  5. JSON file (path resolved from sources 3 and 4)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		build()
}
