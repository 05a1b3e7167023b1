// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// client and the reference API server. It is populated by merging values
// from an optional JSON file, environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds client behaviour and server session settings.
	App App `envPrefix:"APP_"`

	// Adapter holds the client's connection settings for the password API.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Server holds the listen settings of the reference API server.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds the persistence settings of the reference API server.
	Storage Storage `envPrefix:"STORAGE_"`

	// Log holds logging settings for both binaries.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds client behaviour and server session settings.and the session token settings of the
// reference API server.
type App struct {
	// CopyResetDelay is how long the "copied" indicator stays visible after
	// a value was copied to the clipboard (e.g. "2s").
	// Env: APP_COPY_RESET_DELAY
	CopyResetDelay time.Duration `env:"COPY_RESET_DELAY"`

	// TokenSignKey is the secret used to sign session tokens. When empty the
	// server generates a random key at start, which invalidates sessions
	// across restarts.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued session tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long a session stays valid after login
	// (e.g. "24h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Adapter holds the client's connection settings for the password API.
type Adapter struct {
	// HTTPAddress is the base URL of the API, including the path prefix
	// (e.g. "http://localhost:8080/api"). A missing scheme defaults to http.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Server holds the listen settings of the reference API server.
type Server struct {
	// HTTPAddress is the TCP address the server listens on, in "host:port"
	// format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// BasePath is the path prefix every API route is mounted under
	// (e.g. "/api").
	// Env: SERVER_BASE_PATH
	BasePath string `env:"BASE_PATH"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the persistence settings of the reference API server.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the backend: a "postgres://" or "postgresql://" URL opens
	// PostgreSQL, anything else is a SQLite file path. Empty keeps every
	// account and record in memory.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Log holds logging settings.
type Log struct {
	// FilePath is where the client appends its log entries. The server
	// always logs to stdout.
	// Env: LOG_FILE
	FilePath string `env:"FILE"`

	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Default values applied to fields that no source has set.
const (
	DefaultAdapterAddress       = "http://localhost:8080/api"
	DefaultAdapterTimeout       = 15 * time.Second
	DefaultCopyResetDelay       = 2 * time.Second
	DefaultServerAddress        = "localhost:8080"
	DefaultServerBasePath       = "/api"
	DefaultServerRequestTimeout = 30 * time.Second
	DefaultTokenIssuer          = "go-pass-server"
	DefaultTokenDuration        = 24 * time.Hour
	DefaultLogLevel             = "info"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			CopyResetDelay: DefaultCopyResetDelay,
			TokenIssuer:    DefaultTokenIssuer,
			TokenDuration:  DefaultTokenDuration,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultAdapterTimeout,
		},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			BasePath:       DefaultServerBasePath,
			RequestTimeout: DefaultServerRequestTimeout,
		},
		Log: Log{Level: DefaultLogLevel},
	}
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (later sources win for non-zero
// fields):
//  1. JSON file (path resolved from env or flags)
//  2. Environment variables
//  3. Command-line flags from args
//
// Fields left empty by every source receive their default value.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
