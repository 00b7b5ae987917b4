// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging defaults, an optional JSON file, environment variables and
// command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds client application settings (logging, paging).
	App App `envPrefix:"APP_"`

	// Storage holds the local token store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the settings of the client's HTTP pipeline towards the
	// backend.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Server holds the development backend settings.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// DotEnvPath is the .env file loaded into the environment before the
	// environment is parsed. Missing files are ignored.
	// Env: DOTENV_PATH
	DotEnvPath string `env:"DOTENV_PATH"`
}

// App holds client application settings.
type App struct {
	// LogFile is the path of the client log file.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// PageSize is the number of transactions requested per page.
	// Env: APP_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`

	// ChartPath is where the dashboard exports the balance chart.
	// Env: APP_CHART_PATH
	ChartPath string `env:"CHART_PATH"`
}

// Storage groups local persistence settings.
type Storage struct {
	// DB holds the SQLite token store settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds the local SQLite connection settings.
type DB struct {
	// DSN is the SQLite file path. ":memory:" keeps the session for the
	// lifetime of the process only.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds the client transport settings.
type Adapter struct {
	// HTTPAddress is the backend base address, e.g. "http://localhost:3000".
	// The "/api" prefix is appended by the adapter.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Server holds the development backend settings.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// TokenSignKey signs issued JWT tokens. Must be kept confidential.
	// Env: SERVER_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued tokens.
	// Env: SERVER_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long an issued token stays valid.
	// Env: SERVER_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// RequestTimeout bounds the handling of a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Defaults applied before any other source.
const (
	DefaultAdapterAddress   = "http://localhost:3000"
	DefaultRequestTimeout   = 15 * time.Second
	DefaultDSN              = "fin-tracker.db"
	DefaultPageSize         = 10
	DefaultChartPath        = "balance.png"
	DefaultServerAddress    = "localhost:3000"
	DefaultTokenIssuer      = "fin-tracker-devserver"
	DefaultTokenDuration    = 24 * time.Hour
	DefaultDotEnvPath       = ".env"
	defaultServerReqTimeout = 30 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			PageSize:  DefaultPageSize,
			ChartPath: DefaultChartPath,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			TokenIssuer:    DefaultTokenIssuer,
			TokenDuration:  DefaultTokenDuration,
			RequestTimeout: defaultServerReqTimeout,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// sources. args are the command-line arguments without the program name.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
