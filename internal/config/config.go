// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging defaults, environment variables, flags and an optional file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as the log file location.
	App App `envPrefix:"APP_"`

	// Storage holds the local session database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the backend address and outbound request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Keypad holds the passcode keypad timings.
	Keypad Keypad `envPrefix:"KEYPAD_"`

	// FilePath is the optional path to a JSON or YAML configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	FilePath string `env:"CONFIG"`

	// EnvFilePath is the .env file loaded before environment variables are
	// read. Existing variables are never overwritten.
	// Env: ENV_FILE
	EnvFilePath string `env:"ENV_FILE"`
}

// App holds process-level configuration values.
type App struct {
	// LogFile is where the client writes its JSON log.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the local storage settings.
type Storage struct {
	// DB holds the SQLite session store settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite session store.
type DB struct {
	// DSN is the SQLite database file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds configuration of the backend HTTP adapter.
type Adapter struct {
	// HTTPAddress is the backend base URL, e.g. "http://10.0.0.5:3000/api".
	// A missing scheme defaults to http.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Keypad holds passcode keypad timings.
type Keypad struct {
	// HighlightDelay is how long a pressed key stays highlighted.
	// Env: KEYPAD_HIGHLIGHT_DELAY
	HighlightDelay time.Duration `env:"HIGHLIGHT_DELAY"`

	// ShakeStep is the duration of one step of the error shake animation.
	// Env: KEYPAD_SHAKE_STEP
	ShakeStep time.Duration `env:"SHAKE_STEP"`
}

// Defaults returns the values used when no source sets a field. The backend
// address deliberately has no default.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{LogFile: "crew-pass.log"},
		Storage: Storage{
			DB: DB{DSN: "crew-pass.db"},
		},
		Adapter: Adapter{RequestTimeout: 15 * time.Second},
		Keypad: Keypad{
			HighlightDelay: 150 * time.Millisecond,
			ShakeStep:      50 * time.Millisecond,
		},
		EnvFilePath: ".env",
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources. Command-line arguments are taken from os.Args.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv().
		withEnv().
		withFlags(os.Args[1:]).
		withFile().
		build()
}
