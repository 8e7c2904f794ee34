// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// StructuredConfig is the top-level configuration container for the
// go-api-config application. It aggregates all sub-configurations and is
// populated by merging build defaults, environment variables, command-line
// flags and an optional config file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//   - validate: go-playground/validator rules checked after merging.
type StructuredConfig struct {
	// Build holds the values a build pipeline bakes into the client: the
	// build mode and the production backend URL.
	Build Build

	// Host holds globals injected by the hosting platform before the
	// process starts.
	Host Host `envPrefix:"HOST_"`

	// Store holds settings of the persisted override store.
	Store Store `envPrefix:"STORE_"`

	// Server holds network address and timeout settings for the diagnostics
	// HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// FilePath is the optional path to a JSON or YAML configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from the other sources.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	FilePath string `env:"CONFIG"`
}

// Build holds build-time settings.
type Build struct {
	// Mode is the build mode, "development" or "production" for regular
	// builds. Any other value is reported verbatim.
	// Env: MODE
	Mode string `env:"MODE"`

	// BackendURL is the backend base URL supplied by the build environment.
	// Env: VITE_BACKEND_URL
	BackendURL string `env:"VITE_BACKEND_URL"`
}

// Host describes the hosting platform context.
type Host struct {
	// Enabled reports that the process runs inside a host context even when
	// no global is set. Providing any global implies Enabled.
	// Env: HOST_ENABLED
	Enabled bool `env:"ENABLED"`

	// Globals are name/value pairs injected by the platform
	// (e.g. VITE_BACKEND_URL=https://api.example.com).
	// Env: HOST_GLOBALS, comma separated NAME=VALUE pairs
	Globals map[string]string `env:"GLOBALS" envKeyValSeparator:"="`
}

// Store holds persisted override store settings.
type Store struct {
	// DSN is the SQLite database file. Empty means the XDG data location.
	// Env: STORE_DSN
	DSN string `env:"DSN"`

	// Disabled turns the persisted override tier off entirely.
	// Env: STORE_DISABLED
	Disabled bool `env:"DISABLED"`
}

// Server holds network and timeout settings for the diagnostics server.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "127.0.0.1:8088").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" validate:"omitempty,hostname_port"`

	// RequestTimeout is the maximum duration allowed for reading a request
	// and writing its response.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" validate:"gte=0"`
}

// Log holds logging settings.
type Log struct {
	// Level is the minimum zerolog level that is emitted.
	// Env: LOG_LEVEL
	Level string `env:"LEVEL" validate:"omitempty,oneof=trace debug info warn error"`
}

// HostEnabled reports whether the process runs inside a host context.
func (h Host) HostEnabled() bool {
	return h.Enabled || len(h.Globals) > 0
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Build defaults
//  2. Environment variables
//  3. Command-line flags registered on fs via [RegisterFlags]
//  4. Config file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(fs).
		withFile().
		build()
}
