// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"MODE":             "production",
		"VITE_BACKEND_URL": "https://api.example.com",

		"HOST_ENABLED": "true",
		"HOST_GLOBALS": "VITE_BACKEND_URL=https://edge.example.com,REGION=eu",

		"STORE_DSN":      "/tmp/overrides.db",
		"STORE_DISABLED": "true",

		"SERVER_ADDRESS":         "localhost:8088",
		"SERVER_REQUEST_TIMEOUT": "30s",

		"LOG_LEVEL": "warn",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.FilePath)

	assert.Equal(t, "production", cfg.Build.Mode)
	assert.Equal(t, "https://api.example.com", cfg.Build.BackendURL)

	assert.True(t, cfg.Host.Enabled)
	assert.Equal(t, map[string]string{
		"VITE_BACKEND_URL": "https://edge.example.com",
		"REGION":           "eu",
	}, cfg.Host.Globals)

	assert.Equal(t, "/tmp/overrides.db", cfg.Store.DSN)
	assert.True(t, cfg.Store.Disabled)

	assert.Equal(t, "localhost:8088", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestParseEnv_OnlyBackendURL(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"VITE_BACKEND_URL": "https://api.example.com",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", cfg.Build.BackendURL)
	assert.Empty(t, cfg.Build.Mode)
	assert.Equal(t, Host{}, cfg.Host)
	assert.Equal(t, Store{}, cfg.Store)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"SERVER_REQUEST_TIMEOUT": "invalid_duration",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_InvalidBool(t *testing.T) {
	setEnvVars(t, map[string]string{
		"HOST_ENABLED": "maybe",
	})

	err := parseEnv(&StructuredConfig{})

	require.Error(t, err)
}

// Helpers

var configEnvKeys = []string{
	"CONFIG",
	"MODE",
	"VITE_BACKEND_URL",
	"HOST_ENABLED",
	"HOST_GLOBALS",
	"STORE_DSN",
	"STORE_DISABLED",
	"SERVER_ADDRESS",
	"SERVER_REQUEST_TIMEOUT",
	"LOG_LEVEL",
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range configEnvKeys {
		if old, ok := os.LookupEnv(k); ok {
			t.Cleanup(func() { _ = os.Setenv(k, old) })
		}
		_ = os.Unsetenv(k)
	}
}
