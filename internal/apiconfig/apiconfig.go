// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apiconfig

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/MKhiriev/go-api-config/internal/logger"
	"github.com/MKhiriev/go-api-config/internal/store"
	"github.com/MKhiriev/go-api-config/models"
)

const (
	// DefaultBaseURL is used when no other tier yields a value.
	DefaultBaseURL = "http://localhost:8787"

	// APIPrefix is placed between the base URL and every relative endpoint.
	APIPrefix = "/api"

	// OverrideKey is the persisted store key of the base URL override.
	OverrideKey = "vite-api-base-url"

	// BackendURLVar names both the host global and the build variable.
	BackendURLVar = "VITE_BACKEND_URL"
)

// APIConfig resolves the backend base URL once and derives endpoint URLs
// from it. The zero value is not usable; construct it with [New].
type APIConfig struct {
	sources Sources
	logger  *logger.Logger

	once    sync.Once
	baseURL string
	source  models.Source
}

// New returns an APIConfig over sources. Nothing is read until the first
// call to [APIConfig.Resolve] or any accessor.
func New(sources Sources, log *logger.Logger) *APIConfig {
	return &APIConfig{
		sources: sources,
		logger:  log,
	}
}

// Resolve performs the one-time resolution and returns the base URL. Later
// calls, including concurrent ones, return the memoized value.
func (c *APIConfig) Resolve(ctx context.Context) string {
	c.once.Do(func() {
		c.baseURL, c.source = c.resolve(ctx)
	})
	return c.baseURL
}

// BaseURL returns the resolved base URL, resolving it first if needed.
func (c *APIConfig) BaseURL() string {
	return c.Resolve(context.Background())
}

// Source returns the tier that produced the base URL.
func (c *APIConfig) Source() models.Source {
	c.Resolve(context.Background())
	return c.source
}

// Qualify turns endpoint into a full URL against the resolved base URL.
// See [Qualify].
func (c *APIConfig) Qualify(endpoint string) string {
	return Qualify(c.BaseURL(), endpoint)
}

// Snapshot reports the observable configuration sources. Build and host
// values are read again on every call.
func (c *APIConfig) Snapshot(ctx context.Context) models.EnvironmentSnapshot {
	baseURL := c.Resolve(ctx)

	build := c.sources.Build
	buildURL := build.BackendURL
	if buildURL == "" {
		buildURL = models.Unset
	}

	hostURL := models.NotInHostContext
	if c.sources.Host != nil {
		hostURL = models.Unset
		if v, ok := c.sources.Host.Global(BackendURLVar); ok && v != "" {
			hostURL = v
		}
	}

	return models.EnvironmentSnapshot{
		APIBaseURL:      baseURL,
		APIPrefix:       APIPrefix,
		Mode:            build.Mode,
		IsDevelopment:   build.IsDevelopment(),
		IsProduction:    build.IsProduction(),
		BuildBackendURL: buildURL,
		HostBackendURL:  hostURL,
		Source:          c.source,
	}
}

func (c *APIConfig) resolve(ctx context.Context) (string, models.Source) {
	if v := c.persistedOverride(ctx); v != "" {
		c.logger.Info().Str("source", string(models.SourceOverride)).Str("base_url", v).Msg("using persisted api base url override")
		return v, models.SourceOverride
	}

	if c.sources.Host != nil {
		if v, ok := c.sources.Host.Global(BackendURLVar); ok && v != "" {
			c.logger.Info().Str("source", string(models.SourceHostGlobal)).Str("base_url", v).Msg("using host-injected api base url")
			return v, models.SourceHostGlobal
		}
	}

	if v := c.sources.Build.BackendURL; v != "" {
		c.logger.Info().Str("source", string(models.SourceBuildEnv)).Str("base_url", v).Msg("using api base url from build environment")
		return v, models.SourceBuildEnv
	}

	c.logger.Warn().
		Str("source", string(models.SourceDefault)).
		Str("base_url", DefaultBaseURL).
		Msgf("%s is not set, falling back to the default api base url", BackendURLVar)
	return DefaultBaseURL, models.SourceDefault
}

func (c *APIConfig) persistedOverride(ctx context.Context) string {
	if c.sources.Overrides == nil {
		return ""
	}

	v, err := c.sources.Overrides.GetOverride(ctx, OverrideKey)
	if err != nil {
		if !errors.Is(err, store.ErrOverrideNotFound) {
			c.logger.Debug().Err(err).Msg("persisted override unavailable, skipping")
		}
		return ""
	}

	return v
}

// Qualify joins baseURL, [APIPrefix] and endpoint.
//
// An endpoint starting with "http" is already absolute and is returned
// unchanged. Otherwise leading slashes are collapsed to exactly one. The
// result is not validated.
func Qualify(baseURL, endpoint string) string {
	if strings.HasPrefix(endpoint, "http") {
		return endpoint
	}

	return baseURL + APIPrefix + "/" + strings.TrimLeft(endpoint, "/")
}
