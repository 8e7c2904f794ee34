package apiconfig

import (
	"github.com/MKhiriev/go-api-config/internal/config"
	"github.com/MKhiriev/go-api-config/internal/store"
)

// Sources are the configuration tiers handed to [New].
type Sources struct {
	// Overrides is the persisted override store. Nil when no durable store
	// is available.
	Overrides store.OverrideReader

	// Host exposes host-injected globals. Nil when the process does not run
	// inside a host context.
	Host HostEnvironment

	// Build describes the build environment.
	Build BuildEnvironment
}

// BuildEnvironment holds what the build tool provides.
type BuildEnvironment struct {
	Mode       string
	BackendURL string
}

// IsProduction reports whether the build mode is production.
func (b BuildEnvironment) IsProduction() bool {
	return b.Mode == config.ModeProduction
}

// IsDevelopment reports whether the build is not a production build.
func (b BuildEnvironment) IsDevelopment() bool {
	return !b.IsProduction()
}

// HostGlobals is a [HostEnvironment] backed by a fixed map.
type HostGlobals map[string]string

// Global implements [HostEnvironment].
func (g HostGlobals) Global(name string) (string, bool) {
	v, ok := g[name]
	return v, ok
}

// NewSources maps process configuration onto resolution tiers. overrides may
// be nil.
func NewSources(cfg *config.StructuredConfig, overrides store.OverrideReader) Sources {
	sources := Sources{
		Overrides: overrides,
		Build: BuildEnvironment{
			Mode:       cfg.Build.Mode,
			BackendURL: cfg.Build.BackendURL,
		},
	}

	if cfg.Host.HostEnabled() {
		globals := make(HostGlobals, len(cfg.Host.Globals))
		for k, v := range cfg.Host.Globals {
			globals[k] = v
		}
		sources.Host = globals
	}

	return sources
}
