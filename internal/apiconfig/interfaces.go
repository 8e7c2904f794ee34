package apiconfig

import (
	"context"

	"github.com/MKhiriev/go-api-config/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/apiconfig_mock.go -package=mock

// HostEnvironment exposes globals injected by the hosting platform before
// the process started.
type HostEnvironment interface {
	// Global returns the value of the named global and whether it exists.
	Global(name string) (string, bool)
}

// Resolver is the read-only surface of [APIConfig] consumed by the
// transport layers.
type Resolver interface {
	BaseURL() string
	Qualify(endpoint string) string
	Snapshot(ctx context.Context) models.EnvironmentSnapshot
}
