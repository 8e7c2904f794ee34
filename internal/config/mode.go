package config

import "time"

// Build modes reported by the build environment.
const (
	ModeDevelopment = "development"
	ModeProduction  = "production"
)

const (
	defaultHTTPAddress    = "127.0.0.1:8088"
	defaultRequestTimeout = 5 * time.Second
	defaultLogLevel       = "info"
)

// bakedBackendURL is set at link time:
//
//	go build -ldflags "-X github.com/MKhiriev/go-api-config/internal/config.bakedBackendURL=https://api.example.com"
var bakedBackendURL string

func buildDefaults() *StructuredConfig {
	return &StructuredConfig{
		Build: Build{
			Mode:       defaultMode,
			BackendURL: bakedBackendURL,
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Log: Log{
			Level: defaultLogLevel,
		},
	}
}
