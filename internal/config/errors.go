package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a
// configuration group is invalid.
var (
	// ErrInvalidServerConfigs indicates invalid diagnostics server settings
	// (for example, an address not in host:port form).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidConfigs covers any other invalid field.
	ErrInvalidConfigs = errors.New("invalid configuration")
)
