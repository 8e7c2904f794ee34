//go:build !prod

package config

// defaultMode is the build mode of regular builds.
const defaultMode = ModeDevelopment
