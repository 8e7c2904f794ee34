//go:build prod

package config

// defaultMode is the build mode of builds made with -tags prod.
const defaultMode = ModeProduction
