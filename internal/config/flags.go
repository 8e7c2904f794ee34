package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flag names registered by [RegisterFlags].
const (
	flagConfig         = "config"
	flagMode           = "mode"
	flagBackendURL     = "backend-url"
	flagHost           = "host"
	flagHostGlobal     = "host-global"
	flagStoreDSN       = "store-dsn"
	flagNoStore        = "no-store"
	flagAddress        = "address"
	flagRequestTimeout = "request-timeout"
	flagLogLevel       = "log-level"
)

// RegisterFlags declares all configuration flags on fs.
//
// Flags:
//
//	-c/--config       JSON or YAML config file path
//	--mode            build mode (development, production, ...)
//	--backend-url     backend URL of the build environment
//	--host            run as if started by a hosting platform
//	--host-global     host-injected global, NAME=VALUE, repeatable
//	--store-dsn       SQLite file of the persisted override store
//	--no-store        disable the persisted override tier
//	-a/--address      diagnostics server address host:port
//	--request-timeout diagnostics server request timeout (e.g. "5s")
//	--log-level       minimum log level
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(flagConfig, "c", "", "JSON or YAML config file path")
	fs.String(flagMode, "", "Build mode (development, production)")
	fs.String(flagBackendURL, "", "Backend URL provided by the build environment")
	fs.Bool(flagHost, false, "Run inside a host context")
	fs.StringToString(flagHostGlobal, nil, "Host-injected global NAME=VALUE")
	fs.String(flagStoreDSN, "", "Persisted override store file")
	fs.Bool(flagNoStore, false, "Disable the persisted override store")
	fs.StringP(flagAddress, "a", "", "Diagnostics server address host:port")
	fs.Duration(flagRequestTimeout, 0, "Diagnostics server request timeout (e.g. 5s)")
	fs.String(flagLogLevel, "", "Log level (trace, debug, info, warn, error)")
}

// parseFlags builds a [StructuredConfig] from the flags the user actually
// set on fs. Flags left at their defaults stay zero so they do not mask
// values from other sources during the merge.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	var err error

	set := func(name string, apply func() error) {
		if err != nil || !fs.Changed(name) {
			return
		}
		if applyErr := apply(); applyErr != nil {
			err = fmt.Errorf("error reading flag --%s: %w", name, applyErr)
		}
	}

	set(flagConfig, func() (e error) { cfg.FilePath, e = fs.GetString(flagConfig); return })
	set(flagMode, func() (e error) { cfg.Build.Mode, e = fs.GetString(flagMode); return })
	set(flagBackendURL, func() (e error) { cfg.Build.BackendURL, e = fs.GetString(flagBackendURL); return })
	set(flagHost, func() (e error) { cfg.Host.Enabled, e = fs.GetBool(flagHost); return })
	set(flagHostGlobal, func() (e error) { cfg.Host.Globals, e = fs.GetStringToString(flagHostGlobal); return })
	set(flagStoreDSN, func() (e error) { cfg.Store.DSN, e = fs.GetString(flagStoreDSN); return })
	set(flagNoStore, func() (e error) { cfg.Store.Disabled, e = fs.GetBool(flagNoStore); return })
	set(flagAddress, func() (e error) { cfg.Server.HTTPAddress, e = fs.GetString(flagAddress); return })
	set(flagRequestTimeout, func() (e error) { cfg.Server.RequestTimeout, e = fs.GetDuration(flagRequestTimeout); return })
	set(flagLogLevel, func() (e error) { cfg.Log.Level, e = fs.GetString(flagLogLevel); return })

	if err != nil {
		return nil, err
	}

	return cfg, nil
}
