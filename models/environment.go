// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Source names the configuration tier that produced the resolved base URL.
type Source string

const (
	// SourceOverride is the persisted override stored under the override key.
	SourceOverride Source = "override"
	// SourceHostGlobal is the value injected by the hosting platform.
	SourceHostGlobal Source = "host_global"
	// SourceBuildEnv is the backend URL supplied by the build environment.
	SourceBuildEnv Source = "build_env"
	// SourceDefault is the hard-coded fallback.
	SourceDefault Source = "default"
)

// Sentinel values reported by [EnvironmentSnapshot] for absent sources.
const (
	// Unset marks a source that is reachable but carries no value.
	Unset = "unset"
	// NotInHostContext marks a process that was not started by a hosting
	// platform, so no host globals exist at all.
	NotInHostContext = "not in host context"
)

// EnvironmentSnapshot is a read-only view of the observable configuration
// sources. It is meant for operators debugging which backend a client talks
// to and is never consumed by resolution logic.
type EnvironmentSnapshot struct {
	APIBaseURL      string `json:"apiBaseUrl"`
	APIPrefix       string `json:"apiPrefix"`
	Mode            string `json:"mode"`
	IsDevelopment   bool   `json:"isDevelopment"`
	IsProduction    bool   `json:"isProduction"`
	BuildBackendURL string `json:"buildBackendUrl"`
	HostBackendURL  string `json:"hostBackendUrl"`
	Source          Source `json:"source"`
}
