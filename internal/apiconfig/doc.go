// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package apiconfig decides which backend API base URL the client targets
// and builds fully-qualified endpoint URLs from relative paths.
//
// The base URL is picked once, on first access, from four tiers in strict
// order:
//  1. a persisted override read from the override store;
//  2. a global injected by the hosting platform;
//  3. the backend URL supplied by the build environment;
//  4. the hard-coded [DefaultBaseURL].
//
// Absent or empty tiers are skipped. Falling back to the default is the only
// degraded mode and is reported with a single warning log line.
package apiconfig
