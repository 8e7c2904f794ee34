// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrMissingEndpoint is returned when /api/qualify is called without the
// endpoint query parameter.
var ErrMissingEndpoint = errors.New("missing `endpoint` query parameter")
