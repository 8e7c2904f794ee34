// Package http implements the read-only diagnostics surface of the
// application.
//
// It exposes the resolved API configuration over HTTP so operators can see
// which backend a client targets and how a relative endpoint is qualified.
// Request tracing and access logging are handled by middleware in this
// package before requests reach the handlers.
package http
