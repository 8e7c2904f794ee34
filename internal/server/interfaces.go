package server

import "context"

// Server defines the lifecycle contract of the diagnostics server.
//
// Implementations block in [Server.Run] until ctx is cancelled or a stop
// signal arrives, and release resources in [Server.Shutdown].
type Server interface {
	// Run starts serving requests and blocks until the server stops.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server.
	Shutdown(ctx context.Context) error
}
