package server

import "context"

// Server defines the lifecycle contract of the inspector server.
type Server interface {
	// Run serves requests until ctx is done or SIGINT, SIGTERM or SIGQUIT is
	// received, then shuts down gracefully. It returns an error only when
	// the listener fails.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown(ctx context.Context) error
}
