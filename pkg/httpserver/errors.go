package httpserver

import "errors"

var (
	// ErrStart indicates that the server failed to start or stopped serving unexpectedly.
	ErrStart = errors.New("failed to start HTTP server")
	// ErrShutdown indicates that graceful shutdown failed.
	ErrShutdown = errors.New("failed to shutdown HTTP server gracefully")
	// ErrAlreadyRunning is joined with ErrStart when Serve is called twice.
	ErrAlreadyRunning = errors.New("HTTP server already running")
	// ErrNotRunning is returned by Ready before the server accepts connections.
	ErrNotRunning = errors.New("HTTP server not running")
	// ErrDraining is returned by Ready once shutdown has begun.
	ErrDraining = errors.New("HTTP server is draining")
)
