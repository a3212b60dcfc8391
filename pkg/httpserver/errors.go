package httpserver

import "errors"

var (
	// ErrStart indicates that the server could not listen or stopped serving
	// with an error.
	ErrStart = errors.New("failed to start HTTP server")
	// ErrAlreadyRunning is joined with ErrStart when Run is called twice.
	ErrAlreadyRunning = errors.New("server already running")
	// ErrShutdown indicates that graceful shutdown did not finish in time.
	ErrShutdown = errors.New("failed to shutdown HTTP server gracefully")
)
