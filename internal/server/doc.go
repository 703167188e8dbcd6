// Package server runs the remote store HTTP server.
//
// It owns the listener lifecycle: serving until the context is cancelled
// and then shutting down gracefully within a bounded time.
package server
