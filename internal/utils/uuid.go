package utils

import "github.com/google/uuid"

// NewTraceID returns a time-ordered UUIDv7 for the X-Trace-ID header,
// falling back to a random v4 when the v7 clock source fails.
func NewTraceID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
