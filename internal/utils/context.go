// Package utils provides small helpers shared by the client and the server:
// request context values, password hashing, UUIDs, JSON responses, the
// outbound HTTP client, JWT tokens and backoff retries.
package utils

import "context"

type userIDKey struct{}

// WithUserID returns a copy of ctx carrying the authenticated user id.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserIDFromContext reports the user id stored by [WithUserID]. Ids that are
// not positive are treated as absent.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey{}).(int64)
	if !ok || userID <= 0 {
		return 0, false
	}
	return userID, true
}
