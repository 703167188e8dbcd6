package models

import "time"

// Session is the locally persisted authentication state of the client.
type Session struct {
	// UserID is the server-side user identifier, taken from the token subject.
	UserID int64 `json:"user_id"`

	// Login is the login the session was opened with.
	Login string `json:"login"`

	// AccessToken is the bearer token attached to remote store requests.
	AccessToken string `json:"access_token"`

	// ExpiresAt is the token expiry read from its "exp" claim. Zero when the
	// token carries no expiry.
	ExpiresAt time.Time `json:"expires_at"`

	// UpdatedAt is when the session was last written locally.
	UpdatedAt time.Time `json:"updated_at"`
}

// IsExpired reports whether the access token has expired at now.
func (s Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
