package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-study-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// AuthProvider is what the sync coordinator needs to know about the
// signed-in user.
type AuthProvider interface {
	// CurrentUser returns the signed-in user id. ok is false when nobody is
	// signed in.
	CurrentUser() (userID int64, ok bool)
	// AccessToken returns the bearer token, or "" when there is none.
	AccessToken() string
	// RefreshIfNeeded renews a token that is about to expire. It is best
	// effort and never fails; callers re-read AccessToken afterwards.
	RefreshIfNeeded(ctx context.Context)
}

// ClientAuthService manages the client session: it opens one with the
// remote store, persists it locally and keeps its token fresh.
type ClientAuthService interface {
	AuthProvider

	// RestoreSession loads the persisted session. Returns [ErrNoSession] or
	// [ErrSessionExpired] when there is nothing usable.
	RestoreSession(ctx context.Context) error
	// Login opens a session with the given credentials.
	Login(ctx context.Context, user models.User) error
	// Register creates the account and opens a session for it.
	Register(ctx context.Context, user models.User) error
	// Logout forgets the session locally.
	Logout(ctx context.Context) error
}

// ClientSyncCoordinator owns every sync decision of the client: when to
// push, when to pull, and how to keep the two from feeding each other.
// None of its methods return errors; failures are logged.
type ClientSyncCoordinator interface {
	// RequestSync tells the coordinator local state changed. It arms the
	// debounce timer; the push happens once mutations go quiet.
	RequestSync()
	// SyncAllDebounced arms the debounce timer without the anti-echo and
	// auth checks of RequestSync.
	SyncAllDebounced()
	// SyncAll pushes every domain now.
	SyncAll(ctx context.Context)
	// LoadAll pulls every domain. Unless force is set, calls closer than
	// the minimum load interval are dropped.
	LoadAll(ctx context.Context, force bool)
	// FlushPending runs an armed debounce right away. It reports whether
	// anything was pending.
	FlushPending(ctx context.Context) bool
	// Status returns a snapshot for display.
	Status() models.SyncStatus
	// Close stops the debounce timer, cancels running passes and waits for
	// them to return.
	Close()
}

// ClientPullJob periodically pulls remote state.
type ClientPullJob interface {
	// Start launches the background pull goroutine. Any previously running
	// job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
