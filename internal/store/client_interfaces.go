package store

import (
	"context"

	"github.com/MKhiriev/go-study-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalBlobRepository is the low-level key/value table of the client.
type LocalBlobRepository interface {
	GetBlob(ctx context.Context, key string) ([]byte, error)
	PutBlob(ctx context.Context, key string, data []byte) error
	DeleteBlob(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
}

// SessionRepository keeps the single persisted client session.
type SessionRepository interface {
	LoadSession(ctx context.Context) (models.Session, error)
	SaveSession(ctx context.Context, session models.Session) error
	ClearSession(ctx context.Context) error
}

// SharedStore is the group store other processes of the same user read
// and write. Keys map one-to-one to files in [SharedStore.Dir].
type SharedStore interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
	Dir() string
	KeyForPath(path string) (string, bool)
}

// ChangeListener is notified with the key of every local write or delete.
type ChangeListener func(key string)

// LocalStateGateway is the single entry point the client uses to read and
// mutate persisted application state.
type LocalStateGateway interface {
	ReadBlob(ctx context.Context, key string) ([]byte, error)
	WriteBlob(ctx context.Context, key string, data []byte) error
	DeleteBlob(ctx context.Context, key string) error
	// AddListener registers l for change notifications.
	AddListener(l ChangeListener)
	// ImportShared copies the shared copy of key into the primary store when
	// they differ. It reports whether anything changed.
	ImportShared(ctx context.Context, key string) (bool, error)
}
