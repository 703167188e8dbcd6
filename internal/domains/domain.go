package domains

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-study-sync/models"
)

//go:generate mockgen -source=domain.go -destination=../mock/domains_mock.go -package=mock

// ErrShapeMismatch is wrapped by Apply when a remote payload is present but
// cannot be decoded into the domain's shape.
var ErrShapeMismatch = errors.New("payload shape mismatch")

// Domain is one independently synchronized unit of local state.
type Domain interface {
	// ID is the stable remote key of the domain.
	ID() string
	// LegacyIDs are older remote keys tried, in order, when ID yields nothing.
	LegacyIDs() []string
	// Encode reads local state. It never fails: absent or unreadable state
	// is reported as a nil payload, which the push pass skips.
	Encode(ctx context.Context) models.Payload
	// Apply writes a remote payload into local state.
	Apply(ctx context.Context, payload models.Payload) error
}

// LocalStore is the part of the local state gateway the domains use.
// ReadBlob reports a missing key with an error matching
// store.ErrBlobNotFound.
type LocalStore interface {
	ReadBlob(ctx context.Context, key string) ([]byte, error)
	WriteBlob(ctx context.Context, key string, data []byte) error
	DeleteBlob(ctx context.Context, key string) error
}

func shapeMismatch(domainID string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrShapeMismatch, domainID, err)
}
