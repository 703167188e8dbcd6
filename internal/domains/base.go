package domains

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/internal/store"
)

type base struct {
	id     string
	legacy []string

	store  LocalStore
	logger *logger.Logger
}

func (b *base) ID() string { return b.id }

func (b *base) LegacyIDs() []string {
	out := make([]string, len(b.legacy))
	copy(out, b.legacy)
	return out
}

// read returns the local value of key. A missing key is not logged; any
// other failure is logged and treated as missing.
func (b *base) read(ctx context.Context, key string) ([]byte, bool) {
	data, err := b.store.ReadBlob(ctx, key)
	if err != nil {
		if !errors.Is(err, store.ErrBlobNotFound) {
			b.logger.Err(err).
				Str("func", "domains.read").
				Str("domain", b.id).
				Str("key", key).
				Msg("error reading local state")
		}
		return nil, false
	}

	return data, len(data) > 0
}
