package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-study-sync/internal/logger"
)

// localStateGateway persists blobs in the primary SQLite table and mirrors
// every write into the optional shared group store.
type localStateGateway struct {
	blobs  LocalBlobRepository
	shared SharedStore
	logger *logger.Logger

	mu        sync.RWMutex
	listeners []ChangeListener
}

// NewLocalStateGateway builds a [LocalStateGateway]. shared may be nil, in
// which case nothing is mirrored.
func NewLocalStateGateway(blobs LocalBlobRepository, shared SharedStore, logger *logger.Logger) LocalStateGateway {
	return &localStateGateway{
		blobs:  blobs,
		shared: shared,
		logger: logger,
	}
}

// ReadBlob returns the primary copy of key or [ErrBlobNotFound].
func (g *localStateGateway) ReadBlob(ctx context.Context, key string) ([]byte, error) {
	return g.blobs.GetBlob(ctx, key)
}

// WriteBlob stores data under key and notifies listeners. A failed mirror
// write is logged; the primary copy stays authoritative.
func (g *localStateGateway) WriteBlob(ctx context.Context, key string, data []byte) error {
	if err := g.blobs.PutBlob(ctx, key, data); err != nil {
		return fmt.Errorf("write blob %q: %w", key, err)
	}

	if g.shared != nil {
		if err := g.shared.Write(ctx, key, data); err != nil {
			g.logger.Warn().Err(err).
				Str("func", "localStateGateway.WriteBlob").
				Str("key", key).
				Msg("failed to mirror blob into shared store")
		}
	}

	g.notify(key)
	return nil
}

func (g *localStateGateway) DeleteBlob(ctx context.Context, key string) error {
	if err := g.blobs.DeleteBlob(ctx, key); err != nil {
		return fmt.Errorf("delete blob %q: %w", key, err)
	}

	if g.shared != nil {
		if err := g.shared.Delete(ctx, key); err != nil {
			g.logger.Warn().Err(err).
				Str("func", "localStateGateway.DeleteBlob").
				Str("key", key).
				Msg("failed to delete mirrored blob")
		}
	}

	g.notify(key)
	return nil
}

func (g *localStateGateway) AddListener(l ChangeListener) {
	if l == nil {
		return
	}

	g.mu.Lock()
	g.listeners = append(g.listeners, l)
	g.mu.Unlock()
}

// ImportShared pulls an externally written shared value into the primary
// store. Values equal to the primary copy, including our own mirrored
// writes, are ignored.
func (g *localStateGateway) ImportShared(ctx context.Context, key string) (bool, error) {
	if g.shared == nil {
		return false, nil
	}

	incoming, err := g.shared.Read(ctx, key)
	if errors.Is(err, ErrBlobNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read shared blob %q: %w", key, err)
	}

	current, err := g.blobs.GetBlob(ctx, key)
	if err != nil && !errors.Is(err, ErrBlobNotFound) {
		return false, fmt.Errorf("read blob %q: %w", key, err)
	}
	if err == nil && bytes.Equal(current, incoming) {
		return false, nil
	}

	if err = g.blobs.PutBlob(ctx, key, incoming); err != nil {
		return false, fmt.Errorf("import blob %q: %w", key, err)
	}

	g.logger.Debug().
		Str("func", "localStateGateway.ImportShared").
		Str("key", key).
		Int("bytes", len(incoming)).
		Msg("imported shared blob")

	g.notify(key)
	return true, nil
}

func (g *localStateGateway) notify(key string) {
	g.mu.RLock()
	listeners := slices.Clone(g.listeners)
	g.mu.RUnlock()

	for _, l := range listeners {
		l(key)
	}
}
