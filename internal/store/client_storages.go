package store

import (
	"context"
	"fmt"

	"k8s.io/utils/clock"

	"github.com/MKhiriev/go-study-sync/internal/config"
	"github.com/MKhiriev/go-study-sync/internal/logger"
)

// ClientStorages groups all client-side storage into a single value that
// can be passed around the service layer.
type ClientStorages struct {
	// Blobs is the SQLite key/value table behind the gateway.
	Blobs LocalBlobRepository
	// Sessions keeps the persisted auth session.
	Sessions SessionRepository
	// Shared is the group store mirror. Nil when no shared dir is configured.
	Shared SharedStore
	// Gateway is what domains and services read and write through.
	Gateway LocalStateGateway

	db *DB
}

// NewClientStorages initialises the client storage layer:
//  1. Opens an SQLite connection to cfg.DB.DSN, creating the file if needed.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Opens the shared group store when cfg.Shared.Dir is set.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, clk clock.PassiveClock, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	var shared SharedStore
	if cfg.Shared.Dir != "" {
		shared, err = NewSharedFileStore(cfg.Shared.Dir, logger)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("shared store error: %w", err)
		}
	}

	blobs := NewLocalBlobRepository(db, clk, logger)

	return &ClientStorages{
		Blobs:    blobs,
		Sessions: NewSessionRepository(db, clk, logger),
		Shared:   shared,
		Gateway:  NewLocalStateGateway(blobs, shared, logger),
		db:       db,
	}, nil
}

// Close releases the SQLite connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
