package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-study-sync/internal/config"
	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/migrations"
)

// NewConnectSQLite opens the client's local SQLite database, creating the
// file and its parent directory when missing.
func NewConnectSQLite(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (*DB, error) {
	if err := ensureDBFile(cfg.DSN); err != nil {
		log.Err(err).Str("dsn", cfg.DSN).Msg("local database file is not writable")
		return nil, err
	}

	// sqlite serialises writers anyway; one connection avoids SQLITE_BUSY
	conn, err := openAndPing(ctx, "sqlite3", cfg.DSN, pool{maxOpen: 1, maxIdle: 1})
	if err != nil {
		log.Err(err).Str("dsn", cfg.DSN).Msg("local database is unreachable")
		return nil, err
	}
	log.Debug().Str("dsn", cfg.DSN).Msg("local database opened")

	return &DB{
		DB:      conn,
		logger:  log,
		migrate: migrations.MigrateSQLite,
	}, nil
}

func ensureDBFile(path string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat db file: %w", err)
	}

	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create db dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("create db file: %w", err)
	}
	return f.Close()
}
