package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-study-sync/internal/logger"
)

// DB wraps a database connection together with the schema migration of its
// dialect and the check that marks driver errors as transient.
type DB struct {
	*sql.DB
	isTransient func(error) bool
	migrate     func(*sql.DB) error
	logger      *logger.Logger
}

// Migrate applies the embedded schema migrations of the connection dialect.
func (db *DB) Migrate() error {
	if db.migrate == nil {
		return nil
	}
	return db.migrate(db.DB)
}

// pool limits applied right after sql.Open.
type pool struct {
	maxOpen, maxIdle int
}

// openAndPing opens dsn with driver, applies the pool limits and checks the
// connection is usable. The connection is closed again when the ping fails.
func openAndPing(ctx context.Context, driver, dsn string, limits pool) (*sql.DB, error) {
	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	conn.SetMaxOpenConns(limits.maxOpen)
	conn.SetMaxIdleConns(limits.maxIdle)

	if err = conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}
	return conn, nil
}
