// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the goose SQL migrations of the remote store
// (PostgreSQL) and of the client local store (SQLite).
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

const (
	postgresDir = "postgres"
	sqliteDir   = "sqlite"
)

// ErrNilDB is returned when a migration is requested on a nil connection.
var ErrNilDB = errors.New("migration error: db is nil")

// goose keeps dialect and base FS in package globals.
var gooseMu sync.Mutex

// MigratePostgres applies the remote store schema.
func MigratePostgres(db *sql.DB) error {
	return migrate(db, "pgx", postgresDir)
}

// MigrateSQLite applies the client local store schema.
func MigrateSQLite(db *sql.DB) error {
	return migrate(db, "sqlite3", sqliteDir)
}

func migrate(db *sql.DB, dialect, dir string) error {
	if db == nil {
		return ErrNilDB
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedMigrations)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
