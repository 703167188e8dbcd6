// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigratePostgres_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	_ = mock // не используем напрямую, goose сам будет ходить в DB

	err = MigratePostgres(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	assert.ErrorIs(t, MigratePostgres(db), ErrNilDB)
	assert.ErrorIs(t, MigrateSQLite(db), ErrNilDB)
}

func TestMigrateSQLite_CreatesTables(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, MigrateSQLite(db))
	// повторный запуск не должен ломаться
	require.NoError(t, MigrateSQLite(db))

	for _, table := range []string{"blobs", "session"} {
		var name string
		err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, table)
		assert.Equal(t, table, name)
	}
}

func TestEmbeddedMigrations_Present(t *testing.T) {
	for _, dir := range []string{postgresDir, sqliteDir} {
		entries, err := fs.ReadDir(embedMigrations, dir)
		require.NoError(t, err)
		assert.NotEmpty(t, entries, dir)
	}
}
