package store

import (
	"context"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/go-study-sync/internal/config"
	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/migrations"
)

// NewConnectPostgres connects the remote store to PostgreSQL through the pgx
// database/sql driver.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := openAndPing(ctx, "pgx", cfg.DSN, pool{maxOpen: 10, maxIdle: 4})
	if err != nil {
		log.Err(err).Msg("postgres is unreachable")
		return nil, err
	}
	log.Info().Msg("postgres connected")

	return &DB{
		DB:          conn,
		logger:      log,
		isTransient: isTransientPostgresError,
		migrate:     migrations.MigratePostgres,
	}, nil
}
