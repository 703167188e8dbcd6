package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"k8s.io/utils/clock"

	"github.com/MKhiriev/go-study-sync/internal/logger"
)

type localBlobRepository struct {
	*DB
	clock  clock.PassiveClock
	logger *logger.Logger
}

// NewLocalBlobRepository returns the SQLite-backed [LocalBlobRepository].
func NewLocalBlobRepository(db *DB, clk clock.PassiveClock, logger *logger.Logger) LocalBlobRepository {
	return &localBlobRepository{
		DB:     db,
		clock:  clk,
		logger: logger,
	}
}

func (l *localBlobRepository) GetBlob(ctx context.Context, key string) ([]byte, error) {
	log := logger.FromContext(ctx)

	var data []byte
	err := l.DB.QueryRowContext(ctx, getBlob, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBlobNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "localBlobRepository.GetBlob").
			Str("key", key).
			Msg("failed to read blob")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return data, nil
}

func (l *localBlobRepository) PutBlob(ctx context.Context, key string, data []byte) error {
	log := logger.FromContext(ctx)

	if _, err := l.DB.ExecContext(ctx, putBlob, key, data, l.clock.Now().UTC()); err != nil {
		log.Err(err).
			Str("func", "localBlobRepository.PutBlob").
			Str("key", key).
			Int("bytes", len(data)).
			Msg("failed to execute upsert for blob")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (l *localBlobRepository) DeleteBlob(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	if _, err := l.DB.ExecContext(ctx, deleteBlob, key); err != nil {
		log.Err(err).
			Str("func", "localBlobRepository.DeleteBlob").
			Str("key", key).
			Msg("failed to delete blob")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (l *localBlobRepository) Keys(ctx context.Context) ([]string, error) {
	rows, err := l.DB.QueryContext(ctx, listBlobKeys)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	keys := make([]string, 0, 16)
	for rows.Next() {
		var key string
		if err = rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		keys = append(keys, key)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return keys, nil
}
