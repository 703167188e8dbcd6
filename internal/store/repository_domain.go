package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/models"
)

// domainRepository is the PostgreSQL-backed implementation of
// [DomainRepository] over the "domain_blobs" table.
type domainRepository struct {
	*DB
	logger *logger.Logger
}

// NewDomainRepository constructs a [DomainRepository] backed by db.
func NewDomainRepository(db *DB, logger *logger.Logger) DomainRepository {
	logger.Debug().Msg("creating domain repository")
	return &domainRepository{
		DB:     db,
		logger: logger,
	}
}

// UpsertDomain stores record.Payload for (record.UserID, record.DomainID),
// replacing any previous value, and returns the record with the stored
// UpdatedAt. Retryable driver failures are wrapped with [ErrTransient].
func (d *domainRepository) UpsertDomain(ctx context.Context, record models.DomainRecord) (models.DomainRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertDomainQuery(record)
	if err != nil {
		log.Err(err).
			Str("func", "domainRepository.UpsertDomain").
			Int64("user_id", record.UserID).
			Str("domain_id", record.DomainID).
			Msg("failed to build query")
		return models.DomainRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = d.DB.QueryRowContext(ctx, query, args...).Scan(&record.UpdatedAt); err != nil {
		log.Err(err).
			Str("func", "domainRepository.UpsertDomain").
			Int64("user_id", record.UserID).
			Str("domain_id", record.DomainID).
			Int("payload_bytes", len(record.Payload)).
			Msg("failed to upsert domain blob")
		return models.DomainRecord{}, fmt.Errorf("%w: %w", ErrExecutingStatement, markTransient(d.DB, err))
	}

	return record, nil
}

// GetDomain returns the stored blob of (userID, domainID) or
// [ErrDomainNotFound].
func (d *domainRepository) GetDomain(ctx context.Context, userID int64, domainID string) (models.DomainRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetDomainQuery(userID, domainID)
	if err != nil {
		log.Err(err).
			Str("func", "domainRepository.GetDomain").
			Int64("user_id", userID).
			Str("domain_id", domainID).
			Msg("failed to build query")
		return models.DomainRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		record  models.DomainRecord
		payload []byte
	)
	err = d.DB.QueryRowContext(ctx, query, args...).Scan(&record.UserID, &record.DomainID, &payload, &record.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DomainRecord{}, ErrDomainNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "domainRepository.GetDomain").
			Int64("user_id", userID).
			Str("domain_id", domainID).
			Msg("failed to get domain blob")
		return models.DomainRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, markTransient(d.DB, err))
	}
	record.Payload = payload

	return record, nil
}
