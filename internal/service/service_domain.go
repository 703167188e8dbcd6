package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/internal/store"
	"github.com/MKhiriev/go-study-sync/internal/utils"
	"github.com/MKhiriev/go-study-sync/internal/validators"
	"github.com/MKhiriev/go-study-sync/models"
)

// storageRetryPolicy retries a repository call on connection-level failures
// only. It is short: the client retries the whole pass on its own.
var storageRetryPolicy = utils.RetryPolicy{
	MaxAttempts:     3,
	InitialInterval: 50 * time.Millisecond,
	MaxInterval:     200 * time.Millisecond,
}

type domainService struct {
	repository store.DomainRepository
	validator  validators.Validator
	retrier    *utils.Retrier
	logger     *logger.Logger
}

// NewDomainService wires the domain blob service. validator guards every
// incoming record before it reaches the repository.
func NewDomainService(repository store.DomainRepository, validator validators.Validator, logger *logger.Logger) DomainService {
	return &domainService{
		repository: repository,
		validator:  validator,
		retrier:    utils.NewRetrier(storageRetryPolicy, logger),
		logger:     logger,
	}
}

func (s *domainService) Upsert(ctx context.Context, record models.DomainRecord) (models.DomainRecord, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, record); err != nil {
		log.Warn().Err(err).
			Int64("user_id", record.UserID).
			Str("domain_id", record.DomainID).
			Int("payload_bytes", len(record.Payload)).
			Msg("domain record rejected")
		return models.DomainRecord{}, err
	}

	var stored models.DomainRecord
	err := s.retrier.Run(ctx, "upsertDomain", func(ctx context.Context) error {
		var err error
		stored, err = s.repository.UpsertDomain(ctx, record)
		return retryableOnly(err)
	})
	if err != nil {
		return models.DomainRecord{}, storageError(err)
	}

	log.Debug().
		Int64("user_id", stored.UserID).
		Str("domain_id", stored.DomainID).
		Time("updated_at", stored.UpdatedAt).
		Msg("domain record stored")
	return stored, nil
}

func (s *domainService) Get(ctx context.Context, userID int64, domainID string) (models.DomainRecord, error) {
	key := models.DomainRecord{UserID: userID, DomainID: domainID}
	if err := s.validator.Validate(ctx, key, validators.FieldUserID, validators.FieldDomainID); err != nil {
		return models.DomainRecord{}, err
	}

	var record models.DomainRecord
	err := s.retrier.Run(ctx, "getDomain", func(ctx context.Context) error {
		var err error
		record, err = s.repository.GetDomain(ctx, userID, domainID)
		return retryableOnly(err)
	})
	if err != nil {
		return models.DomainRecord{}, storageError(err)
	}

	return record, nil
}

// retryableOnly lets the Retrier repeat transient storage failures and
// stops it on everything else.
func retryableOnly(err error) error {
	if err == nil || errors.Is(err, store.ErrTransient) {
		return err
	}
	return utils.Permanent(err)
}

func storageError(err error) error {
	if errors.Is(err, store.ErrTransient) {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return err
}
