package store

import (
	"context"

	"github.com/MKhiriev/go-study-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists remote store accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, user models.User) (models.User, error)
}

// DomainRepository persists one opaque payload per (user, domain) pair.
// Writes are last-writer-wins.
type DomainRepository interface {
	UpsertDomain(ctx context.Context, record models.DomainRecord) (models.DomainRecord, error)
	GetDomain(ctx context.Context, userID int64, domainID string) (models.DomainRecord, error)
}
