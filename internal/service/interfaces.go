package service

import (
	"context"

	"github.com/MKhiriev/go-study-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService manages remote store accounts and their access tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// DomainService stores one opaque payload per (user, domain). The last
// write wins.
type DomainService interface {
	// Upsert validates record and replaces the stored payload.
	Upsert(ctx context.Context, record models.DomainRecord) (models.DomainRecord, error)
	// Get returns the stored payload or store.ErrDomainNotFound.
	Get(ctx context.Context, userID int64, domainID string) (models.DomainRecord, error)
}

// AppInfoService reports build information of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
