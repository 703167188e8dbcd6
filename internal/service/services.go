package service

import (
	"fmt"

	"github.com/MKhiriev/go-study-sync/internal/config"
	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/internal/store"
	"github.com/MKhiriev/go-study-sync/internal/validators"
)

// Services groups the remote store server services.
type Services struct {
	AuthService    AuthService
	DomainService  DomainService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.ServerConfig, logger *logger.Logger) (*Services, error) {
	validator := validators.NewDomainValidator(cfg.Server.MaxPayloadBytes)

	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, validator, cfg.App, logger),
		DomainService:  NewDomainService(storages.DomainRepository, validator, logger),
		AppInfoService: appInfo,
	}, nil
}
