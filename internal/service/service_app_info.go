package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-study-sync/internal/config"
	"github.com/MKhiriev/go-study-sync/internal/logger"
)

// appInfoService reports the version the server was configured with.
type appInfoService struct {
	version string
}

func NewAppInfoService(cfg config.ServerApp, log *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	log.Debug().Str("version", version).Msg("app info service ready")
	return appInfoService{version: version}, nil
}

func (s appInfoService) GetAppVersion(context.Context) string {
	return s.version
}
