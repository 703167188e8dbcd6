package http

import (
	"github.com/MKhiriev/go-study-sync/internal/config"
	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/internal/service"
)

type Handler struct {
	services *service.Services

	// maxPayloadBytes caps the body of a domain upsert. Zero disables the cap.
	maxPayloadBytes int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.ServerHTTP, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:        services,
		maxPayloadBytes: cfg.MaxPayloadBytes,
		logger:          logger,
	}
}
