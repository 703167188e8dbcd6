package service

import (
	"k8s.io/utils/clock"

	"github.com/MKhiriev/go-study-sync/internal/adapter"
	"github.com/MKhiriev/go-study-sync/internal/config"
	"github.com/MKhiriev/go-study-sync/internal/domains"
	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/internal/store"
)

// ClientServices groups the client-side services.
type ClientServices struct {
	AuthService ClientAuthService
	Coordinator ClientSyncCoordinator
	PullJob     ClientPullJob
	Registry    *domains.Registry
}

// NewClientServices builds the built-in domain registry over the storage
// gateway and wires the coordinator to it. Every local write reported by
// the gateway becomes a sync request.
func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, clk clock.WithTickerAndDelayedExecution, cfg config.ClientConfig, logger *logger.Logger) *ClientServices {
	authSvc := NewClientAuthService(storages.Sessions, serverAdapter, clk, cfg.Auth, logger)
	registry := domains.NewBuiltinRegistry(storages.Gateway, clk, logger)
	coordinator := NewClientSyncCoordinator(registry, serverAdapter, authSvc, clk, cfg.Sync, logger)

	storages.Gateway.AddListener(func(string) {
		coordinator.RequestSync()
	})

	return &ClientServices{
		AuthService: authSvc,
		Coordinator: coordinator,
		PullJob:     NewClientPullJob(coordinator, clk, logger),
		Registry:    registry,
	}
}
