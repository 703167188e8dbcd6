package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"k8s.io/utils/clock"

	"github.com/MKhiriev/go-study-sync/internal/adapter"
	"github.com/MKhiriev/go-study-sync/internal/client"
	"github.com/MKhiriev/go-study-sync/internal/config"
	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/internal/service"
	"github.com/MKhiriev/go-study-sync/internal/store"
	"github.com/MKhiriev/go-study-sync/internal/workers"
	"github.com/MKhiriev/go-study-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("study-sync-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("study-sync-client", cfg.App.LogFile)
	defer log.Close()
	if cfg.App.Version == config.DefaultVersion && buildInfo.Known() {
		cfg.App.Version = buildInfo.Version
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	clk := clock.RealClock{}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, clk, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("close local storage")
		}
	}()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	services := service.NewClientServices(storages, serverAdapter, clk, *cfg, log)

	ws, err := workers.NewClientWorkers(services, storages, cfg.Workers, clk, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client workers")
	}

	app, err := client.NewApp(services, ws, cfg.Auth, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	log.Info().Str("version", cfg.App.Version).Str("remote", cfg.Adapter.HTTPAddress).Msg("client started")
	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		return
	}
	log.Info().Msg("client stopped")
}

func printBuildInfo() models.AppBuildInfo {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	_, _ = info.WriteTo(os.Stdout)

	return info
}
