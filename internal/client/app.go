package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-study-sync/internal/config"
	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/internal/service"
	"github.com/MKhiriev/go-study-sync/internal/store"
	"github.com/MKhiriev/go-study-sync/models"
)

const flushTimeout = 10 * time.Second

type App struct {
	services *service.ClientServices
	workers  Runner
	auth     config.ClientAuth
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, workers Runner, cfg config.ClientAuth, logger *logger.Logger) (*App, error) {
	if services == nil || services.AuthService == nil || services.Coordinator == nil {
		return nil, ErrNoServices
	}
	if workers == nil {
		return nil, ErrNoWorkers
	}

	return &App{
		services: services,
		workers:  workers,
		auth:     cfg,
		logger:   logger.WithComponent("app"),
	}, nil
}

// Run blocks until ctx is done. Without a usable session the client keeps
// working locally and sync stays idle.
func (a *App) Run(ctx context.Context) error {
	defer a.services.Coordinator.Close()

	if err := a.openSession(ctx); err != nil {
		return err
	}

	a.services.Coordinator.LoadAll(ctx, true)

	err := a.workers.Run(ctx)

	// ctx is already done here
	flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), flushTimeout)
	defer cancel()
	if a.services.Coordinator.FlushPending(flushCtx) {
		a.logger.Info().Msg("pending changes pushed before exit")
	}

	status := a.services.Coordinator.Status()
	event := a.logger.Info().Bool("syncing", status.IsSyncing)
	if status.LastSyncDate != nil {
		event = event.Time("last_sync", *status.LastSyncDate)
	}
	event.Msg("client stopping")

	return err
}

// openSession restores the stored session or opens a new one with the
// configured credentials. Registering an account that already exists falls
// back to a login. Rejected credentials are fatal; an unreachable remote
// store is not.
func (a *App) openSession(ctx context.Context) error {
	err := a.services.AuthService.RestoreSession(ctx)
	if err == nil {
		a.logger.Info().Msg("session restored")
		return nil
	}
	if !errors.Is(err, service.ErrNoSession) && !errors.Is(err, service.ErrSessionExpired) {
		return fmt.Errorf("restore session: %w", err)
	}

	if a.auth.Login == "" {
		a.logger.Warn().Err(err).Msg("no credentials configured, running without sync")
		return nil
	}

	user := models.User{Login: a.auth.Login, Password: a.auth.Password}
	op, open := "login", a.services.AuthService.Login
	if a.auth.Register {
		op, open = "register", a.services.AuthService.Register
	}

	err = open(ctx, user)
	if a.auth.Register && errors.Is(err, store.ErrLoginAlreadyExists) {
		op = "login"
		err = a.services.AuthService.Login(ctx, user)
	}

	switch {
	case err == nil:
		a.logger.Info().Str("login", user.Login).Str("op", op).Msg("session opened")
		return nil
	case isRejected(err):
		return fmt.Errorf("%s: %w", op, err)
	default:
		a.logger.Warn().Err(err).Str("op", op).Msg("remote store unreachable, running without sync")
		return nil
	}
}

func isRejected(err error) bool {
	return errors.Is(err, service.ErrWrongPassword) ||
		errors.Is(err, service.ErrInvalidDataProvided) ||
		errors.Is(err, service.ErrRegisterOnServer) ||
		errors.Is(err, service.ErrLoginOnServer)
}
