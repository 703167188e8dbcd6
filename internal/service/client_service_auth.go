package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"k8s.io/utils/clock"

	"github.com/MKhiriev/go-study-sync/internal/adapter"
	"github.com/MKhiriev/go-study-sync/internal/config"
	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/internal/store"
	"github.com/MKhiriev/go-study-sync/internal/utils"
	"github.com/MKhiriev/go-study-sync/models"
)

type clientAuthService struct {
	sessions store.SessionRepository
	adapter  adapter.ServerAdapter
	clock    clock.PassiveClock
	leeway   time.Duration
	logger   *logger.Logger

	mu      sync.RWMutex
	session *models.Session
}

// NewClientAuthService creates the client auth service. Nobody is signed
// in until RestoreSession, Login or Register succeeds.
func NewClientAuthService(sessions store.SessionRepository, serverAdapter adapter.ServerAdapter, clk clock.PassiveClock, cfg config.ClientAuth, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		sessions: sessions,
		adapter:  serverAdapter,
		clock:    clk,
		leeway:   cfg.RefreshLeeway,
		logger:   logger,
	}
}

func (a *clientAuthService) CurrentUser() (int64, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.session == nil || a.session.AccessToken == "" {
		return 0, false
	}
	return a.session.UserID, true
}

func (a *clientAuthService) AccessToken() string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.session == nil {
		return ""
	}
	return a.session.AccessToken
}

// RefreshIfNeeded exchanges the token once it is within the refresh leeway
// of its expiry. A token the server rejects ends the session.
func (a *clientAuthService) RefreshIfNeeded(ctx context.Context) {
	a.mu.RLock()
	if a.session == nil {
		a.mu.RUnlock()
		return
	}
	current := *a.session
	a.mu.RUnlock()

	if current.ExpiresAt.IsZero() || a.clock.Now().Add(a.leeway).Before(current.ExpiresAt) {
		return
	}

	token, err := a.adapter.RefreshToken(ctx, current.AccessToken)
	if err != nil {
		err = mapAdapterError(err)
		a.logger.Warn().Err(err).
			Str("func", "clientAuthService.RefreshIfNeeded").
			Int64("user_id", current.UserID).
			Time("expires_at", current.ExpiresAt).
			Msg("token refresh failed")

		if errors.Is(err, adapter.ErrUnauthorized) {
			a.forget(ctx, current.AccessToken)
		}
		return
	}

	if err = a.adopt(ctx, current.Login, token); err != nil {
		a.logger.Warn().Err(err).Str("func", "clientAuthService.RefreshIfNeeded").Msg("refreshed token rejected")
	}
}

func (a *clientAuthService) RestoreSession(ctx context.Context) error {
	session, err := a.sessions.LoadSession(ctx)
	if errors.Is(err, store.ErrSessionNotFound) {
		return ErrNoSession
	}
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}

	if session.AccessToken == "" {
		return ErrNoSession
	}
	if session.IsExpired(a.clock.Now()) {
		return ErrSessionExpired
	}

	a.mu.Lock()
	a.session = &session
	a.mu.Unlock()

	a.logger.Info().
		Str("func", "clientAuthService.RestoreSession").
		Int64("user_id", session.UserID).
		Str("login", session.Login).
		Msg("session restored")
	return nil
}

func (a *clientAuthService) Login(ctx context.Context, user models.User) error {
	if user.Login == "" || user.Password == "" {
		return ErrInvalidDataProvided
	}

	token, err := a.adapter.Login(ctx, user)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	return a.adopt(ctx, user.Login, token)
}

func (a *clientAuthService) Register(ctx context.Context, user models.User) error {
	if user.Login == "" || user.Password == "" {
		return ErrInvalidDataProvided
	}

	token, err := a.adapter.Register(ctx, user)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAdapterError(err))
	}

	return a.adopt(ctx, user.Login, token)
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.mu.Lock()
	a.session = nil
	a.mu.Unlock()

	if err := a.sessions.ClearSession(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// adopt reads the user id and expiry out of token, persists the session
// and makes it current.
func (a *clientAuthService) adopt(ctx context.Context, login, token string) error {
	userID, expiresAt, err := utils.ParseUnverifiedClaims(token)
	if err != nil {
		return fmt.Errorf("parse access token: %w", err)
	}

	session := models.Session{
		UserID:      userID,
		Login:       login,
		AccessToken: token,
		ExpiresAt:   expiresAt,
		UpdatedAt:   a.clock.Now(),
	}
	if err = a.sessions.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	a.mu.Lock()
	a.session = &session
	a.mu.Unlock()

	return nil
}

// forget drops the session if it still carries token.
func (a *clientAuthService) forget(ctx context.Context, token string) {
	a.mu.Lock()
	if a.session == nil || a.session.AccessToken != token {
		a.mu.Unlock()
		return
	}
	a.session = nil
	a.mu.Unlock()

	if err := a.sessions.ClearSession(ctx); err != nil {
		a.logger.Warn().Err(err).Str("func", "clientAuthService.forget").Msg("failed to clear session")
	}
}
