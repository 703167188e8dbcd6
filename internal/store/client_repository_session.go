package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"k8s.io/utils/clock"

	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/models"
)

type sessionRepository struct {
	*DB
	clock  clock.PassiveClock
	logger *logger.Logger
}

// NewSessionRepository returns the SQLite-backed [SessionRepository].
func NewSessionRepository(db *DB, clk clock.PassiveClock, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		DB:     db,
		clock:  clk,
		logger: logger,
	}
}

// LoadSession returns the saved session or [ErrSessionNotFound].
func (s *sessionRepository) LoadSession(ctx context.Context) (models.Session, error) {
	var (
		session   models.Session
		expiresAt sql.NullTime
	)

	err := s.DB.QueryRowContext(ctx, getSession).
		Scan(&session.UserID, &session.Login, &session.AccessToken, &expiresAt, &session.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sessionRepository.LoadSession").Msg("failed to read session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if expiresAt.Valid {
		session.ExpiresAt = expiresAt.Time
	}

	return session, nil
}

// SaveSession replaces the saved session. UpdatedAt is stamped here.
func (s *sessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	expiresAt := sql.NullTime{Time: session.ExpiresAt, Valid: !session.ExpiresAt.IsZero()}

	_, err := s.DB.ExecContext(ctx, saveSession,
		session.UserID,
		session.Login,
		session.AccessToken,
		expiresAt,
		s.clock.Now().UTC(),
	)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "sessionRepository.SaveSession").
			Int64("user_id", session.UserID).
			Msg("failed to save session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sessionRepository) ClearSession(ctx context.Context) error {
	if _, err := s.DB.ExecContext(ctx, clearSession); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
