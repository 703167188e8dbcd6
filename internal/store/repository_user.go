package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/models"
)

// userRepository is the PostgreSQL-backed [UserRepository] over "users".
type userRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{db: db, logger: logger}
}

// CreateUser inserts login and password hash and returns the stored row.
// A taken login yields [ErrLoginAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx).With().Str("func", "userRepository.CreateUser").Str("login", user.Login).Logger()

	query, args, err := buildCreateUserQuery(user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	created, err := scanUser(row)
	switch {
	case err == nil:
		return created, nil
	case pgCode(err) == pgerrcode.UniqueViolation:
		log.Warn().Msg("login already taken")
		return models.User{}, ErrLoginAlreadyExists
	default:
		log.Err(err).Msg("failed to create user")
		return models.User{}, r.wrapRowError(row, ErrExecutingStatement, err)
	}
}

// FindUserByLogin returns the account named user.Login or [ErrNoUserWasFound].
func (r *userRepository) FindUserByLogin(ctx context.Context, user models.User) (models.User, error) {
	query, args, err := buildFindUserByLoginQuery(user.Login)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	found, err := scanUser(row)
	switch {
	case err == nil:
		return found, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNoUserWasFound
	default:
		logger.FromContext(ctx).Err(err).
			Str("func", "userRepository.FindUserByLogin").
			Str("login", user.Login).
			Msg("failed to find user")
		return models.User{}, r.wrapRowError(row, ErrExecutingQuery, err)
	}
}

func scanUser(row *sql.Row) (models.User, error) {
	var u models.User
	err := row.Scan(&u.UserID, &u.Login, &u.PasswordHash, &u.CreatedAt)
	return u, err
}

// wrapRowError tells a failed statement from a row that came back in an
// unexpected shape.
func (r *userRepository) wrapRowError(row *sql.Row, execErr, err error) error {
	if row.Err() == nil {
		return fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return fmt.Errorf("%w: %w", execErr, markTransient(r.db, err))
}
