package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-study-sync/internal/config"
	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/internal/store"
	"github.com/MKhiriev/go-study-sync/internal/utils"
	"github.com/MKhiriev/go-study-sync/internal/validators"
	"github.com/MKhiriev/go-study-sync/models"
)

// authService keeps accounts in a UserRepository. Only the peppered bcrypt
// hash from [utils.HashPassword] is stored; hashKey is the pepper, so
// changing it invalidates every stored hash.
type authService struct {
	users     store.UserRepository
	validator validators.Validator
	hashKey   string
	tokens    *utils.TokenSigner
	logger    *logger.Logger
}

func NewAuthService(users store.UserRepository, validator validators.Validator, cfg config.ServerApp, logger *logger.Logger) AuthService {
	return &authService{
		users:     users,
		validator: validator,
		hashKey:   cfg.PasswordHashKey,
		tokens:    utils.NewTokenSigner(cfg.TokenIssuer, cfg.TokenSignKey, cfg.TokenDuration),
		logger:    logger,
	}
}

// credentialsLogger validates login and password and returns a context logger
// tagged with the login.
func (a *authService) credentialsLogger(ctx context.Context, user models.User) (zerolog.Logger, error) {
	log := logger.FromContext(ctx).With().Str("login", user.Login).Logger()

	if err := a.validator.Validate(ctx, user, validators.FieldLogin, validators.FieldPassword); err != nil {
		log.Warn().Err(err).Msg("invalid credentials payload")
		return log, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return log, nil
}

// RegisterUser stores a new account and returns it with its UserID. A taken
// login surfaces as store.ErrLoginAlreadyExists in the chain.
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log, err := a.credentialsLogger(ctx, user)
	if err != nil {
		return models.User{}, err
	}

	if user.PasswordHash, err = utils.HashPassword(user.Password, a.hashKey); err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}
	user.Password = ""

	created, err := a.users.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Msg("user creation failed")
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	return created, nil
}

// Login returns the account matching login and password, without its hash.
// Unknown logins keep store.ErrNoUserWasFound in the chain; a bad password
// is ErrWrongPassword.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log, err := a.credentialsLogger(ctx, user)
	if err != nil {
		return models.User{}, err
	}

	found, err := a.users.FindUserByLogin(ctx, user)
	if err != nil {
		log.Err(err).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("find user: %w", err)
	}

	switch err = utils.CheckPassword(found.PasswordHash, user.Password, a.hashKey); {
	case errors.Is(err, utils.ErrPasswordMismatch):
		log.Warn().Int64("id", found.UserID).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	case err != nil:
		log.Err(err).Int64("id", found.UserID).Msg("stored password hash is unusable")
		return models.User{}, fmt.Errorf("password check failed: %w", err)
	}

	found.PasswordHash = ""
	return found, nil
}

// CreateToken issues a signed JWT for the given user.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := a.tokens.Sign(user.UserID)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string. An expired token yields
// ErrTokenIsExpired; any other validation failure is normalised to
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := a.tokens.Verify(tokenString)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return models.Token{}, ErrTokenIsExpired
	}
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
