package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-study-sync/models"
)

var (
	// ErrTokenSignerConfig is returned by Sign when the signer lacks an
	// issuer, a key or a lifetime.
	ErrTokenSignerConfig = errors.New("jwt: issuer, sign key and a non-zero ttl are required")

	errEmptySubject = errors.New("jwt: empty subject")
)

// TokenSigner issues and verifies HS256 tokens for a single issuer. The
// subject claim carries the user id in base 10.
type TokenSigner struct {
	issuer string
	key    []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenSigner returns a signer. Configuration is checked by Sign, so a
// server with a missing key still starts and answers 502 on login.
func NewTokenSigner(issuer, signKey string, ttl time.Duration) *TokenSigner {
	return &TokenSigner{issuer: issuer, key: []byte(signKey), ttl: ttl, now: time.Now}
}

// Sign issues a token for userID expiring ttl from now. A negative ttl
// yields an already expired token.
func (s *TokenSigner) Sign(userID int64) (models.Token, error) {
	if s.issuer == "" || len(s.key) == 0 || s.ttl == 0 {
		return models.Token{}, ErrTokenSignerConfig
	}

	now := s.now()
	claims := jwt.RegisteredClaims{
		Issuer:    s.issuer,
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.key)
	if err != nil {
		return models.Token{}, fmt.Errorf("jwt: sign: %w", err)
	}

	return models.Token{RegisteredClaims: claims, SignedString: signed, UserID: userID}, nil
}

// Verify checks signature, algorithm, issuer and expiry of raw and returns
// the token with its user id. Expiry surfaces as jwt.ErrTokenExpired in the
// error chain.
func (s *TokenSigner) Verify(raw string) (models.Token, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(raw, claims,
		func(*jwt.Token) (any, error) { return s.key, nil },
		jwt.WithIssuer(s.issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("jwt: verify: %w", err)
	}

	userID, err := subjectUserID(claims.Subject)
	if err != nil {
		return models.Token{}, err
	}

	return models.Token{RegisteredClaims: *claims, SignedString: raw, UserID: userID}, nil
}

// ParseUnverifiedClaims reads the subject and expiry of a token without
// checking its signature. The client does not know the sign key; it only
// needs to know whose token it holds and when to refresh it.
func ParseUnverifiedClaims(raw string) (userID int64, expiresAt time.Time, err error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err = jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return 0, time.Time{}, fmt.Errorf("jwt: parse: %w", err)
	}

	if userID, err = subjectUserID(claims.Subject); err != nil {
		return 0, time.Time{}, err
	}
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	return userID, expiresAt, nil
}

func subjectUserID(sub string) (int64, error) {
	if sub == "" {
		return 0, errEmptySubject
	}
	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("jwt: subject %q is not a user id: %w", sub, err)
	}
	return id, nil
}

// ParseBearerToken returns the credentials of an "Authorization: Bearer
// <token>" header value. The scheme is matched case-insensitively.
func ParseBearerToken(header string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" || strings.Contains(token, " ") {
		return "", errors.New("invalid authorization header")
	}
	return token, nil
}
