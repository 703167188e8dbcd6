package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-study-sync/internal/app"
	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/internal/service"
	"github.com/MKhiriev/go-study-sync/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and stores the user ID in the request
// context via [utils.WithUserID].
//
// Every rejection is a 401. The body is [app.MsgTokenIsExpired] for an
// expired token, so the client knows a refresh may help, and
// [app.MsgTokenIsExpiredOrInvalid] otherwise.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Send()
			http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			if errors.Is(err, service.ErrTokenIsExpired) {
				log.Err(err).Msg("token expired")
				http.Error(w, app.MsgTokenIsExpired, http.StatusUnauthorized)
				return
			}
			log.Err(err).Msg("error occurred during parsing token")
			http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		ctx = utils.WithUserID(ctx, token.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// checkUserAccess rejects requests whose {userID} path segment names a user
// other than the token owner. It must run after [Handler.auth].
func (h *Handler) checkUserAccess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenUserID, ok := utils.UserIDFromContext(r.Context())
		if !ok {
			log.Error().Msg("no user ID in context")
			http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
			return
		}

		raw := chi.URLParam(r, "userID")
		pathUserID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || pathUserID <= 0 {
			log.Warn().Str("user_id_param", raw).Msg(ErrInvalidUserIDParam.Error())
			http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
			return
		}

		if pathUserID != tokenUserID {
			writeError(w, r, fmt.Errorf("%w: token user %d, path user %d",
				service.ErrUnauthorizedAccessToDifferentUserData, tokenUserID, pathUserID), "access denied")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// getTokenFromAuthHeader extracts the token from an
// "Authorization: Bearer <token>" header value. The scheme is matched
// case-insensitively.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	scheme, tokenString, found := strings.Cut(strings.TrimSpace(authHeader), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
