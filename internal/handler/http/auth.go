package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-study-sync/internal/app"
	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/internal/utils"
	"github.com/MKhiriev/go-study-sync/models"
)

// credentialsCheck turns submitted credentials into the account a token is
// issued for.
type credentialsCheck func(ctx context.Context, user models.User) (models.User, error)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	h.exchangeCredentials(w, r, h.services.AuthService.RegisterUser, "register", app.MsgRegistrationFailed)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	h.exchangeCredentials(w, r, h.services.AuthService.Login, "login", app.MsgLoginFailed)
}

// exchangeCredentials decodes a login/password body, runs check on it and
// answers with a bearer token in the Authorization header.
func (h *Handler) exchangeCredentials(w http.ResponseWriter, r *http.Request, check credentialsCheck, action, tokenFailure string) {
	log := logger.FromRequest(r).With().Str("action", action).Logger()

	var creds models.User
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Warn().Err(err).Msg("credentials body is not JSON")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	user, err := check(r.Context(), creds)
	if err != nil {
		writeError(w, r, err, action+" rejected")
		return
	}

	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("token not issued")
		http.Error(w, tokenFailure, http.StatusBadGateway)
		return
	}

	log.Info().Int64("user_id", user.UserID).Msg("token issued")
	writeToken(w, token)
}

// refresh issues a fresh token to the bearer of a still valid one.
func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.UserIDFromContext(r.Context())
	if !ok {
		log.Error().Msg("auth middleware left no user id")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	token, err := h.services.AuthService.CreateToken(r.Context(), models.User{UserID: userID})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("token not refreshed")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	writeToken(w, token)
}

func writeToken(w http.ResponseWriter, token models.Token) {
	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	w.WriteHeader(http.StatusOK)
}
