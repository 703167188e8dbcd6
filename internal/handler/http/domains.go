package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-study-sync/internal/app"
	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/internal/utils"
	"github.com/MKhiriev/go-study-sync/models"
)

// envelopeOverhead is the room left for {"payload": ...} around a payload
// of the maximum size.
const envelopeOverhead = 1024

func (h *Handler) upsertDomain(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.UserIDFromContext(r.Context())
	if !ok {
		log.Error().Str("func", "*Handler.upsertDomain").Msg("no user ID was given")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}
	domainID := chi.URLParam(r, "domainID")

	if h.maxPayloadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxPayloadBytes+envelopeOverhead)
	}

	var body models.UpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			log.Warn().Str("func", "*Handler.upsertDomain").Int64("limit", tooLarge.Limit).Msg("request body too large")
			http.Error(w, app.MsgPayloadTooLarge, http.StatusRequestEntityTooLarge)
			return
		}
		log.Err(err).Str("func", "*Handler.upsertDomain").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidPayload, http.StatusBadRequest)
		return
	}

	_, err := h.services.DomainService.Upsert(r.Context(), models.DomainRecord{
		UserID:   userID,
		DomainID: domainID,
		Payload:  body.Payload,
	})
	if err != nil {
		writeError(w, r, err, "error storing domain payload")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getDomain(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.UserIDFromContext(r.Context())
	if !ok {
		log.Error().Str("func", "*Handler.getDomain").Msg("no user ID was given")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	record, err := h.services.DomainService.Get(r.Context(), userID, chi.URLParam(r, "domainID"))
	if err != nil {
		writeError(w, r, err, "error loading domain payload")
		return
	}

	if err = utils.WriteJSON(w, http.StatusOK, models.FetchResponse{
		DomainID:  record.DomainID,
		Payload:   record.Payload,
		UpdatedAt: &record.UpdatedAt,
	}); err != nil {
		log.Err(err).Str("func", "*Handler.getDomain").Msg("error writing response")
	}
}
