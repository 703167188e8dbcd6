package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-study-sync/internal/app"
	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/internal/service"
	"github.com/MKhiriev/go-study-sync/internal/store"
	"github.com/MKhiriev/go-study-sync/internal/validators"
)

type errorResponse struct {
	status  int
	message string
}

// errorResponses is checked in order; the first match wins. The messages
// are the ones the client adapter matches on.
var errorResponses = []struct {
	target error
	errorResponse
}{
	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{service.ErrWrongPassword, errorResponse{http.StatusUnauthorized, app.MsgInvalidLoginPassword}},
	{store.ErrNoUserWasFound, errorResponse{http.StatusUnauthorized, app.MsgInvalidLoginPassword}},
	{service.ErrTokenIsExpired, errorResponse{http.StatusUnauthorized, app.MsgTokenIsExpired}},
	{service.ErrTokenIsExpiredOrInvalid, errorResponse{http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid}},
	{service.ErrUnauthorizedAccessToDifferentUserData, errorResponse{http.StatusForbidden, app.MsgAccessDenied}},
	{store.ErrLoginAlreadyExists, errorResponse{http.StatusConflict, app.MsgLoginAlreadyExists}},
	{store.ErrDomainNotFound, errorResponse{http.StatusNotFound, app.MsgDomainNotFound}},

	{validators.ErrInvalidUserID, errorResponse{http.StatusBadRequest, app.MsgNoUserIDProvided}},
	{validators.ErrInvalidDomainID, errorResponse{http.StatusBadRequest, app.MsgInvalidDomainID}},
	{validators.ErrPayloadTooLarge, errorResponse{http.StatusRequestEntityTooLarge, app.MsgPayloadTooLarge}},
	{validators.ErrEmptyPayload, errorResponse{http.StatusBadRequest, app.MsgInvalidPayload}},
	{validators.ErrInvalidPayload, errorResponse{http.StatusBadRequest, app.MsgInvalidPayload}},

	{service.ErrStorageUnavailable, errorResponse{http.StatusServiceUnavailable, app.MsgStorageUnavailable}},
}

func responseFromError(err error) errorResponse {
	for _, candidate := range errorResponses {
		if errors.Is(err, candidate.target) {
			return candidate.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

// writeError logs err on the request logger and answers with the mapped
// status and message.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	resp := responseFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if resp.status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Int("status", resp.status).Msg(msg)

	http.Error(w, resp.message, resp.status)
}
