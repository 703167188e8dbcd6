package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidURL is returned when the base address or a request path
	// cannot be turned into a valid URL.
	ErrInvalidURL = errors.New("invalid url")
	// ErrInvalidResponse is returned when a 2xx response cannot be decoded or
	// lacks a required header.
	ErrInvalidResponse = errors.New("invalid response")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrPayloadTooLarge     = errors.New("payload too large")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)

// HTTPError is a non-2xx response of the remote store.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	body := e.Body
	if body == "" {
		body = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, body)
}

// Is lets callers match an HTTPError against the status sentinels, e.g.
// errors.Is(err, ErrNotFound).
func (e *HTTPError) Is(target error) bool {
	sentinel, ok := statusSentinels[e.StatusCode]
	return ok && sentinel == target
}

var statusSentinels = map[int]error{
	http.StatusBadRequest:            ErrBadRequest,
	http.StatusUnauthorized:          ErrUnauthorized,
	http.StatusForbidden:             ErrForbidden,
	http.StatusNotFound:              ErrNotFound,
	http.StatusConflict:              ErrConflict,
	http.StatusRequestEntityTooLarge: ErrPayloadTooLarge,
	http.StatusInternalServerError:   ErrInternalServerError,
	http.StatusBadGateway:            ErrBadGateway,
}
