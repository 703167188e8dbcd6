// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-study-sync/internal/adapter"
	"github.com/MKhiriev/go-study-sync/internal/app"
	"github.com/MKhiriev/go-study-sync/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The original error stays in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		if msg == app.MsgInvalidDataProvided {
			return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidLoginPassword:
			return fmt.Errorf("%w: %w", ErrWrongPassword, err)
		case app.MsgTokenIsExpired:
			return fmt.Errorf("%w: %w", ErrTokenIsExpired, err)
		default:
			return fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
		}

	case errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %w", ErrUnauthorizedAccessToDifferentUserData, err)

	case errors.Is(err, adapter.ErrConflict):
		if msg == app.MsgLoginAlreadyExists {
			return fmt.Errorf("%w: %w", store.ErrLoginAlreadyExists, err)
		}

	case errors.Is(err, adapter.ErrBadGateway):
		switch msg {
		case app.MsgRegistrationFailed:
			return fmt.Errorf("%w: %w", ErrRegisterOnServer, err)
		case app.MsgLoginFailed:
			return fmt.Errorf("%w: %w", ErrLoginOnServer, err)
		}
	}

	return err
}

// extractBody returns the response body of an [adapter.HTTPError] or ""
// for any other error.
func extractBody(err error) string {
	var httpErr *adapter.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Body
	}
	return ""
}
