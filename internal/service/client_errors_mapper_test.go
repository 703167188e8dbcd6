package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-study-sync/internal/adapter"
	"github.com/MKhiriev/go-study-sync/internal/app"
	"github.com/MKhiriev/go-study-sync/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"bad request", &adapter.HTTPError{StatusCode: 400, Body: app.MsgInvalidDataProvided}, ErrInvalidDataProvided},
		{"wrong password", &adapter.HTTPError{StatusCode: 401, Body: app.MsgInvalidLoginPassword}, ErrWrongPassword},
		{"expired token", &adapter.HTTPError{StatusCode: 401, Body: app.MsgTokenIsExpired}, ErrTokenIsExpired},
		{"invalid token", &adapter.HTTPError{StatusCode: 401}, ErrTokenIsExpiredOrInvalid},
		{"forbidden", &adapter.HTTPError{StatusCode: 403}, ErrUnauthorizedAccessToDifferentUserData},
		{"login taken", &adapter.HTTPError{StatusCode: 409, Body: app.MsgLoginAlreadyExists}, store.ErrLoginAlreadyExists},
		{"register failed", &adapter.HTTPError{StatusCode: 502, Body: app.MsgRegistrationFailed}, ErrRegisterOnServer},
		{"login failed", &adapter.HTTPError{StatusCode: 502, Body: app.MsgLoginFailed}, ErrLoginOnServer},
		{"wrapped", fmt.Errorf("upsert theme: %w", &adapter.HTTPError{StatusCode: 403}), ErrUnauthorizedAccessToDifferentUserData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.err)
			assert.ErrorIs(t, got, tt.want)
			// исходная ошибка остаётся в цепочке
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestMapAdapterError_Passthrough(t *testing.T) {
	assert.NoError(t, mapAdapterError(nil))

	plain := errors.New("dial tcp: connection refused")
	assert.Same(t, plain, mapAdapterError(plain))

	unknownBody := &adapter.HTTPError{StatusCode: 400, Body: "something else"}
	assert.Equal(t, error(unknownBody), mapAdapterError(unknownBody))
}
