// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the remote store protocol.
//
// The primary abstraction is [ServerAdapter], which decouples the sync
// coordinator and the auth service from HTTP. The package ships a resty
// implementation ([NewHTTPServerAdapter]).
//
// Non-2xx responses are returned as [*HTTPError], which matches the status
// sentinels in errors.go via [errors.Is] (e.g. [ErrNotFound] for 404,
// [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-study-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the remote store as seen by the client. Domain calls take
// the bearer token explicitly; the adapter keeps no session state.
type ServerAdapter interface {
	// Register creates an account and returns its access token.
	Register(ctx context.Context, user models.User) (string, error)
	// Login authenticates user and returns a fresh access token.
	Login(ctx context.Context, user models.User) (string, error)
	// RefreshToken exchanges a still valid token for one with a later expiry.
	RefreshToken(ctx context.Context, token string) (string, error)

	// Upsert stores payload as the document of domainID for userID,
	// replacing whatever was stored before.
	Upsert(ctx context.Context, userID int64, domainID string, payload models.Payload, token string) error
	// Fetch returns the stored document of domainID for userID. A missing
	// document is reported as a nil payload and a nil error.
	Fetch(ctx context.Context, userID int64, domainID string, token string) (models.Payload, error)
}
