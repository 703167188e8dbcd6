// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Bearer header and path parameter failures reported by the auth middleware.
var (
	ErrEmptyAuthorizationHeader   = errors.New("request has no Authorization header")
	ErrInvalidAuthorizationHeader = errors.New("Authorization header is not a bearer token")
	ErrEmptyToken                 = errors.New("bearer token is empty")
	ErrInvalidUserIDParam         = errors.New("user id path segment is not a positive integer")
)
