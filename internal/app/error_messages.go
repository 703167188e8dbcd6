// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the plain-text reply bodies the remote store writes on
// failure. The client matches on them to tell apart replies that share a
// status code, so changing a value is a wire change.
package app

// Request shape.
const (
	MsgInvalidDataProvided = "invalid data provided"
	MsgInvalidDomainID     = "invalid domain id"
	MsgInvalidPayload      = "invalid payload"
	MsgPayloadTooLarge     = "payload too large"
)

// Authentication and access.
const (
	MsgInvalidLoginPassword    = "invalid login/password"
	MsgTokenIsExpired          = "token is expired"
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"
	MsgNoUserIDProvided        = "no user ID provided"
	MsgAccessDenied            = "access denied"
	MsgLoginAlreadyExists      = "login already exists"
	MsgRegistrationFailed      = "registration failed"
	MsgLoginFailed             = "login failed"
)

// Storage.
const (
	MsgDomainNotFound      = "domain not found"
	MsgStorageUnavailable  = "storage temporarily unavailable"
	MsgInternalServerError = "internal server error"
)
