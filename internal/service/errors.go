package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrUnauthorizedAccessToDifferentUserData = errors.New("access to another user's data")
	ErrStorageUnavailable                    = errors.New("storage temporarily unavailable")
)

// Client-side errors.
var (
	ErrNoSession        = errors.New("no saved session")
	ErrSessionExpired   = errors.New("saved session is expired")
	ErrRegisterOnServer = errors.New("registration on server failed")
	ErrLoginOnServer    = errors.New("login on server failed")
)
