package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID   = errors.New("invalid user ID")
	ErrInvalidDomainID = errors.New("invalid domain id")
	ErrEmptyPayload    = errors.New("payload is required")
	ErrInvalidPayload  = errors.New("payload is not a JSON document")
	ErrPayloadTooLarge = errors.New("payload exceeds size limit")
	ErrEmptyLogin      = errors.New("login is required")
	ErrEmptyPassword   = errors.New("password is required")
)
