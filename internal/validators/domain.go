package validators

import (
	"context"
	"fmt"
	"regexp"

	"github.com/tidwall/gjson"

	"github.com/MKhiriev/go-study-sync/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldUserID targets the owner of a domain record.
	FieldUserID = "user_id"

	// FieldDomainID targets the remote key of a domain record.
	FieldDomainID = "domain_id"

	// FieldPayload targets the JSON document of a domain record.
	FieldPayload = "payload"

	// FieldLogin targets the login of a user.
	FieldLogin = "login"

	// FieldPassword targets the plaintext password of a user.
	FieldPassword = "password"
)

var domainIDPattern = regexp.MustCompile(`^[a-z][a-z0-9_.-]{0,63}$`)

// DomainValidator implements [Validator] for [models.DomainRecord] and
// the credentials part of [models.User].
type DomainValidator struct {
	maxPayloadBytes int64
}

// NewDomainValidator returns a validator that rejects payloads above
// maxPayloadBytes. A non-positive limit disables the size check.
func NewDomainValidator(maxPayloadBytes int64) Validator {
	return &DomainValidator{maxPayloadBytes: maxPayloadBytes}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted; anything else yields [ErrUnsupportedType].
func (v *DomainValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.DomainRecord:
		return v.validateDomainRecord(ctx, value, fields...)
	case *models.DomainRecord:
		return v.validateDomainRecord(ctx, *value, fields...)

	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateDomainRecord checks UserID, DomainID and Payload by default.
func (v *DomainValidator) validateDomainRecord(_ context.Context, record models.DomainRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldDomainID, FieldPayload}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if record.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldDomainID:
			if !domainIDPattern.MatchString(record.DomainID) {
				return fmt.Errorf("%w: %q", ErrInvalidDomainID, record.DomainID)
			}
		case FieldPayload:
			if record.Payload.IsEmpty() {
				return ErrEmptyPayload
			}
			if v.maxPayloadBytes > 0 && int64(len(record.Payload)) > v.maxPayloadBytes {
				return fmt.Errorf("%w: %d > %d bytes", ErrPayloadTooLarge, len(record.Payload), v.maxPayloadBytes)
			}
			if !gjson.ValidBytes(record.Payload) {
				return ErrInvalidPayload
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DomainValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldLogin:
			if user.Login == "" {
				return ErrEmptyLogin
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
