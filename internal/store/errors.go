package store

import "errors"

// Not-found and conflict outcomes callers match with [errors.Is].
var (
	ErrBlobNotFound    = errors.New("no local blob under this key")
	ErrSessionNotFound = errors.New("no saved session")
	ErrInvalidBlobKey  = errors.New("blob key cannot name a shared file")
	ErrDomainNotFound  = errors.New("no stored record for this domain")

	// ErrLoginAlreadyExists maps a unique violation on users.login.
	ErrLoginAlreadyExists = errors.New("login already exists")
	ErrNoUserWasFound     = errors.New("user not found")

	// ErrTransient marks failures worth retrying: lost connections,
	// serialization failures and deadlocks.
	ErrTransient = errors.New("transient database error")
)

// SQL stage failures, wrapped around the driver error.
var (
	ErrBuildingSQLQuery   = errors.New("build sql")
	ErrExecutingQuery     = errors.New("run query")
	ErrExecutingStatement = errors.New("run statement")
	ErrScanningRow        = errors.New("scan row")
	ErrScanningRows       = errors.New("scan rows")
)
