package store

import (
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgCode returns the SQLSTATE carried by err, or "" when err did not come
// from the server.
func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isTransientPostgresError reports whether a failed statement may succeed if
// repeated: connection exceptions (class 08), transaction rollbacks such as
// serialization failures and deadlocks (class 40) and 57P03. Constraint,
// data and syntax errors are final.
func isTransientPostgresError(err error) bool {
	if err == nil {
		return false
	}
	if code := pgCode(err); code != "" {
		return pgerrcode.IsConnectionException(code) ||
			pgerrcode.IsTransactionRollback(code) ||
			code == pgerrcode.CannotConnectNow
	}
	return errors.Is(err, driver.ErrBadConn) || pgconn.SafeToRetry(err)
}

// markTransient wraps err with [ErrTransient] when the connection's dialect
// considers it retryable, so services above the store need not know the
// dialect.
func markTransient(db *DB, err error) error {
	if err == nil || db.isTransient == nil || !db.isTransient(err) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrTransient, err)
}
