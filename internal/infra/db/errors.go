package db

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// IsConstraintError reports whether err is a rejection of the submitted
// values (NOT NULL, CHECK, UNIQUE, bad input) rather than a database fault.
func IsConstraintError(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint || sqliteErr.Code == sqlite3.ErrMismatch
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// class 22: data exception, class 23: integrity constraint violation
		return strings.HasPrefix(pgErr.Code, "22") || strings.HasPrefix(pgErr.Code, "23")
	}
	return false
}
