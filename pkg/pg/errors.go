package pg

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrEmptyConnectionString   = errors.New("pg: empty connection string, set DATABASE_URL")
	ErrFailedToParseDBConfig   = errors.New("pg: failed to parse db config")
	ErrFailedToOpenConnection  = errors.New("pg: failed to open db connection")
	ErrHealthcheckFailed       = errors.New("pg: connection is not available")
	ErrFailedToApplyMigrations = errors.New("pg: failed to apply migrations")
)

// IsNotFoundError reports whether err is pgx.ErrNoRows.
func IsNotFoundError(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// IsDuplicateKeyError reports a unique constraint violation (SQLSTATE 23505).
func IsDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
