// Package pgerr classifies PostgreSQL driver errors shared by repositories.
package pgerr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint hit.
const uniqueViolation = "23505"

// IsUniqueViolation reports whether err is a unique-constraint violation.
// Repositories use it to turn a duplicate insert into a domain conflict.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
