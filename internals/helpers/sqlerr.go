package helper

import "errors"

// Both postgres drivers expose the SQLSTATE code through this method
// (pgx's PgError and lib/pq's Error); matching on the interface keeps the
// check driver-agnostic.
type sqlStateErr interface {
	SQLState() string
	Error() string
}

// IsUniqueViolation reports whether err is a 23505 unique_violation.
func IsUniqueViolation(err error) bool {
	var pgErr sqlStateErr
	return errors.As(err, &pgErr) && pgErr.SQLState() == "23505"
}
