package shortener

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation = "23505"
	pgCheckViolation  = "23514"

	shortUniqueConstraint = "links_short_unique"
	shortLengthConstraint = "links_short_length"
)

// errShortTaken is returned from inside a transaction when the code about to
// be inserted already exists. Returning it rolls the transaction back.
var errShortTaken = errors.New("short code already taken")

func isPgConstraintViolation(err error, code, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == code && pgErr.ConstraintName == constraint
}

func isShortTaken(err error) bool {
	return errors.Is(err, errShortTaken) ||
		isPgConstraintViolation(err, pgUniqueViolation, shortUniqueConstraint)
}

func isShortLengthViolation(err error) bool {
	return isPgConstraintViolation(err, pgCheckViolation, shortLengthConstraint)
}
