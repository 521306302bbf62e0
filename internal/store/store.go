package store

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Sentinel outcomes the handlers branch on. ErrSlotTaken is the expected
// result of losing the booking race; anything else coming out of an insert
// is a genuine storage failure and must not be dressed up as a conflict.
var (
	ErrDuplicateEmail = errors.New("email already registered")
	ErrSlotTaken      = errors.New("slot already booked")
)

type Store struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

const pgUniqueViolation = "23505"

// uniqueViolation reports whether err is a unique-constraint violation on
// the named constraint. The constraint name matters: an email collision and
// a slot collision map to different HTTP statuses.
func uniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgUniqueViolation && pgErr.ConstraintName == constraint
}
