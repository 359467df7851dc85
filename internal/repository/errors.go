package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is returned when a record looked up by its key does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrUnknownReference is returned when a link row points at a student,
	// course, program or exchange that does not exist.
	ErrUnknownReference = errors.New("referenced record does not exist")
	// ErrDuplicateEmail is returned when an admin email is already taken.
	ErrDuplicateEmail = errors.New("admin with this email already exists")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translate maps driver errors onto the repository sentinels.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return ErrUnknownReference
	}
	return err
}
