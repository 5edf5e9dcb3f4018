// Package storage tags low-level persistence failures so domain services can
// react to known constraint violations without depending on a driver.
package storage

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

type Kind int

const (
	KindUnknown Kind = iota
	KindUniqueViolation
)

type Error struct {
	Kind       Kind
	Constraint string
	Err        error
}

func (e *Error) Error() string {
	if e.Constraint != "" {
		return fmt.Sprintf("storage: constraint %s: %v", e.Constraint, e.Err)
	}
	return fmt.Sprintf("storage: %v", e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Classify wraps a driver error into a tagged Error. Nil and already
// classified errors are returned unchanged; anything that is not a known
// Postgres condition is tagged KindUnknown.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var tagged *Error
	if errors.As(err, &tagged) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return &Error{Kind: KindUniqueViolation, Constraint: pgErr.ConstraintName, Err: err}
	}

	return &Error{Kind: KindUnknown, Err: err}
}

// IsUniqueViolation reports whether err is a unique violation of the named
// constraint. An empty name matches any unique violation.
func IsUniqueViolation(err error, constraint string) bool {
	var tagged *Error
	if !errors.As(err, &tagged) || tagged.Kind != KindUniqueViolation {
		return false
	}
	return constraint == "" || tagged.Constraint == constraint
}
