package sqlconfig

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrNotFound is returned when a lookup by key matches no row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert violates a unique constraint.
	ErrDuplicate = errors.New("record already exists")
	// ErrStaleOccurrence is returned when a template's next occurrence moved
	// between read and conditional update.
	ErrStaleOccurrence = errors.New("next occurrence changed concurrently")
)

const uniqueViolation = "23505"

func translatePqError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return ErrDuplicate
	}
	return err
}
