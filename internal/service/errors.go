package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/carson-networks/budget-engine/internal/storage/sqlconfig"
)

var (
	// ErrInvalidInput is returned when a request fails validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is returned when a record does not exist or belongs to another owner.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a write collides with an existing record.
	ErrConflict = errors.New("conflict")
	// ErrStorage wraps any other datastore failure.
	ErrStorage = errors.New("storage failure")
)

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// translate maps storage errors onto the service taxonomy. Context errors
// pass through unchanged.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrNotFound),
		errors.Is(err, ErrConflict), errors.Is(err, ErrStorage):
		return err
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, sqlconfig.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, sqlconfig.ErrDuplicate), errors.Is(err, sqlconfig.ErrStaleOccurrence):
		return fmt.Errorf("%w: %w", ErrConflict, err)
	default:
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
}
