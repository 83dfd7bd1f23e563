package actions

import (
	"context"
	"time"

	"github.com/carson-networks/budget-engine/internal/storage"
)

// IAction is a unit of work the operator performs inside one storage
// transaction. Perform writes only through writer; the operator commits when
// it returns nil and rolls back otherwise. Results are reported on the
// action's own fields.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}

// monthBounds returns the first and last calendar day, at midnight UTC, of
// the month containing date.
func monthBounds(date time.Time) (time.Time, time.Time) {
	year, month, _ := date.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return first, first.AddDate(0, 1, -1)
}
