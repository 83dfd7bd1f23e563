package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// RecurringTemplate represents a recurring_templates record.
type RecurringTemplate struct {
	ID             uuid.UUID       `db:"id"`
	OwnerID        uuid.UUID       `db:"owner_id"`
	CategoryID     uuid.UUID       `db:"category_id"`
	Amount         decimal.Decimal `db:"amount"`
	Description    string          `db:"description"`
	Frequency      string          `db:"frequency"`
	StartDate      time.Time       `db:"start_date"`
	EndDate        *time.Time      `db:"end_date"`
	NextOccurrence time.Time       `db:"next_occurrence"`
	LastRunDate    *time.Time      `db:"last_run_date"`
	Active         bool            `db:"active"`
	CreatedAt      time.Time       `db:"created_at"`
}

// TemplateCreate is the input for creating a recurring template.
type TemplateCreate struct {
	OwnerID        uuid.UUID
	CategoryID     uuid.UUID
	Amount         decimal.Decimal
	Description    string
	Frequency      string
	StartDate      time.Time
	EndDate        *time.Time
	NextOccurrence time.Time
}

// TemplateUpdate carries a user edit. Unset fields are left untouched.
type TemplateUpdate struct {
	CategoryID  omit.Val[uuid.UUID]
	Amount      omit.Val[decimal.Decimal]
	Description omit.Val[string]
	Active      omit.Val[bool]
}

// IsEmpty reports whether no field is set.
func (u *TemplateUpdate) IsEmpty() bool {
	return u.CategoryID.IsUnset() && u.Amount.IsUnset() && u.Description.IsUnset() && u.Active.IsUnset()
}

// ITemplateTable defines the storage operations on recurring templates.
//
//go:generate mockery --name ITemplateTable --output . --outpkg sqlconfig --filename mock_ITemplateTable.go --inpackage
type ITemplateTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RecurringTemplate, error)
	// FindActiveDue returns active templates with next_occurrence <= asOf
	// that have not already run on asOf, oldest occurrence first.
	FindActiveDue(ctx context.Context, asOf time.Time) ([]*RecurringTemplate, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*RecurringTemplate, error)
	Insert(ctx context.Context, create *TemplateCreate) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, update *TemplateUpdate) error
	// AdvanceOccurrence moves next_occurrence from prev to next only if it
	// still equals prev, returning ErrStaleOccurrence otherwise.
	AdvanceOccurrence(ctx context.Context, id uuid.UUID, prev, next, runDate time.Time, active bool) error
}
