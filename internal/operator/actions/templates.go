package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-engine/internal/storage"
	"github.com/carson-networks/budget-engine/internal/storage/sqlconfig"
)

type CreateTemplate struct {
	Create sqlconfig.TemplateCreate

	ID uuid.UUID

	IAction
}

func (c *CreateTemplate) Perform(ctx context.Context, writer *storage.Writer) error {
	id, err := writer.Templates.Insert(ctx, &c.Create)
	if err != nil {
		return err
	}
	c.ID = id
	return nil
}

// UpdateTemplate applies a user edit to a template the owner holds. A
// template owned by someone else is reported as not found.
type UpdateTemplate struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Update  sqlconfig.TemplateUpdate

	IAction
}

func (u *UpdateTemplate) Perform(ctx context.Context, writer *storage.Writer) error {
	current, err := writer.Templates.FindByID(ctx, u.ID)
	if err != nil {
		return err
	}
	if current.OwnerID != u.OwnerID {
		return sqlconfig.ErrNotFound
	}
	if u.Update.IsEmpty() {
		return nil
	}
	return writer.Templates.Update(ctx, u.ID, &u.Update)
}

// MaterializeOccurrence appends the expense for one due occurrence and moves
// the template from Prev to Next in the same transaction. The move is
// conditional on the template still being at Prev, so a concurrent run that
// got there first makes this one fail with sqlconfig.ErrStaleOccurrence and
// roll back its expense.
type MaterializeOccurrence struct {
	TemplateID uuid.UUID
	Expense    sqlconfig.ExpenseCreate
	Prev       time.Time
	Next       time.Time
	RunDate    time.Time
	Active     bool

	ExpenseID uuid.UUID

	IAction
}

func (m *MaterializeOccurrence) Perform(ctx context.Context, writer *storage.Writer) error {
	id, err := writer.Expenses.Insert(ctx, &m.Expense)
	if err != nil {
		return err
	}
	if err = writer.Templates.AdvanceOccurrence(ctx, m.TemplateID, m.Prev, m.Next, m.RunDate, m.Active); err != nil {
		return err
	}
	m.ExpenseID = id
	return nil
}

// DeactivateTemplate turns off a template whose end date has passed. The
// next occurrence is left where it is.
type DeactivateTemplate struct {
	TemplateID     uuid.UUID
	NextOccurrence time.Time
	RunDate        time.Time

	IAction
}

func (d *DeactivateTemplate) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Templates.AdvanceOccurrence(ctx, d.TemplateID, d.NextOccurrence, d.NextOccurrence, d.RunDate, false)
}
