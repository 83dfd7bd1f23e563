package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-engine/internal/storage"
	"github.com/carson-networks/budget-engine/internal/storage/sqlconfig"
)

type CreateBudget struct {
	OwnerID      uuid.UUID
	CategoryID   uuid.UUID
	MonthlyLimit decimal.Decimal
	Month        int
	Year         int

	ID uuid.UUID

	IAction
}

func (c *CreateBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	id, err := writer.Budgets.Insert(ctx, &sqlconfig.BudgetCreate{
		OwnerID:      c.OwnerID,
		CategoryID:   c.CategoryID,
		MonthlyLimit: c.MonthlyLimit,
		Month:        c.Month,
		Year:         c.Year,
	})
	if err != nil {
		return err
	}
	c.ID = id
	return nil
}
