package actions

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-engine/internal/budget"
	"github.com/carson-networks/budget-engine/internal/storage"
	"github.com/carson-networks/budget-engine/internal/storage/sqlconfig"
)

// CreateExpense inserts an expense and, when the category has a budget for
// the expense's month, checks the new monthly total against it and appends
// the alert the policy calls for.
type CreateExpense struct {
	OwnerID     uuid.UUID
	CategoryID  uuid.UUID
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	Policy      budget.AlertPolicy

	// Set by Perform.
	ID         uuid.UUID
	Evaluation *budget.Evaluation
	AlertID    *uuid.UUID

	IAction
}

func (c *CreateExpense) Perform(ctx context.Context, writer *storage.Writer) error {
	id, err := writer.Expenses.Insert(ctx, &sqlconfig.ExpenseCreate{
		OwnerID:     c.OwnerID,
		CategoryID:  c.CategoryID,
		Amount:      c.Amount,
		Description: c.Description,
		Date:        c.Date,
	})
	if err != nil {
		return err
	}
	c.ID = id

	// The budget row lock serializes concurrent inserts into this category and
	// month, so each one sums the others' committed rows and only one of them
	// sees the crossing.
	year, month, _ := c.Date.Date()
	b, err := writer.Budgets.FindForUpdate(ctx, c.OwnerID, c.CategoryID, int(month), year)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	first, last := monthBounds(c.Date)
	total, err := writer.Expenses.SumByCategory(ctx, c.OwnerID, c.CategoryID, first, last)
	if err != nil {
		return err
	}

	eval, err := budget.EvaluateInsert(c.Policy, total, c.Amount, b.MonthlyLimit)
	if errors.Is(err, budget.ErrInvalidBudget) {
		return nil
	}
	if err != nil {
		return err
	}
	c.Evaluation = &eval

	if eval.Alert == nil {
		return nil
	}
	alertID, err := writer.Alerts.Insert(ctx, &sqlconfig.AlertCreate{
		OwnerID:  c.OwnerID,
		Kind:     eval.Alert.Kind,
		Title:    eval.Alert.Title,
		Message:  eval.Alert.Message,
		Severity: eval.Alert.Severity,
	})
	if err != nil {
		return err
	}
	c.AlertID = &alertID
	return nil
}
