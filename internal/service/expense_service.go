package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-engine/internal/budget"
	"github.com/carson-networks/budget-engine/internal/operator/actions"
	"github.com/carson-networks/budget-engine/internal/recurrence"
	"github.com/carson-networks/budget-engine/internal/storage"
	"github.com/carson-networks/budget-engine/internal/storage/sqlconfig"
)

// ExpenseService handles expense business logic.
type ExpenseService struct {
	storage   *storage.Storage
	processor ActionProcessor
	policy    budget.AlertPolicy
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(store *storage.Storage, processor ActionProcessor, policy budget.AlertPolicy) *ExpenseService {
	return &ExpenseService{storage: store, processor: processor, policy: policy}
}

// CreateExpense records an expense and checks its month against the
// category budget in the same transaction.
func (s *ExpenseService) CreateExpense(ctx context.Context, expense ExpenseCreate) (*ExpenseCreated, error) {
	if err := validateAmount(expense.Amount); err != nil {
		return nil, err
	}
	if err := validateDescription(expense.Description); err != nil {
		return nil, err
	}
	if expense.Date.IsZero() {
		return nil, invalidf("date is required")
	}

	action := &actions.CreateExpense{
		OwnerID:     expense.OwnerID,
		CategoryID:  expense.CategoryID,
		Amount:      expense.Amount,
		Description: expense.Description,
		Date:        recurrence.DateOnly(expense.Date),
		Policy:      s.policy,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, translate(err)
	}

	created := &ExpenseCreated{ID: action.ID, AlertID: action.AlertID}
	if action.Evaluation != nil {
		tier := action.Evaluation.After.Tier
		created.Tier = &tier
	}
	return created, nil
}

// ListExpenses returns an owner's expenses between from and to inclusive,
// oldest first. Either bound may be nil.
func (s *ExpenseService) ListExpenses(ctx context.Context, ownerID uuid.UUID, from, to *time.Time) ([]Expense, error) {
	filter := &sqlconfig.ExpenseFilter{OwnerID: ownerID}
	if from != nil {
		f := recurrence.DateOnly(*from)
		filter.From = &f
	}
	if to != nil {
		t := recurrence.DateOnly(*to)
		filter.To = &t
	}
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return nil, invalidf("to must not be before from")
	}

	rows, err := s.storage.Expenses.List(ctx, filter)
	if err != nil {
		return nil, translate(err)
	}

	expenses := make([]Expense, len(rows))
	for i, row := range rows {
		expenses[i] = expenseFromStorage(row)
	}
	return expenses, nil
}
