package service

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-engine/internal/budget"
	"github.com/carson-networks/budget-engine/internal/operator/actions"
	"github.com/carson-networks/budget-engine/internal/storage"
)

// BudgetService handles budget business logic.
type BudgetService struct {
	storage   *storage.Storage
	processor ActionProcessor
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(store *storage.Storage, processor ActionProcessor) *BudgetService {
	return &BudgetService{storage: store, processor: processor}
}

// CreateBudget creates a budget. A second budget for the same category and
// month is a conflict.
func (s *BudgetService) CreateBudget(ctx context.Context, create BudgetCreate) (uuid.UUID, error) {
	if err := validateLimit(create.MonthlyLimit); err != nil {
		return uuid.Nil, err
	}
	if err := validatePeriod(create.Month, create.Year); err != nil {
		return uuid.Nil, err
	}

	action := &actions.CreateBudget{
		OwnerID:      create.OwnerID,
		CategoryID:   create.CategoryID,
		MonthlyLimit: create.MonthlyLimit,
		Month:        create.Month,
		Year:         create.Year,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return uuid.Nil, translate(err)
	}
	return action.ID, nil
}

// ListBudgets returns an owner's budgets, newest month first. A zero month
// or year matches any.
func (s *BudgetService) ListBudgets(ctx context.Context, ownerID uuid.UUID, month, year int) ([]Budget, error) {
	if month != 0 && (month < 1 || month > 12) {
		return nil, invalidf("month must be between 1 and 12")
	}
	if year != 0 && (year < minBudgetYear || year > maxBudgetYear) {
		return nil, invalidf("year must be between %d and %d", minBudgetYear, maxBudgetYear)
	}

	rows, err := s.storage.Budgets.List(ctx, ownerID, month, year)
	if err != nil {
		return nil, translate(err)
	}

	budgets := make([]Budget, len(rows))
	for i, row := range rows {
		budgets[i] = budgetFromStorage(row)
	}
	return budgets, nil
}

// BudgetStatuses classifies every budget the owner holds for month against
// that month's spending in its category.
func (s *BudgetService) BudgetStatuses(ctx context.Context, ownerID uuid.UUID, month, year int) ([]BudgetStatus, error) {
	if err := validatePeriod(month, year); err != nil {
		return nil, err
	}

	rows, err := s.storage.Budgets.List(ctx, ownerID, month, year)
	if err != nil {
		return nil, translate(err)
	}

	first, last := monthRange(month, year)
	statuses := make([]BudgetStatus, 0, len(rows))
	for _, row := range rows {
		spent, err := s.storage.Expenses.SumByCategory(ctx, ownerID, row.CategoryID, first, last)
		if err != nil {
			return nil, translate(err)
		}
		classification, err := budget.Classify(spent, row.MonthlyLimit)
		if errors.Is(err, budget.ErrInvalidBudget) {
			continue
		}
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, BudgetStatus{Budget: budgetFromStorage(row), Classification: classification})
	}
	return statuses, nil
}
