package service

import (
	"context"

	"github.com/carson-networks/budget-engine/internal/budget"
	"github.com/carson-networks/budget-engine/internal/operator/actions"
	"github.com/carson-networks/budget-engine/internal/storage"
)

// ActionProcessor runs a write action inside its own transaction.
type ActionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Expense   *ExpenseService
	Budget    *BudgetService
	Recurring *RecurringService
	Analytics *AnalyticsService
	Alert     *AlertService
	Category  *CategoryService
}

// NewService creates a new Service. Reads go to store; writes go through processor.
func NewService(store *storage.Storage, processor ActionProcessor, policy budget.AlertPolicy) *Service {
	return &Service{
		Expense:   NewExpenseService(store, processor, policy),
		Budget:    NewBudgetService(store, processor),
		Recurring: NewRecurringService(store, processor),
		Analytics: NewAnalyticsService(store),
		Alert:     NewAlertService(store),
		Category:  NewCategoryService(store, processor),
	}
}
