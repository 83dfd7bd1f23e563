package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-engine/internal/budget"
	"github.com/carson-networks/budget-engine/internal/storage/sqlconfig"
)

// Budget represents a monthly category budget in the service layer.
type Budget struct {
	ID           uuid.UUID
	CategoryID   uuid.UUID
	CategoryName string
	MonthlyLimit decimal.Decimal
	Month        int
	Year         int
	CreatedAt    time.Time
}

// BudgetCreate is the input for creating a budget.
type BudgetCreate struct {
	OwnerID      uuid.UUID
	CategoryID   uuid.UUID
	MonthlyLimit decimal.Decimal
	Month        int
	Year         int
}

// BudgetStatus is a budget together with its month's spending classification.
type BudgetStatus struct {
	Budget
	Classification budget.Classification
}

func budgetFromStorage(row *sqlconfig.Budget) Budget {
	return Budget{
		ID:           row.ID,
		CategoryID:   row.CategoryID,
		CategoryName: row.CategoryName,
		MonthlyLimit: row.MonthlyLimit,
		Month:        row.Month,
		Year:         row.Year,
		CreatedAt:    row.CreatedAt,
	}
}
