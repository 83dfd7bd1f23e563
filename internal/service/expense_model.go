package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-engine/internal/budget"
	"github.com/carson-networks/budget-engine/internal/storage/sqlconfig"
)

// Expense represents an expense in the service layer.
type Expense struct {
	ID                  uuid.UUID
	CategoryID          uuid.UUID
	CategoryName        string
	Amount              decimal.Decimal
	Description         string
	Date                time.Time
	RecurringTemplateID *uuid.UUID
	CreatedAt           time.Time
}

// ExpenseCreate is the input for recording a one-off expense.
type ExpenseCreate struct {
	OwnerID     uuid.UUID
	CategoryID  uuid.UUID
	Amount      decimal.Decimal
	Description string
	Date        time.Time
}

// ExpenseCreated reports the new expense and, when the category is budgeted
// for the month, where the month now stands.
type ExpenseCreated struct {
	ID      uuid.UUID
	Tier    *budget.Tier
	AlertID *uuid.UUID
}

func expenseFromStorage(row *sqlconfig.Expense) Expense {
	return Expense{
		ID:                  row.ID,
		CategoryID:          row.CategoryID,
		CategoryName:        row.CategoryName,
		Amount:              row.Amount,
		Description:         row.Description,
		Date:                row.Date,
		RecurringTemplateID: row.RecurringTemplateID,
		CreatedAt:           row.CreatedAt,
	}
}
