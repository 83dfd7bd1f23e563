package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Expense represents an expenses record joined with its category name.
type Expense struct {
	ID                  uuid.UUID       `db:"id"`
	OwnerID             uuid.UUID       `db:"owner_id"`
	CategoryID          uuid.UUID       `db:"category_id"`
	CategoryName        string          `db:"category_name"`
	Amount              decimal.Decimal `db:"amount"`
	Description         string          `db:"description"`
	Date                time.Time       `db:"date"`
	RecurringTemplateID *uuid.UUID      `db:"recurring_template_id"`
	CreatedAt           time.Time       `db:"created_at"`
}

// ExpenseCreate is the input for creating an expense.
type ExpenseCreate struct {
	OwnerID             uuid.UUID
	CategoryID          uuid.UUID
	Amount              decimal.Decimal
	Description         string
	Date                time.Time
	RecurringTemplateID *uuid.UUID
}

// ExpenseFilter narrows an expense listing. From and To are inclusive dates.
type ExpenseFilter struct {
	OwnerID    uuid.UUID
	CategoryID *uuid.UUID
	From       *time.Time
	To         *time.Time
}

// IExpenseTable defines the storage operations on expenses.
//
//go:generate mockery --name IExpenseTable --output . --outpkg sqlconfig --filename mock_IExpenseTable.go --inpackage
type IExpenseTable interface {
	Insert(ctx context.Context, create *ExpenseCreate) (uuid.UUID, error)
	// List returns matching expenses ordered by date then id, ascending.
	List(ctx context.Context, filter *ExpenseFilter) ([]*Expense, error)
	SumByCategory(ctx context.Context, ownerID, categoryID uuid.UUID, from, to time.Time) (decimal.Decimal, error)
}
