package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Budget represents a budgets record joined with its category name.
type Budget struct {
	ID           uuid.UUID       `db:"id"`
	OwnerID      uuid.UUID       `db:"owner_id"`
	CategoryID   uuid.UUID       `db:"category_id"`
	CategoryName string          `db:"category_name"`
	MonthlyLimit decimal.Decimal `db:"monthly_limit"`
	Month        int             `db:"month"`
	Year         int             `db:"year"`
	CreatedAt    time.Time       `db:"created_at"`
}

// BudgetCreate is the input for creating a budget.
type BudgetCreate struct {
	OwnerID      uuid.UUID
	CategoryID   uuid.UUID
	MonthlyLimit decimal.Decimal
	Month        int
	Year         int
}

// IBudgetTable defines the storage operations on budgets.
//
//go:generate mockery --name IBudgetTable --output . --outpkg sqlconfig --filename mock_IBudgetTable.go --inpackage
type IBudgetTable interface {
	// Insert returns ErrDuplicate when (owner, category, month, year) exists.
	Insert(ctx context.Context, create *BudgetCreate) (uuid.UUID, error)
	// Find returns ErrNotFound when the owner has no budget for the category and month.
	Find(ctx context.Context, ownerID, categoryID uuid.UUID, month, year int) (*Budget, error)
	// FindForUpdate is Find holding the budget row lock until the transaction
	// ends, serializing inserts that are evaluated against the same budget.
	FindForUpdate(ctx context.Context, ownerID, categoryID uuid.UUID, month, year int) (*Budget, error)
	// List returns the owner's budgets. Zero month or year matches any.
	List(ctx context.Context, ownerID uuid.UUID, month, year int) ([]*Budget, error)
}
