package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Category represents a categories record.
type Category struct {
	ID        uuid.UUID `db:"id"`
	OwnerID   uuid.UUID `db:"owner_id"`
	Name      string    `db:"name"`
	Icon      string    `db:"icon"`
	Color     string    `db:"color"`
	CreatedAt time.Time `db:"created_at"`
}

// CategoryCreate is the input for creating a category.
type CategoryCreate struct {
	OwnerID uuid.UUID
	Name    string
	Icon    string
	Color   string
}

// ICategoryTable defines the storage operations on categories.
//
//go:generate mockery --name ICategoryTable --output . --outpkg sqlconfig --filename mock_ICategoryTable.go --inpackage
type ICategoryTable interface {
	// Insert returns ErrDuplicate when the owner already has a category with that name.
	Insert(ctx context.Context, create *CategoryCreate) (uuid.UUID, error)
	// List returns the owner's categories ordered by name.
	List(ctx context.Context, ownerID uuid.UUID) ([]*Category, error)
}
