package service

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-engine/internal/storage/sqlconfig"
)

// Category is an owner's spending category in the service layer.
type Category struct {
	ID        uuid.UUID
	Name      string
	Icon      string
	Color     string
	CreatedAt time.Time
}

// CategoryCreate is the input for creating a category.
type CategoryCreate struct {
	OwnerID uuid.UUID
	Name    string
	Icon    string
	Color   string
}

func categoryFromStorage(row *sqlconfig.Category) Category {
	return Category{
		ID:        row.ID,
		Name:      row.Name,
		Icon:      row.Icon,
		Color:     row.Color,
		CreatedAt: row.CreatedAt,
	}
}
