package category

import "github.com/carson-networks/budget-engine/internal/service"

// Category is the API response model for a spending category.
type Category struct {
	ID    string `json:"id" doc:"Category UUID"`
	Name  string `json:"name" doc:"Category name"`
	Icon  string `json:"icon,omitempty" doc:"Icon name"`
	Color string `json:"color,omitempty" doc:"Hex color, #rrggbb"`
}

func toCategory(c service.Category) Category {
	return Category{
		ID:    c.ID.String(),
		Name:  c.Name,
		Icon:  c.Icon,
		Color: c.Color,
	}
}
