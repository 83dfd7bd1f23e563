package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-engine/internal/storage"
	"github.com/carson-networks/budget-engine/internal/storage/sqlconfig"
)

type CreateCategory struct {
	OwnerID uuid.UUID
	Name    string
	Icon    string
	Color   string

	ID uuid.UUID

	IAction
}

func (c *CreateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	id, err := writer.Categories.Insert(ctx, &sqlconfig.CategoryCreate{
		OwnerID: c.OwnerID,
		Name:    c.Name,
		Icon:    c.Icon,
		Color:   c.Color,
	})
	if err != nil {
		return err
	}
	c.ID = id
	return nil
}
