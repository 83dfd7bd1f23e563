package sqlconfig

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ ICategoryTable = (*CategoriesTable)(nil)

// CategoriesTable provides access to the categories table.
type CategoriesTable struct {
	exec bob.Executor
}

// NewCategoriesTable creates a CategoriesTable over exec.
func NewCategoriesTable(exec bob.Executor) *CategoriesTable {
	return &CategoriesTable{exec: exec}
}

// Insert creates a category and returns its generated ID.
func (t *CategoriesTable) Insert(ctx context.Context, create *CategoryCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into("categories", "owner_id", "name", "icon", "color"),
		im.Values(psql.Arg(create.OwnerID, create.Name, create.Icon, create.Color)),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, translatePqError(err)
	}
	return id, nil
}

func (t *CategoriesTable) List(ctx context.Context, ownerID uuid.UUID) ([]*Category, error) {
	q := psql.Select(
		sm.Columns("id", "owner_id", "name", "icon", "color", "created_at"),
		sm.From("categories"),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
		sm.OrderBy(psql.Quote("name")).Asc(),
		sm.OrderBy(psql.Quote("id")).Asc(),
	)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[Category]())
	if err != nil {
		return nil, err
	}
	result := make([]*Category, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}
