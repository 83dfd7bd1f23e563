package sqlconfig

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ IBudgetTable = (*BudgetsTable)(nil)

// BudgetsTable provides access to the budgets table.
type BudgetsTable struct {
	exec bob.Executor
}

// NewBudgetsTable creates a BudgetsTable over exec.
func NewBudgetsTable(exec bob.Executor) *BudgetsTable {
	return &BudgetsTable{exec: exec}
}

// Insert creates a budget. A second budget for the same owner, category and month returns ErrDuplicate.
func (t *BudgetsTable) Insert(ctx context.Context, create *BudgetCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into("budgets", "owner_id", "category_id", "monthly_limit", "month", "year"),
		im.Values(psql.Arg(create.OwnerID, create.CategoryID, create.MonthlyLimit, create.Month, create.Year)),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, translatePqError(err)
	}
	return id, nil
}

// Find retrieves the owner's budget for a category and month.
func (t *BudgetsTable) Find(ctx context.Context, ownerID, categoryID uuid.UUID, month, year int) (*Budget, error) {
	return t.find(ctx, ownerID, categoryID, month, year)
}

// FindForUpdate retrieves the budget and locks its row. Only the budgets side
// of the category join is locked.
func (t *BudgetsTable) FindForUpdate(ctx context.Context, ownerID, categoryID uuid.UUID, month, year int) (*Budget, error) {
	return t.find(ctx, ownerID, categoryID, month, year, sm.ForUpdate("b"))
}

func (t *BudgetsTable) find(ctx context.Context, ownerID, categoryID uuid.UUID, month, year int, extra ...bob.Mod[*dialect.SelectQuery]) (*Budget, error) {
	mods := []bob.Mod[*dialect.SelectQuery]{
		sm.Where(psql.Quote("b", "category_id").EQ(psql.Arg(categoryID))),
		sm.Where(psql.Quote("b", "month").EQ(psql.Arg(month))),
		sm.Where(psql.Quote("b", "year").EQ(psql.Arg(year))),
	}
	q := t.query(ownerID, append(mods, extra...)...)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Budget]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// List returns the owner's budgets, optionally narrowed to a month and year.
func (t *BudgetsTable) List(ctx context.Context, ownerID uuid.UUID, month, year int) ([]*Budget, error) {
	var mods []bob.Mod[*dialect.SelectQuery]
	if month > 0 {
		mods = append(mods, sm.Where(psql.Quote("b", "month").EQ(psql.Arg(month))))
	}
	if year > 0 {
		mods = append(mods, sm.Where(psql.Quote("b", "year").EQ(psql.Arg(year))))
	}
	mods = append(mods,
		sm.OrderBy(psql.Quote("b", "year")).Desc(),
		sm.OrderBy(psql.Quote("b", "month")).Desc(),
		sm.OrderBy(psql.Quote("b", "id")).Asc(),
	)

	rows, err := bob.All(ctx, t.exec, t.query(ownerID, mods...), scan.StructMapper[Budget]())
	if err != nil {
		return nil, err
	}
	result := make([]*Budget, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

func (t *BudgetsTable) query(ownerID uuid.UUID, mods ...bob.Mod[*dialect.SelectQuery]) bob.BaseQuery[*dialect.SelectQuery] {
	base := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(
			psql.Quote("b", "id"), psql.Quote("b", "owner_id"), psql.Quote("b", "category_id"),
			psql.Raw("COALESCE(c.name, '') AS category_name"),
			psql.Quote("b", "monthly_limit"), psql.Quote("b", "month"), psql.Quote("b", "year"),
			psql.Quote("b", "created_at"),
		),
		sm.From("budgets").As("b"),
		sm.LeftJoin("categories").As("c").On(psql.Quote("c", "id").EQ(psql.Quote("b", "category_id"))),
		sm.Where(psql.Quote("b", "owner_id").EQ(psql.Arg(ownerID))),
	}
	return psql.Select(append(base, mods...)...)
}
