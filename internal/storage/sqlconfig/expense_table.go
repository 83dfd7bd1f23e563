package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ IExpenseTable = (*ExpensesTable)(nil)

// ExpensesTable provides access to the expenses table.
type ExpensesTable struct {
	exec bob.Executor
}

// NewExpensesTable creates an ExpensesTable over exec.
func NewExpensesTable(exec bob.Executor) *ExpensesTable {
	return &ExpensesTable{exec: exec}
}

// Insert creates a new expense and returns its generated ID.
func (t *ExpensesTable) Insert(ctx context.Context, create *ExpenseCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into("expenses", "owner_id", "category_id", "amount", "description", "date", "recurring_template_id"),
		im.Values(psql.Arg(create.OwnerID, create.CategoryID, create.Amount, create.Description,
			create.Date, create.RecurringTemplateID)),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, translatePqError(err)
	}
	return id, nil
}

// List returns expenses matching the filter, joined with category names.
func (t *ExpensesTable) List(ctx context.Context, filter *ExpenseFilter) ([]*Expense, error) {
	q := psql.Select(
		sm.Columns(
			psql.Quote("e", "id"), psql.Quote("e", "owner_id"), psql.Quote("e", "category_id"),
			psql.Raw("COALESCE(c.name, '') AS category_name"),
			psql.Quote("e", "amount"), psql.Quote("e", "description"), psql.Quote("e", "date"),
			psql.Quote("e", "recurring_template_id"), psql.Quote("e", "created_at"),
		),
		sm.From("expenses").As("e"),
		sm.LeftJoin("categories").As("c").On(psql.Quote("c", "id").EQ(psql.Quote("e", "category_id"))),
		sm.Where(psql.Quote("e", "owner_id").EQ(psql.Arg(filter.OwnerID))),
		sm.OrderBy(psql.Quote("e", "date")).Asc(),
		sm.OrderBy(psql.Quote("e", "id")).Asc(),
	)
	if filter.CategoryID != nil {
		q.Apply(sm.Where(psql.Quote("e", "category_id").EQ(psql.Arg(*filter.CategoryID))))
	}
	if filter.From != nil {
		q.Apply(sm.Where(psql.Quote("e", "date").GTE(psql.Arg(*filter.From))))
	}
	if filter.To != nil {
		q.Apply(sm.Where(psql.Quote("e", "date").LTE(psql.Arg(*filter.To))))
	}

	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[Expense]())
	if err != nil {
		return nil, err
	}
	result := make([]*Expense, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// SumByCategory totals an owner's expenses in one category between from and to inclusive.
func (t *ExpensesTable) SumByCategory(ctx context.Context, ownerID, categoryID uuid.UUID, from, to time.Time) (decimal.Decimal, error) {
	q := psql.Select(
		sm.Columns(psql.Raw("COALESCE(SUM(amount), 0)")),
		sm.From("expenses"),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
		sm.Where(psql.Quote("category_id").EQ(psql.Arg(categoryID))),
		sm.Where(psql.Quote("date").GTE(psql.Arg(from))),
		sm.Where(psql.Quote("date").LTE(psql.Arg(to))),
	)
	return bob.One(ctx, t.exec, q, scan.SingleColumnMapper[decimal.Decimal])
}
