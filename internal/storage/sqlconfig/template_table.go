package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

const templatesTable = "recurring_templates"

var templateColumns = []any{
	"id", "owner_id", "category_id", "amount", "description", "frequency",
	"start_date", "end_date", "next_occurrence", "last_run_date", "active", "created_at",
}

// Ensure TemplatesTable implements ITemplateTable at compile time.
var _ ITemplateTable = (*TemplatesTable)(nil)

// TemplatesTable provides access to the recurring_templates table.
type TemplatesTable struct {
	exec bob.Executor
}

// NewTemplatesTable creates a TemplatesTable over exec, which may be a DB or a Tx.
func NewTemplatesTable(exec bob.Executor) *TemplatesTable {
	return &TemplatesTable{exec: exec}
}

// FindByID retrieves a template by primary key.
func (t *TemplatesTable) FindByID(ctx context.Context, id uuid.UUID) (*RecurringTemplate, error) {
	q := psql.Select(
		sm.Columns(templateColumns...),
		sm.From(templatesTable),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[RecurringTemplate]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// FindActiveDue returns active templates due on or before asOf that have not run on asOf.
func (t *TemplatesTable) FindActiveDue(ctx context.Context, asOf time.Time) ([]*RecurringTemplate, error) {
	q := psql.Select(
		sm.Columns(templateColumns...),
		sm.From(templatesTable),
		sm.Where(psql.Quote("active").EQ(psql.Arg(true))),
		sm.Where(psql.Quote("next_occurrence").LTE(psql.Arg(asOf))),
		sm.Where(psql.Or(
			psql.Quote("last_run_date").IsNull(),
			psql.Quote("last_run_date").LT(psql.Arg(asOf)),
		)),
		sm.OrderBy(psql.Quote("next_occurrence")).Asc(),
		sm.OrderBy(psql.Quote("id")).Asc(),
	)
	return t.all(ctx, q)
}

// ListByOwner returns an owner's templates ordered by next occurrence.
func (t *TemplatesTable) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*RecurringTemplate, error) {
	q := psql.Select(
		sm.Columns(templateColumns...),
		sm.From(templatesTable),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
		sm.OrderBy(psql.Quote("next_occurrence")).Asc(),
		sm.OrderBy(psql.Quote("id")).Asc(),
	)
	return t.all(ctx, q)
}

// Insert creates a new active template and returns its generated ID.
func (t *TemplatesTable) Insert(ctx context.Context, create *TemplateCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into(templatesTable, "owner_id", "category_id", "amount", "description", "frequency",
			"start_date", "end_date", "next_occurrence", "active"),
		im.Values(psql.Arg(create.OwnerID, create.CategoryID, create.Amount, create.Description,
			create.Frequency, create.StartDate, create.EndDate, create.NextOccurrence, true)),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, translatePqError(err)
	}
	return id, nil
}

// Update applies the set fields of update. An empty update is a no-op.
func (t *TemplatesTable) Update(ctx context.Context, id uuid.UUID, update *TemplateUpdate) error {
	if update == nil || update.IsEmpty() {
		return nil
	}

	mods := []bob.Mod[*dialect.UpdateQuery]{um.Table(templatesTable)}
	if v, ok := update.CategoryID.Get(); ok {
		mods = append(mods, um.SetCol("category_id").ToArg(v))
	}
	if v, ok := update.Amount.Get(); ok {
		mods = append(mods, um.SetCol("amount").ToArg(v))
	}
	if v, ok := update.Description.Get(); ok {
		mods = append(mods, um.SetCol("description").ToArg(v))
	}
	if v, ok := update.Active.Get(); ok {
		mods = append(mods, um.SetCol("active").ToArg(v))
	}
	mods = append(mods, um.Where(psql.Quote("id").EQ(psql.Arg(id))))

	res, err := bob.Exec(ctx, t.exec, psql.Update(mods...))
	if err != nil {
		return err
	}
	return requireRows(res, ErrNotFound)
}

// AdvanceOccurrence conditionally moves next_occurrence from prev to next.
func (t *TemplatesTable) AdvanceOccurrence(ctx context.Context, id uuid.UUID, prev, next, runDate time.Time, active bool) error {
	q := psql.Update(
		um.Table(templatesTable),
		um.SetCol("next_occurrence").ToArg(next),
		um.SetCol("last_run_date").ToArg(runDate),
		um.SetCol("active").ToArg(active),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("next_occurrence").EQ(psql.Arg(prev))),
	)
	res, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return err
	}
	return requireRows(res, ErrStaleOccurrence)
}

func (t *TemplatesTable) all(ctx context.Context, q bob.Query) ([]*RecurringTemplate, error) {
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[RecurringTemplate]())
	if err != nil {
		return nil, err
	}
	result := make([]*RecurringTemplate, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

func requireRows(res sql.Result, notMatched error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notMatched
	}
	return nil
}
