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

var _ IAlertTable = (*AlertsTable)(nil)

// AlertsTable provides access to the alerts table.
type AlertsTable struct {
	exec bob.Executor
}

// NewAlertsTable creates an AlertsTable over exec.
func NewAlertsTable(exec bob.Executor) *AlertsTable {
	return &AlertsTable{exec: exec}
}

// Insert appends an unread alert.
func (t *AlertsTable) Insert(ctx context.Context, create *AlertCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into("alerts", "owner_id", "kind", "title", "message", "severity"),
		im.Values(psql.Arg(create.OwnerID, create.Kind, create.Title, create.Message, create.Severity)),
		im.Returning("id"),
	)
	return bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
}

// ListByOwner returns the owner's newest alerts first.
func (t *AlertsTable) ListByOwner(ctx context.Context, ownerID uuid.UUID, unreadOnly bool, limit int) ([]*Alert, error) {
	q := psql.Select(
		sm.Columns("id", "owner_id", "kind", "title", "message", "severity", "read", "created_at"),
		sm.From("alerts"),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
		sm.OrderBy(psql.Quote("created_at")).Desc(),
		sm.OrderBy(psql.Quote("id")).Desc(),
	)
	if unreadOnly {
		q.Apply(sm.Where(psql.Quote("read").EQ(psql.Arg(false))))
	}
	if limit > 0 {
		q.Apply(sm.Limit(limit))
	}

	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[Alert]())
	if err != nil {
		return nil, err
	}
	result := make([]*Alert, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}
