package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Alert represents an alerts record.
type Alert struct {
	ID        uuid.UUID `db:"id"`
	OwnerID   uuid.UUID `db:"owner_id"`
	Kind      string    `db:"kind"`
	Title     string    `db:"title"`
	Message   string    `db:"message"`
	Severity  string    `db:"severity"`
	Read      bool      `db:"read"`
	CreatedAt time.Time `db:"created_at"`
}

// AlertCreate is the input for appending an alert.
type AlertCreate struct {
	OwnerID  uuid.UUID
	Kind     string
	Title    string
	Message  string
	Severity string
}

// IAlertTable defines the storage operations on alerts.
//
//go:generate mockery --name IAlertTable --output . --outpkg sqlconfig --filename mock_IAlertTable.go --inpackage
type IAlertTable interface {
	Insert(ctx context.Context, create *AlertCreate) (uuid.UUID, error)
	// ListByOwner returns the newest alerts first, at most limit rows.
	ListByOwner(ctx context.Context, ownerID uuid.UUID, unreadOnly bool, limit int) ([]*Alert, error)
}
