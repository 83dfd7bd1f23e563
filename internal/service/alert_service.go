package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-engine/internal/storage"
)

const alertListLimit = 50

// Alert represents a stored notification in the service layer.
type Alert struct {
	ID        uuid.UUID
	Kind      string
	Title     string
	Message   string
	Severity  string
	Read      bool
	CreatedAt time.Time
}

// AlertService handles alert reads.
type AlertService struct {
	storage *storage.Storage
}

// NewAlertService creates a new AlertService.
func NewAlertService(store *storage.Storage) *AlertService {
	return &AlertService{storage: store}
}

// ListAlerts returns the owner's most recent alerts, newest first.
func (s *AlertService) ListAlerts(ctx context.Context, ownerID uuid.UUID, unreadOnly bool) ([]Alert, error) {
	rows, err := s.storage.Alerts.ListByOwner(ctx, ownerID, unreadOnly, alertListLimit)
	if err != nil {
		return nil, translate(err)
	}

	alerts := make([]Alert, len(rows))
	for i, row := range rows {
		alerts[i] = Alert{
			ID:        row.ID,
			Kind:      row.Kind,
			Title:     row.Title,
			Message:   row.Message,
			Severity:  row.Severity,
			Read:      row.Read,
			CreatedAt: row.CreatedAt,
		}
	}
	return alerts, nil
}
