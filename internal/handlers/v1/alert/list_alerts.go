package alert

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-engine/internal/handlers/v1/common"
	"github.com/carson-networks/budget-engine/internal/ratelimit"
	"github.com/carson-networks/budget-engine/internal/service"
)

// Alert is the API response model for a notification.
type Alert struct {
	ID        string `json:"id" doc:"Alert UUID"`
	Kind      string `json:"kind" doc:"Alert kind, e.g. budget_exceeded"`
	Title     string `json:"title" doc:"Short title"`
	Message   string `json:"message" doc:"Human readable message"`
	Severity  string `json:"severity" doc:"info, warning or error"`
	Read      bool   `json:"read" doc:"Whether the owner has seen it"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
}

// ListAlertsInput is the Huma input for listing alerts.
type ListAlertsInput struct {
	OwnerID    string `header:"X-Owner-ID" required:"true" doc:"Authenticated owner UUID"`
	UnreadOnly bool   `query:"unreadOnly" doc:"Only return unread alerts"`
}

// ListAlertsResponseBody is the response body for listing alerts.
type ListAlertsResponseBody struct {
	Alerts []Alert `json:"alerts" doc:"Most recent alerts, newest first"`
}

// ListAlertsOutput is the Huma output for listing alerts.
type ListAlertsOutput struct {
	Body ListAlertsResponseBody
}

// alertLister is the interface for listing alerts.
type alertLister interface {
	ListAlerts(ctx context.Context, ownerID uuid.UUID, unreadOnly bool) ([]service.Alert, error)
}

// ListAlertsHandler handles GET /v1/alert.
type ListAlertsHandler struct {
	AlertService alertLister
}

// NewListAlertsHandler creates a new ListAlertsHandler.
func NewListAlertsHandler(svc alertLister) *ListAlertsHandler {
	return &ListAlertsHandler{AlertService: svc}
}

// Register registers the list alerts endpoint with the Huma API.
func (h *ListAlertsHandler) Register(api huma.API) {
	op := huma.Operation{
		OperationID: "list-alerts",
		Method:      http.MethodGet,
		Path:        "/v1/alert",
		Summary:     "List alerts",
		Tags:        []string{"Alerts"},
	}
	ratelimit.Classify(&op, ratelimit.ClassRead)
	huma.Register(api, op, h.handle)
}

func (h *ListAlertsHandler) handle(ctx context.Context, input *ListAlertsInput) (*ListAlertsOutput, error) {
	owner, err := common.ParseOwner(input.OwnerID)
	if err != nil {
		return nil, err
	}

	alerts, err := h.AlertService.ListAlerts(ctx, owner, input.UnreadOnly)
	if err != nil {
		return nil, common.ServiceError(err, "failed to list alerts")
	}

	resp := ListAlertsResponseBody{Alerts: make([]Alert, len(alerts))}
	for i, a := range alerts {
		resp.Alerts[i] = Alert{
			ID:        a.ID.String(),
			Kind:      a.Kind,
			Title:     a.Title,
			Message:   a.Message,
			Severity:  a.Severity,
			Read:      a.Read,
			CreatedAt: a.CreatedAt.Format(time.RFC3339),
		}
	}
	return &ListAlertsOutput{Body: resp}, nil
}
