package recurring

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-engine/internal/handlers/v1/common"
	"github.com/carson-networks/budget-engine/internal/logging"
	"github.com/carson-networks/budget-engine/internal/ratelimit"
	"github.com/carson-networks/budget-engine/internal/service"
)

// ListTemplatesInput is the Huma input for listing recurring templates.
type ListTemplatesInput struct {
	OwnerID string `header:"X-Owner-ID" required:"true" doc:"Authenticated owner UUID"`
}

// ListTemplatesResponseBody is the response body for listing recurring templates.
type ListTemplatesResponseBody struct {
	Templates []Template `json:"templates" doc:"Templates ordered by next occurrence"`
}

// ListTemplatesOutput is the Huma output for listing recurring templates.
type ListTemplatesOutput struct {
	Body ListTemplatesResponseBody
}

// templateLister is the interface for listing recurring templates.
type templateLister interface {
	ListTemplates(ctx context.Context, ownerID uuid.UUID) ([]service.RecurringTemplate, error)
}

// ListTemplatesHandler handles GET /v1/recurring.
type ListTemplatesHandler struct {
	RecurringService templateLister
}

// NewListTemplatesHandler creates a new ListTemplatesHandler.
func NewListTemplatesHandler(svc templateLister) *ListTemplatesHandler {
	return &ListTemplatesHandler{RecurringService: svc}
}

// Register registers the list templates endpoint with the Huma API.
func (h *ListTemplatesHandler) Register(api huma.API) {
	op := huma.Operation{
		OperationID: "list-recurring",
		Method:      http.MethodGet,
		Path:        "/v1/recurring",
		Summary:     "List recurring expenses",
		Tags:        []string{"Recurring"},
	}
	ratelimit.Classify(&op, ratelimit.ClassRead)
	huma.Register(api, op, h.handle)
}

func (h *ListTemplatesHandler) handle(ctx context.Context, input *ListTemplatesInput) (*ListTemplatesOutput, error) {
	owner, err := common.ParseOwner(input.OwnerID)
	if err != nil {
		return nil, err
	}

	templates, err := h.RecurringService.ListTemplates(ctx, owner)
	if err != nil {
		return nil, common.ServiceError(err, "failed to list recurring expenses")
	}
	logging.GetLogData(ctx).AddData("templateCount", len(templates))

	resp := ListTemplatesResponseBody{Templates: make([]Template, len(templates))}
	for i, t := range templates {
		resp.Templates[i] = toTemplate(t)
	}
	return &ListTemplatesOutput{Body: resp}, nil
}
