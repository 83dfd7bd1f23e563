package recurring

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-engine/internal/handlers/v1/common"
	"github.com/carson-networks/budget-engine/internal/ratelimit"
	"github.com/carson-networks/budget-engine/internal/service"
)

// CreateTemplateBody is the request body for creating a recurring template.
type CreateTemplateBody struct {
	CategoryID  string `json:"categoryID" required:"true" doc:"Category UUID"`
	Amount      string `json:"amount" required:"true" doc:"Decimal amount, positive and at most 10,000,000"`
	Description string `json:"description,omitempty" doc:"Description, at most 500 characters"`
	Frequency   string `json:"frequency" required:"true" enum:"daily,weekly,monthly,yearly" doc:"Repeat period"`
	StartDate   string `json:"startDate" required:"true" doc:"YYYY-MM-DD first occurrence"`
	EndDate     string `json:"endDate,omitempty" doc:"YYYY-MM-DD last possible occurrence"`
}

// CreateTemplateInput is the Huma input for creating a recurring template.
type CreateTemplateInput struct {
	OwnerID string `header:"X-Owner-ID" required:"true" doc:"Authenticated owner UUID"`
	Body    CreateTemplateBody
}

// CreateTemplateResponse is the response body for creating a recurring template.
type CreateTemplateResponse struct {
	ID string `json:"id" doc:"Template UUID"`
}

// CreateTemplateOutput is the Huma output for creating a recurring template.
type CreateTemplateOutput struct {
	Body CreateTemplateResponse
}

// templateCreator is the interface for creating recurring templates.
type templateCreator interface {
	CreateTemplate(ctx context.Context, create service.TemplateCreate) (uuid.UUID, error)
}

// CreateTemplateHandler handles POST /v1/recurring.
type CreateTemplateHandler struct {
	RecurringService templateCreator
}

// NewCreateTemplateHandler creates a new CreateTemplateHandler.
func NewCreateTemplateHandler(svc templateCreator) *CreateTemplateHandler {
	return &CreateTemplateHandler{RecurringService: svc}
}

// Register registers the create template endpoint with the Huma API.
func (h *CreateTemplateHandler) Register(api huma.API) {
	op := huma.Operation{
		OperationID:   "create-recurring",
		Method:        http.MethodPost,
		Path:          "/v1/recurring",
		Summary:       "Create recurring expense",
		Description:   "Creates an active template whose first occurrence is its start date.",
		Tags:          []string{"Recurring"},
		DefaultStatus: http.StatusCreated,
	}
	ratelimit.Classify(&op, ratelimit.ClassMutation)
	huma.Register(api, op, h.handle)
}

func parseCreateTemplateInput(input *CreateTemplateInput) (service.TemplateCreate, error) {
	owner, err := common.ParseOwner(input.OwnerID)
	if err != nil {
		return service.TemplateCreate{}, err
	}
	categoryID, err := common.ParseID("categoryID", input.Body.CategoryID)
	if err != nil {
		return service.TemplateCreate{}, err
	}
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return service.TemplateCreate{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	start, err := common.ParseDate("startDate", input.Body.StartDate)
	if err != nil {
		return service.TemplateCreate{}, err
	}
	if start == nil {
		return service.TemplateCreate{}, huma.NewError(http.StatusBadRequest, "startDate is required")
	}
	end, err := common.ParseDate("endDate", input.Body.EndDate)
	if err != nil {
		return service.TemplateCreate{}, err
	}

	return service.TemplateCreate{
		OwnerID:     owner,
		CategoryID:  categoryID,
		Amount:      amount,
		Description: input.Body.Description,
		Frequency:   input.Body.Frequency,
		StartDate:   *start,
		EndDate:     end,
	}, nil
}

func (h *CreateTemplateHandler) handle(ctx context.Context, input *CreateTemplateInput) (*CreateTemplateOutput, error) {
	create, err := parseCreateTemplateInput(input)
	if err != nil {
		return nil, err
	}

	id, err := h.RecurringService.CreateTemplate(ctx, create)
	if err != nil {
		return nil, common.ServiceError(err, "failed to create recurring expense")
	}

	return &CreateTemplateOutput{Body: CreateTemplateResponse{ID: id.String()}}, nil
}
