package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-engine/internal/handlers/v1/common"
	"github.com/carson-networks/budget-engine/internal/logging"
	"github.com/carson-networks/budget-engine/internal/ratelimit"
	"github.com/carson-networks/budget-engine/internal/service"
)

// CreateBudgetBody is the request body for creating a budget.
type CreateBudgetBody struct {
	CategoryID   string `json:"categoryID" required:"true" doc:"Category UUID"`
	MonthlyLimit string `json:"monthlyLimit" required:"true" doc:"Decimal limit, positive and at most 100,000,000"`
	Month        int    `json:"month" required:"true" doc:"Calendar month, 1-12"`
	Year         int    `json:"year" required:"true" doc:"Calendar year, 2020-2100"`
}

// CreateBudgetInput is the Huma input for creating a budget.
type CreateBudgetInput struct {
	OwnerID string `header:"X-Owner-ID" required:"true" doc:"Authenticated owner UUID"`
	Body    CreateBudgetBody
}

// CreateBudgetResponse is the response body for creating a budget.
type CreateBudgetResponse struct {
	ID string `json:"id" doc:"Budget UUID"`
}

// CreateBudgetOutput is the Huma output for creating a budget.
type CreateBudgetOutput struct {
	Body CreateBudgetResponse
}

// budgetCreator is the interface for creating budgets.
type budgetCreator interface {
	CreateBudget(ctx context.Context, create service.BudgetCreate) (uuid.UUID, error)
}

// CreateBudgetHandler handles POST /v1/budget.
type CreateBudgetHandler struct {
	BudgetService budgetCreator
}

// NewCreateBudgetHandler creates a new CreateBudgetHandler.
func NewCreateBudgetHandler(svc budgetCreator) *CreateBudgetHandler {
	return &CreateBudgetHandler{BudgetService: svc}
}

// Register registers the create budget endpoint with the Huma API.
func (h *CreateBudgetHandler) Register(api huma.API) {
	op := huma.Operation{
		OperationID:   "create-budget",
		Method:        http.MethodPost,
		Path:          "/v1/budget",
		Summary:       "Create budget",
		Description:   "Sets a monthly limit for a category. One budget per category and month.",
		Tags:          []string{"Budgets"},
		DefaultStatus: http.StatusCreated,
	}
	ratelimit.Classify(&op, ratelimit.ClassMutation)
	huma.Register(api, op, h.handle)
}

func (h *CreateBudgetHandler) handle(ctx context.Context, input *CreateBudgetInput) (*CreateBudgetOutput, error) {
	owner, err := common.ParseOwner(input.OwnerID)
	if err != nil {
		return nil, err
	}
	categoryID, err := common.ParseID("categoryID", input.Body.CategoryID)
	if err != nil {
		return nil, err
	}
	limit, err := decimal.NewFromString(input.Body.MonthlyLimit)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid monthlyLimit", err)
	}

	stopTimer := logging.GetLogData(ctx).AddTiming("createBudgetMs")
	id, err := h.BudgetService.CreateBudget(ctx, service.BudgetCreate{
		OwnerID:      owner,
		CategoryID:   categoryID,
		MonthlyLimit: limit,
		Month:        input.Body.Month,
		Year:         input.Body.Year,
	})
	stopTimer()
	if err != nil {
		return nil, common.ServiceError(err, "failed to create budget")
	}

	return &CreateBudgetOutput{Body: CreateBudgetResponse{ID: id.String()}}, nil
}
