package budget

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

// ListBudgetsInput is the Huma input for listing budgets.
type ListBudgetsInput struct {
	OwnerID string `header:"X-Owner-ID" required:"true" doc:"Authenticated owner UUID"`
	Month   int    `query:"month" doc:"Calendar month filter, omit for any"`
	Year    int    `query:"year" doc:"Calendar year filter, omit for any"`
}

// ListBudgetsResponseBody is the response body for listing budgets.
type ListBudgetsResponseBody struct {
	Budgets []Budget `json:"budgets" doc:"Budgets, newest month first"`
}

// ListBudgetsOutput is the Huma output for listing budgets.
type ListBudgetsOutput struct {
	Body ListBudgetsResponseBody
}

// budgetLister is the interface for listing budgets.
type budgetLister interface {
	ListBudgets(ctx context.Context, ownerID uuid.UUID, month, year int) ([]service.Budget, error)
}

// ListBudgetsHandler handles GET /v1/budget.
type ListBudgetsHandler struct {
	BudgetService budgetLister
}

// NewListBudgetsHandler creates a new ListBudgetsHandler.
func NewListBudgetsHandler(svc budgetLister) *ListBudgetsHandler {
	return &ListBudgetsHandler{BudgetService: svc}
}

// Register registers the list budgets endpoint with the Huma API.
func (h *ListBudgetsHandler) Register(api huma.API) {
	op := huma.Operation{
		OperationID: "list-budgets",
		Method:      http.MethodGet,
		Path:        "/v1/budget",
		Summary:     "List budgets",
		Description: "Returns the owner's budgets, optionally for one month or year.",
		Tags:        []string{"Budgets"},
	}
	ratelimit.Classify(&op, ratelimit.ClassRead)
	huma.Register(api, op, h.handle)
}

func (h *ListBudgetsHandler) handle(ctx context.Context, input *ListBudgetsInput) (*ListBudgetsOutput, error) {
	owner, err := common.ParseOwner(input.OwnerID)
	if err != nil {
		return nil, err
	}

	budgets, err := h.BudgetService.ListBudgets(ctx, owner, input.Month, input.Year)
	if err != nil {
		return nil, common.ServiceError(err, "failed to list budgets")
	}
	logging.GetLogData(ctx).AddData("budgetCount", len(budgets))

	resp := ListBudgetsResponseBody{Budgets: make([]Budget, len(budgets))}
	for i, b := range budgets {
		resp.Budgets[i] = toBudget(b)
	}
	return &ListBudgetsOutput{Body: resp}, nil
}

func toBudget(b service.Budget) Budget {
	return Budget{
		ID:           b.ID.String(),
		CategoryID:   b.CategoryID.String(),
		CategoryName: b.CategoryName,
		MonthlyLimit: b.MonthlyLimit.StringFixed(2),
		Month:        b.Month,
		Year:         b.Year,
	}
}
