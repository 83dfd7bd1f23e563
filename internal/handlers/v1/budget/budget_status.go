package budget

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-engine/internal/handlers/v1/common"
	"github.com/carson-networks/budget-engine/internal/logging"
	"github.com/carson-networks/budget-engine/internal/ratelimit"
	"github.com/carson-networks/budget-engine/internal/service"
)

// BudgetStatusInput is the Huma input for classifying a month's budgets.
type BudgetStatusInput struct {
	OwnerID string `header:"X-Owner-ID" required:"true" doc:"Authenticated owner UUID"`
	Month   int    `query:"month" doc:"Calendar month, defaults to the current month"`
	Year    int    `query:"year" doc:"Calendar year, defaults to the current year"`
}

// BudgetStatusResponseBody is the response body for budget statuses.
type BudgetStatusResponseBody struct {
	Month    int      `json:"month" doc:"Calendar month"`
	Year     int      `json:"year" doc:"Calendar year"`
	Statuses []Status `json:"statuses" doc:"One entry per budget in the month"`
}

// BudgetStatusOutput is the Huma output for budget statuses.
type BudgetStatusOutput struct {
	Body BudgetStatusResponseBody
}

// budgetClassifier is the interface for classifying budgets.
type budgetClassifier interface {
	BudgetStatuses(ctx context.Context, ownerID uuid.UUID, month, year int) ([]service.BudgetStatus, error)
}

// BudgetStatusHandler handles GET /v1/budget/status.
type BudgetStatusHandler struct {
	BudgetService budgetClassifier
	now           func() time.Time
}

// NewBudgetStatusHandler creates a new BudgetStatusHandler.
func NewBudgetStatusHandler(svc budgetClassifier) *BudgetStatusHandler {
	return &BudgetStatusHandler{BudgetService: svc, now: time.Now}
}

// Register registers the budget status endpoint with the Huma API.
func (h *BudgetStatusHandler) Register(api huma.API) {
	op := huma.Operation{
		OperationID: "budget-status",
		Method:      http.MethodGet,
		Path:        "/v1/budget/status",
		Summary:     "Budget status",
		Description: "Classifies each of the month's budgets against spending in its category.",
		Tags:        []string{"Budgets"},
	}
	ratelimit.Classify(&op, ratelimit.ClassRead)
	huma.Register(api, op, h.handle)
}

func (h *BudgetStatusHandler) handle(ctx context.Context, input *BudgetStatusInput) (*BudgetStatusOutput, error) {
	owner, err := common.ParseOwner(input.OwnerID)
	if err != nil {
		return nil, err
	}
	now := h.now().UTC()
	month, year := input.Month, input.Year
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}

	stopTimer := logging.GetLogData(ctx).AddTiming("budgetStatusMs")
	statuses, err := h.BudgetService.BudgetStatuses(ctx, owner, month, year)
	stopTimer()
	if err != nil {
		return nil, common.ServiceError(err, "failed to classify budgets")
	}

	resp := BudgetStatusResponseBody{Month: month, Year: year, Statuses: make([]Status, len(statuses))}
	for i, s := range statuses {
		c := s.Classification
		resp.Statuses[i] = Status{
			Budget:     toBudget(s.Budget),
			Spent:      c.Spent.StringFixed(2),
			Remaining:  c.Remaining.StringFixed(2),
			Percentage: c.Percentage.StringFixed(2),
			Status:     string(c.Tier),
		}
	}
	return &BudgetStatusOutput{Body: resp}, nil
}
