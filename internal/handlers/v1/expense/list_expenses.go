package expense

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

// ListExpensesInput is the Huma input for listing expenses.
type ListExpensesInput struct {
	OwnerID string `header:"X-Owner-ID" required:"true" doc:"Authenticated owner UUID"`
	From    string `query:"from" doc:"YYYY-MM-DD inclusive lower bound"`
	To      string `query:"to" doc:"YYYY-MM-DD inclusive upper bound"`
}

// ListExpensesResponseBody is the response body for listing expenses.
type ListExpensesResponseBody struct {
	Expenses []Expense `json:"expenses" doc:"Expenses ordered by date, oldest first"`
}

// ListExpensesOutput is the Huma output for listing expenses.
type ListExpensesOutput struct {
	Body ListExpensesResponseBody
}

// expenseLister is the interface for listing expenses.
type expenseLister interface {
	ListExpenses(ctx context.Context, ownerID uuid.UUID, from, to *time.Time) ([]service.Expense, error)
}

// ListExpensesHandler handles GET /v1/expense.
type ListExpensesHandler struct {
	ExpenseService expenseLister
}

// NewListExpensesHandler creates a new ListExpensesHandler.
func NewListExpensesHandler(svc expenseLister) *ListExpensesHandler {
	return &ListExpensesHandler{ExpenseService: svc}
}

// Register registers the list expenses endpoint with the Huma API.
func (h *ListExpensesHandler) Register(api huma.API) {
	op := huma.Operation{
		OperationID: "list-expenses",
		Method:      http.MethodGet,
		Path:        "/v1/expense",
		Summary:     "List expenses",
		Description: "Returns the owner's expenses within an optional date range.",
		Tags:        []string{"Expenses"},
	}
	ratelimit.Classify(&op, ratelimit.ClassRead)
	huma.Register(api, op, h.handle)
}

func (h *ListExpensesHandler) handle(ctx context.Context, input *ListExpensesInput) (*ListExpensesOutput, error) {
	logData := logging.GetLogData(ctx)
	owner, err := common.ParseOwner(input.OwnerID)
	if err != nil {
		return nil, err
	}
	from, err := common.ParseDate("from", input.From)
	if err != nil {
		return nil, err
	}
	to, err := common.ParseDate("to", input.To)
	if err != nil {
		return nil, err
	}

	stopTimer := logData.AddTiming("listExpensesMs")
	expenses, err := h.ExpenseService.ListExpenses(ctx, owner, from, to)
	stopTimer()
	if err != nil {
		return nil, common.ServiceError(err, "failed to list expenses")
	}
	logData.AddData("expenseCount", len(expenses))

	resp := ListExpensesResponseBody{Expenses: make([]Expense, len(expenses))}
	for i, e := range expenses {
		resp.Expenses[i] = Expense{
			ID:           e.ID.String(),
			CategoryID:   e.CategoryID.String(),
			CategoryName: e.CategoryName,
			Amount:       e.Amount.StringFixed(2),
			Description:  e.Description,
			Date:         e.Date.Format(common.DateLayout),
		}
		if e.RecurringTemplateID != nil {
			resp.Expenses[i].RecurringTemplateID = e.RecurringTemplateID.String()
		}
	}

	return &ListExpensesOutput{Body: resp}, nil
}
