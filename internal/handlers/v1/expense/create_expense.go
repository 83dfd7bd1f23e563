package expense

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-engine/internal/handlers/v1/common"
	"github.com/carson-networks/budget-engine/internal/logging"
	"github.com/carson-networks/budget-engine/internal/ratelimit"
	"github.com/carson-networks/budget-engine/internal/service"
)

// CreateExpenseBody is the request body for creating an expense.
type CreateExpenseBody struct {
	CategoryID  string `json:"categoryID" required:"true" doc:"Category UUID"`
	Amount      string `json:"amount" required:"true" doc:"Decimal amount, positive and at most 10,000,000"`
	Description string `json:"description,omitempty" doc:"Free-text description, at most 500 characters"`
	Date        string `json:"date,omitempty" doc:"YYYY-MM-DD expense date, defaults to today (UTC)"`
}

// CreateExpenseInput is the Huma input for creating an expense.
type CreateExpenseInput struct {
	OwnerID string `header:"X-Owner-ID" required:"true" doc:"Authenticated owner UUID"`
	Body    CreateExpenseBody
}

// CreateExpenseResponse is the response body for creating an expense.
type CreateExpenseResponse struct {
	ID           string `json:"id" doc:"Expense UUID"`
	BudgetStatus string `json:"budgetStatus,omitempty" doc:"Budget tier after this expense, absent when the category has no budget"`
	AlertID      string `json:"alertID,omitempty" doc:"UUID of the over-budget alert raised by this expense"`
}

// CreateExpenseOutput is the Huma output for creating an expense.
type CreateExpenseOutput struct {
	Body CreateExpenseResponse
}

// expenseCreator is the interface for creating expenses.
type expenseCreator interface {
	CreateExpense(ctx context.Context, expense service.ExpenseCreate) (*service.ExpenseCreated, error)
}

// CreateExpenseHandler handles POST /v1/expense.
type CreateExpenseHandler struct {
	ExpenseService expenseCreator
	now            func() time.Time
}

// NewCreateExpenseHandler creates a new CreateExpenseHandler.
func NewCreateExpenseHandler(svc expenseCreator) *CreateExpenseHandler {
	return &CreateExpenseHandler{ExpenseService: svc, now: time.Now}
}

// Register registers the create expense endpoint with the Huma API.
func (h *CreateExpenseHandler) Register(api huma.API) {
	op := huma.Operation{
		OperationID:   "create-expense",
		Method:        http.MethodPost,
		Path:          "/v1/expense",
		Summary:       "Create expense",
		Description:   "Records an expense and raises an alert when it pushes the category over its monthly budget.",
		Tags:          []string{"Expenses"},
		DefaultStatus: http.StatusCreated,
	}
	ratelimit.Classify(&op, ratelimit.ClassMutation)
	huma.Register(api, op, h.handle)
}

// parseCreateExpenseInput parses the API input into a service request.
// A missing date means today in UTC.
func parseCreateExpenseInput(input *CreateExpenseInput, now time.Time) (service.ExpenseCreate, error) {
	owner, err := common.ParseOwner(input.OwnerID)
	if err != nil {
		return service.ExpenseCreate{}, err
	}
	categoryID, err := common.ParseID("categoryID", input.Body.CategoryID)
	if err != nil {
		return service.ExpenseCreate{}, err
	}
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return service.ExpenseCreate{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	date, err := common.ParseDate("date", input.Body.Date)
	if err != nil {
		return service.ExpenseCreate{}, err
	}
	if date == nil {
		today := now.UTC()
		date = &today
	}

	return service.ExpenseCreate{
		OwnerID:     owner,
		CategoryID:  categoryID,
		Amount:      amount,
		Description: input.Body.Description,
		Date:        *date,
	}, nil
}

func (h *CreateExpenseHandler) handle(ctx context.Context, input *CreateExpenseInput) (*CreateExpenseOutput, error) {
	logData := logging.GetLogData(ctx)
	create, err := parseCreateExpenseInput(input, h.now())
	if err != nil {
		return nil, err
	}

	stopTimer := logData.AddTiming("createExpenseMs")
	created, err := h.ExpenseService.CreateExpense(ctx, create)
	stopTimer()
	if err != nil {
		return nil, common.ServiceError(err, "failed to create expense")
	}

	resp := CreateExpenseResponse{ID: created.ID.String()}
	if created.Tier != nil {
		resp.BudgetStatus = string(*created.Tier)
		logData.AddData("budgetStatus", resp.BudgetStatus)
	}
	if created.AlertID != nil {
		resp.AlertID = created.AlertID.String()
		logData.AddData("alertRaised", true)
	}

	return &CreateExpenseOutput{Body: resp}, nil
}
