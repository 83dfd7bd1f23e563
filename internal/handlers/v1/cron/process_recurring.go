package cron

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-engine/internal/handlers/v1/common"
	"github.com/carson-networks/budget-engine/internal/logging"
	"github.com/carson-networks/budget-engine/internal/ratelimit"
	"github.com/carson-networks/budget-engine/internal/recurrence"
)

// ProcessRecurringInput is the Huma input for a scheduler run.
type ProcessRecurringInput struct {
	Authorization string `header:"Authorization" doc:"Bearer <CRON_SECRET>"`
	AsOf          string `query:"asOf" doc:"YYYY-MM-DD run date, defaults to today (UTC)"`
}

// ProcessRecurringOutput is the Huma output for a scheduler run.
type ProcessRecurringOutput struct {
	Body *recurrence.BatchResult
}

// dueProcessor is the interface for materializing due templates.
type dueProcessor interface {
	ProcessDue(ctx context.Context, asOf time.Time) (*recurrence.BatchResult, error)
}

// ProcessRecurringHandler handles GET and POST /v1/cron/process-recurring.
type ProcessRecurringHandler struct {
	Scheduler dueProcessor
	secret    string
	now       func() time.Time
}

// NewProcessRecurringHandler creates a new ProcessRecurringHandler. With an
// empty secret every call is rejected.
func NewProcessRecurringHandler(scheduler dueProcessor, secret string) *ProcessRecurringHandler {
	return &ProcessRecurringHandler{Scheduler: scheduler, secret: secret, now: time.Now}
}

// Register registers the cron endpoint with the Huma API. Hosted cron
// triggers issue GET, so both methods run the same handler.
func (h *ProcessRecurringHandler) Register(api huma.API) {
	for _, method := range []string{http.MethodPost, http.MethodGet} {
		op := huma.Operation{
			OperationID: "process-recurring",
			Method:      method,
			Path:        "/v1/cron/process-recurring",
			Summary:     "Process recurring expenses",
			Description: "Materializes every recurring template due on or before asOf. Called by the external cron.",
			Tags:        []string{"Cron"},
		}
		if method == http.MethodGet {
			op.OperationID = "process-recurring-get"
		}
		ratelimit.Classify(&op, ratelimit.ClassMutation)
		huma.Register(api, op, h.handle)
	}
}

func (h *ProcessRecurringHandler) authorized(header string) bool {
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || h.secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(h.secret)) == 1
}

func (h *ProcessRecurringHandler) handle(ctx context.Context, input *ProcessRecurringInput) (*ProcessRecurringOutput, error) {
	if !h.authorized(input.Authorization) {
		return nil, huma.NewError(http.StatusUnauthorized, "unauthorized")
	}
	asOf, err := common.ParseDate("asOf", input.AsOf)
	if err != nil {
		return nil, err
	}
	if asOf == nil {
		today := recurrence.DateOnly(h.now().UTC())
		asOf = &today
	}

	logData := logging.GetLogData(ctx)
	stopTimer := logData.AddTiming("processDueMs")
	result, err := h.Scheduler.ProcessDue(ctx, *asOf)
	stopTimer()
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to fetch due templates", err)
	}
	logData.AddData("processed", result.Processed)
	logData.AddData("errors", result.Errors)

	return &ProcessRecurringOutput{Body: result}, nil
}
