package analytics

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	report "github.com/carson-networks/budget-engine/internal/analytics"
	"github.com/carson-networks/budget-engine/internal/handlers/v1/common"
	"github.com/carson-networks/budget-engine/internal/logging"
	"github.com/carson-networks/budget-engine/internal/ratelimit"
)

// DetailedInput is the Huma input for the detailed analytics report.
type DetailedInput struct {
	OwnerID string `header:"X-Owner-ID" required:"true" doc:"Authenticated owner UUID"`
	Months  int    `query:"months" doc:"Window length in months, default 6"`
	AsOf    string `query:"asOf" doc:"YYYY-MM-DD last day of the window, defaults to today (UTC)"`
}

// DetailedOutput is the Huma output for the detailed analytics report.
type DetailedOutput struct {
	Body *report.Report
}

// reportBuilder is the interface for building analytics reports.
type reportBuilder interface {
	DetailedReport(ctx context.Context, ownerID uuid.UUID, months int, asOf time.Time) (*report.Report, error)
}

// DetailedHandler handles GET /v1/analytics/detailed.
type DetailedHandler struct {
	AnalyticsService reportBuilder
	now              func() time.Time
}

// NewDetailedHandler creates a new DetailedHandler.
func NewDetailedHandler(svc reportBuilder) *DetailedHandler {
	return &DetailedHandler{AnalyticsService: svc, now: time.Now}
}

// Register registers the detailed analytics endpoint with the Huma API.
func (h *DetailedHandler) Register(api huma.API) {
	op := huma.Operation{
		OperationID: "analytics-detailed",
		Method:      http.MethodGet,
		Path:        "/v1/analytics/detailed",
		Summary:     "Detailed analytics",
		Description: "Monthly trends, category breakdown, top merchants, budget performance and insights.",
		Tags:        []string{"Analytics"},
	}
	ratelimit.Classify(&op, ratelimit.ClassRead)
	huma.Register(api, op, h.handle)
}

func (h *DetailedHandler) handle(ctx context.Context, input *DetailedInput) (*DetailedOutput, error) {
	logData := logging.GetLogData(ctx)
	owner, err := common.ParseOwner(input.OwnerID)
	if err != nil {
		return nil, err
	}
	asOf, err := common.ParseDate("asOf", input.AsOf)
	if err != nil {
		return nil, err
	}
	if asOf == nil {
		today := h.now().UTC()
		asOf = &today
	}

	stopTimer := logData.AddTiming("analyticsMs")
	r, err := h.AnalyticsService.DetailedReport(ctx, owner, input.Months, *asOf)
	stopTimer()
	if err != nil {
		return nil, common.ServiceError(err, "failed to build analytics")
	}
	logData.AddData("insightCount", len(r.Insights))

	return &DetailedOutput{Body: r}, nil
}
