package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	report "github.com/carson-networks/budget-engine/internal/analytics"
	"github.com/carson-networks/budget-engine/internal/service"
)

type mockAnalyticsService struct {
	mock.Mock
}

func (m *mockAnalyticsService) DetailedReport(ctx context.Context, ownerID uuid.UUID, months int, asOf time.Time) (*report.Report, error) {
	args := m.Called(ctx, ownerID, months, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.Report), args.Error(1)
}

func newTestAPI(t *testing.T, svc *mockAnalyticsService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	h := NewDetailedHandler(svc)
	h.now = func() time.Time { return time.Date(2024, 6, 30, 23, 59, 0, 0, time.UTC) }
	h.Register(api)
	return api
}

func TestHTTP_Detailed_DefaultsAsOfToToday(t *testing.T) {
	owner := uuid.Must(uuid.NewV4())

	svc := new(mockAnalyticsService)
	svc.On("DetailedReport", mock.Anything, owner, 0, mock.MatchedBy(func(asOf time.Time) bool {
		return asOf.Year() == 2024 && asOf.Month() == time.June && asOf.Day() == 30
	})).Return(&report.Report{
		MonthlyTrends: []report.MonthlyTrend{{Month: "Jun 2024", Total: decimal.RequireFromString("12.5")}},
		Insights:      []report.Insight{{Type: report.InsightInfo, Title: "Daily Average", Description: "x"}},
		Summary:       report.Summary{TotalExpenses: 1, TotalSpent: decimal.RequireFromString("12.5")},
	}, nil)

	resp := newTestAPI(t, svc).Get("/v1/analytics/detailed", "X-Owner-ID: "+owner.String())

	require.Equal(t, http.StatusOK, resp.Code)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	summary := body["summary"].(map[string]any)
	assert.Equal(t, float64(1), summary["totalExpenses"])
	assert.Len(t, body["monthlyTrends"], 1)
	svc.AssertExpectations(t)
}

func TestHTTP_Detailed_ExplicitWindow(t *testing.T) {
	owner := uuid.Must(uuid.NewV4())

	svc := new(mockAnalyticsService)
	svc.On("DetailedReport", mock.Anything, owner, 3, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)).
		Return(&report.Report{}, nil)

	resp := newTestAPI(t, svc).Get("/v1/analytics/detailed?months=3&asOf=2024-02-29", "X-Owner-ID: "+owner.String())

	assert.Equal(t, http.StatusOK, resp.Code)
	svc.AssertExpectations(t)
}

func TestHTTP_Detailed_InvalidMonths(t *testing.T) {
	svc := new(mockAnalyticsService)
	svc.On("DetailedReport", mock.Anything, mock.Anything, 99, mock.Anything).
		Return(nil, fmt.Errorf("%w: months must be between 1 and 24", service.ErrInvalidInput))

	resp := newTestAPI(t, svc).Get("/v1/analytics/detailed?months=99", "X-Owner-ID: "+uuid.Must(uuid.NewV4()).String())

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
