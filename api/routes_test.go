package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-engine/internal/budget"
	"github.com/carson-networks/budget-engine/internal/operator"
	"github.com/carson-networks/budget-engine/internal/ratelimit"
	"github.com/carson-networks/budget-engine/internal/recurrence"
	"github.com/carson-networks/budget-engine/internal/service"
	"github.com/carson-networks/budget-engine/internal/storage/memory"
)

type testServer struct {
	server   *httptest.Server
	db       *memory.DB
	owner    uuid.UUID
	category uuid.UUID
}

func newTestServer(t *testing.T, rules map[ratelimit.Class]ratelimit.Rule) *testServer {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	db := memory.New()
	store := db.Storage()
	delegator := operator.NewOperatorDelegator(store, 2)
	delegator.Start()
	t.Cleanup(delegator.Stop)

	rest := &Rest{
		Logger:     log,
		Service:    service.NewService(store, delegator, budget.AlertPolicyEdge),
		Operator:   delegator,
		Scheduler:  recurrence.NewScheduler(store.Templates, delegator, 2, log),
		Limiter:    ratelimit.New(rules),
		CronSecret: "s3cret",
	}
	server := httptest.NewServer(rest.Handler())
	t.Cleanup(server.Close)

	ts := &testServer{server: server, db: db, owner: uuid.Must(uuid.NewV4())}
	ts.category = ts.createCategory(t, "Housing")
	return ts
}

func (ts *testServer) createCategory(t *testing.T, name string) uuid.UUID {
	t.Helper()
	resp := ts.do(t, http.MethodPost, "/v1/category", map[string]any{"name": name}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created struct {
		ID string `json:"id"`
	}
	decode(t, resp, &created)
	return uuid.Must(uuid.FromString(created.ID))
}

func (ts *testServer) do(t *testing.T, method, path string, body any, headers map[string]string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, ts.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Owner-ID", ts.owner.String())
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decode(t *testing.T, resp *http.Response, into any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(into))
}

func TestStatus(t *testing.T) {
	ts := newTestServer(t, ratelimit.DefaultRules())
	resp := ts.do(t, http.MethodGet, "/status", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRecurringToAnalyticsFlow(t *testing.T) {
	ts := newTestServer(t, ratelimit.DefaultRules())

	resp := ts.do(t, http.MethodPost, "/v1/budget", map[string]any{
		"categoryID": ts.category.String(), "monthlyLimit": "1000", "month": 2, "year": 2024,
	}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = ts.do(t, http.MethodPost, "/v1/recurring", map[string]any{
		"categoryID": ts.category.String(), "amount": "1200", "description": "Rent",
		"frequency": "monthly", "startDate": "2024-01-31",
	}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	for _, asOf := range []string{"2024-01-31", "2024-02-29", "2024-02-29"} {
		resp = ts.do(t, http.MethodPost, "/v1/cron/process-recurring?asOf="+asOf, nil,
			map[string]string{"Authorization": "Bearer s3cret"})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var batch recurrence.BatchResult
		decode(t, resp, &batch)
		assert.Equal(t, 0, batch.Errors, asOf)
	}

	resp = ts.do(t, http.MethodGet, "/v1/expense?from=2024-01-01&to=2024-02-29", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var expenses struct {
		Expenses []struct {
			Description string `json:"description"`
			Date        string `json:"date"`
		} `json:"expenses"`
	}
	decode(t, resp, &expenses)
	require.Len(t, expenses.Expenses, 2)
	assert.Equal(t, "2024-01-31", expenses.Expenses[0].Date)
	assert.Equal(t, "2024-02-29", expenses.Expenses[1].Date)
	assert.Equal(t, "Rent (Recurring)", expenses.Expenses[1].Description)

	resp = ts.do(t, http.MethodGet, "/v1/budget/status?month=2&year=2024", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var status struct {
		Statuses []struct {
			Status string `json:"status"`
		} `json:"statuses"`
	}
	decode(t, resp, &status)
	require.Len(t, status.Statuses, 1)
	assert.Equal(t, "exceeded", status.Statuses[0].Status)

	resp = ts.do(t, http.MethodGet, "/v1/analytics/detailed?months=2&asOf=2024-02-29", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var report struct {
		Summary struct {
			TotalExpenses int    `json:"totalExpenses"`
			TotalSpent    string `json:"totalSpent"`
		} `json:"summary"`
	}
	decode(t, resp, &report)
	assert.Equal(t, 2, report.Summary.TotalExpenses)
	assert.Equal(t, "2400", report.Summary.TotalSpent)
}

func TestCategoriesNameAnalyticsSlices(t *testing.T) {
	ts := newTestServer(t, ratelimit.DefaultRules())
	food := ts.createCategory(t, "Food")
	travel := ts.createCategory(t, "Travel")

	resp := ts.do(t, http.MethodPost, "/v1/category", map[string]any{"name": "Food"}, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = ts.do(t, http.MethodGet, "/v1/category", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var listed struct {
		Categories []struct {
			Name string `json:"name"`
		} `json:"categories"`
	}
	decode(t, resp, &listed)
	require.Len(t, listed.Categories, 3)
	assert.Equal(t, "Food", listed.Categories[0].Name)
	assert.Equal(t, "Housing", listed.Categories[1].Name)
	assert.Equal(t, "Travel", listed.Categories[2].Name)

	for _, e := range []struct {
		category uuid.UUID
		amount   string
	}{{food, "30"}, {travel, "70"}} {
		resp = ts.do(t, http.MethodPost, "/v1/expense", map[string]any{
			"categoryID": e.category.String(), "amount": e.amount, "date": "2024-03-10",
		}, nil)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp = ts.do(t, http.MethodGet, "/v1/analytics/detailed?months=1&asOf=2024-03-31", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var report struct {
		CategoryBreakdown []struct {
			Name  string `json:"name"`
			Value string `json:"value"`
		} `json:"categoryBreakdown"`
	}
	decode(t, resp, &report)
	require.Len(t, report.CategoryBreakdown, 2)
	assert.Equal(t, "Travel", report.CategoryBreakdown[0].Name)
	assert.Equal(t, "70", report.CategoryBreakdown[0].Value)
	assert.Equal(t, "Food", report.CategoryBreakdown[1].Name)
	assert.Equal(t, "30", report.CategoryBreakdown[1].Value)
}

func TestExpenseCrossingBudgetRaisesOneAlert(t *testing.T) {
	ts := newTestServer(t, ratelimit.DefaultRules())
	today := time.Now().UTC()

	resp := ts.do(t, http.MethodPost, "/v1/budget", map[string]any{
		"categoryID": ts.category.String(), "monthlyLimit": "100",
		"month": int(today.Month()), "year": today.Year(),
	}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	for _, amount := range []string{"90", "20", "5"} {
		resp = ts.do(t, http.MethodPost, "/v1/expense", map[string]any{
			"categoryID": ts.category.String(), "amount": amount,
		}, nil)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp = ts.do(t, http.MethodGet, "/v1/alert", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var alerts struct {
		Alerts []struct {
			Kind string `json:"kind"`
		} `json:"alerts"`
	}
	decode(t, resp, &alerts)
	require.Len(t, alerts.Alerts, 1)
	assert.Equal(t, budget.AlertKindBudgetExceeded, alerts.Alerts[0].Kind)
}

func TestRateLimitedRoute(t *testing.T) {
	rules := ratelimit.DefaultRules()
	rules[ratelimit.ClassRead] = ratelimit.Rule{Window: time.Minute, Max: 2}
	ts := newTestServer(t, rules)

	for i := 0; i < 2; i++ {
		resp := ts.do(t, http.MethodGet, "/v1/alert", nil, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp := ts.do(t, http.MethodGet, "/v1/alert", nil, nil)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("Retry-After"))

	resp = ts.do(t, http.MethodPost, "/v1/cron/process-recurring", nil, map[string]string{"Authorization": "Bearer s3cret"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCronRouteSharesMutationLimit(t *testing.T) {
	rules := ratelimit.DefaultRules()
	rules[ratelimit.ClassMutation] = ratelimit.Rule{Window: time.Minute, Max: 2}
	ts := newTestServer(t, rules)
	auth := map[string]string{"Authorization": "Bearer s3cret"}

	resp := ts.do(t, http.MethodGet, "/v1/cron/process-recurring", nil, auth)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = ts.do(t, http.MethodPost, "/v1/cron/process-recurring", nil, auth)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = ts.do(t, http.MethodGet, "/v1/cron/process-recurring", nil, auth)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
}
