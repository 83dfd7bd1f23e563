package alert

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-engine/internal/service"
)

type mockAlertService struct {
	mock.Mock
}

func (m *mockAlertService) ListAlerts(ctx context.Context, ownerID uuid.UUID, unreadOnly bool) ([]service.Alert, error) {
	args := m.Called(ctx, ownerID, unreadOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.Alert), args.Error(1)
}

func newTestAPI(t *testing.T, svc *mockAlertService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListAlertsHandler(svc).Register(api)
	return api
}

func TestHTTP_ListAlerts_UnreadOnly(t *testing.T) {
	owner := uuid.Must(uuid.NewV4())
	created := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	svc := new(mockAlertService)
	svc.On("ListAlerts", mock.Anything, owner, true).Return([]service.Alert{
		{ID: uuid.Must(uuid.NewV4()), Kind: "budget_exceeded", Title: "Budget Exceeded", Severity: "warning", CreatedAt: created},
	}, nil)

	resp := newTestAPI(t, svc).Get("/v1/alert?unreadOnly=true", "X-Owner-ID: "+owner.String())

	require.Equal(t, http.StatusOK, resp.Code)
	var body ListAlertsResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Alerts, 1)
	assert.Equal(t, "budget_exceeded", body.Alerts[0].Kind)
	assert.Equal(t, "2024-03-15T10:00:00Z", body.Alerts[0].CreatedAt)
	svc.AssertExpectations(t)
}

func TestHTTP_ListAlerts_StorageError(t *testing.T) {
	svc := new(mockAlertService)
	svc.On("ListAlerts", mock.Anything, mock.Anything, false).Return(nil, errors.New("boom"))

	resp := newTestAPI(t, svc).Get("/v1/alert", "X-Owner-ID: "+uuid.Must(uuid.NewV4()).String())

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
