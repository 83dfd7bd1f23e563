package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-engine/internal/storage/sqlconfig"
)

func TestDetailedReport_ReadsWindowAndCurrentBudgets(t *testing.T) {
	h := newTestHarness(t)
	owner := uuid.Must(uuid.NewV4())
	asOf := time.Date(2024, 6, 20, 14, 0, 0, 0, time.UTC)

	h.expenses.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *sqlconfig.ExpenseFilter) bool {
		return f.OwnerID == owner &&
			f.From.Equal(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)) &&
			f.To.Equal(time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC))
	})).Return([]*sqlconfig.Expense{
		{Amount: d("40"), Date: time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), Description: "Groceries", CategoryName: "Food"},
	}, nil)
	h.budgets.EXPECT().List(mock.Anything, owner, 6, 2024).Return(nil, nil)

	report, err := h.svc.Analytics.DetailedReport(context.Background(), owner, 3, asOf)
	require.NoError(t, err)
	assert.Len(t, report.MonthlyTrends, 3)
	assert.Equal(t, 1, report.Summary.TotalExpenses)
	assert.Equal(t, "40", report.Summary.TotalSpent.String())
}

func TestDetailedReport_MonthsOutOfRange(t *testing.T) {
	h := newTestHarness(t)
	for _, months := range []int{-1, 25} {
		_, err := h.svc.Analytics.DetailedReport(context.Background(), uuid.Must(uuid.NewV4()), months, time.Now())
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestDetailedReport_StorageError(t *testing.T) {
	h := newTestHarness(t)

	h.expenses.EXPECT().List(mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))
	h.budgets.EXPECT().List(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Maybe()

	_, err := h.svc.Analytics.DetailedReport(context.Background(), uuid.Must(uuid.NewV4()), 0, time.Now())
	assert.ErrorIs(t, err, ErrStorage)
}

func TestListAlerts_CapsAtFifty(t *testing.T) {
	h := newTestHarness(t)
	owner := uuid.Must(uuid.NewV4())

	h.alerts.EXPECT().ListByOwner(mock.Anything, owner, true, 50).Return([]*sqlconfig.Alert{
		{Title: "Budget Exceeded", Severity: "warning"},
	}, nil)

	alerts, err := h.svc.Alert.ListAlerts(context.Background(), owner, true)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "Budget Exceeded", alerts[0].Title)
}
