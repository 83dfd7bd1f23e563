package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-engine/internal/budget"
	"github.com/carson-networks/budget-engine/internal/operator/actions"
	"github.com/carson-networks/budget-engine/internal/storage"
	"github.com/carson-networks/budget-engine/internal/storage/sqlconfig"
)

type nopTx struct{}

func (nopTx) Commit(context.Context) error   { return nil }
func (nopTx) Rollback(context.Context) error { return nil }

// writerProcessor performs actions directly against a writer over the mocks.
type writerProcessor struct {
	writer *storage.Writer
	calls  int
}

func (p *writerProcessor) Process(ctx context.Context, action actions.IAction) error {
	p.calls++
	return action.Perform(ctx, p.writer)
}

type testHarness struct {
	svc        *Service
	processor  *writerProcessor
	templates  *sqlconfig.MockITemplateTable
	expenses   *sqlconfig.MockIExpenseTable
	budgets    *sqlconfig.MockIBudgetTable
	alerts     *sqlconfig.MockIAlertTable
	categories *sqlconfig.MockICategoryTable
}

func newTestHarness(t *testing.T) *testHarness {
	t.Helper()
	h := &testHarness{
		templates:  sqlconfig.NewMockITemplateTable(t),
		expenses:   sqlconfig.NewMockIExpenseTable(t),
		budgets:    sqlconfig.NewMockIBudgetTable(t),
		alerts:     sqlconfig.NewMockIAlertTable(t),
		categories: sqlconfig.NewMockICategoryTable(t),
	}
	store := &storage.Storage{
		Templates:  h.templates,
		Expenses:   h.expenses,
		Budgets:    h.budgets,
		Alerts:     h.alerts,
		Categories: h.categories,
	}
	h.processor = &writerProcessor{
		writer: storage.NewWriterWithTables(nopTx{}, h.templates, h.expenses, h.budgets, h.alerts, h.categories),
	}
	h.svc = NewService(store, h.processor, budget.AlertPolicyEdge)
	return h
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
