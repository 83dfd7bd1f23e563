package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/budget-engine/internal/analytics"
	"github.com/carson-networks/budget-engine/internal/recurrence"
	"github.com/carson-networks/budget-engine/internal/storage"
	"github.com/carson-networks/budget-engine/internal/storage/sqlconfig"
)

const maxAnalyticsMonths = 24

// AnalyticsService builds spending reports.
type AnalyticsService struct {
	storage *storage.Storage
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(store *storage.Storage) *AnalyticsService {
	return &AnalyticsService{storage: store}
}

// DetailedReport reads the owner's expenses for the months-long window ending
// on asOf and the budgets for asOf's month, then aggregates them. A zero
// months uses the default window.
func (s *AnalyticsService) DetailedReport(ctx context.Context, ownerID uuid.UUID, months int, asOf time.Time) (*analytics.Report, error) {
	if months == 0 {
		months = analytics.DefaultMonths
	}
	if months < 1 || months > maxAnalyticsMonths {
		return nil, invalidf("months must be between 1 and %d", maxAnalyticsMonths)
	}

	asOf = recurrence.DateOnly(asOf)
	from := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)

	var (
		expenses []*sqlconfig.Expense
		budgets  []*sqlconfig.Budget
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		expenses, err = s.storage.Expenses.List(gctx, &sqlconfig.ExpenseFilter{OwnerID: ownerID, From: &from, To: &asOf})
		return err
	})
	g.Go(func() error {
		var err error
		budgets, err = s.storage.Budgets.List(gctx, ownerID, int(asOf.Month()), asOf.Year())
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, translate(err)
	}

	return analytics.Aggregate(expenses, budgets, analytics.Window{Months: months}, asOf), nil
}
