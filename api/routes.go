package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-engine/internal/handlers/v1/alert"
	"github.com/carson-networks/budget-engine/internal/handlers/v1/analytics"
	"github.com/carson-networks/budget-engine/internal/handlers/v1/budget"
	"github.com/carson-networks/budget-engine/internal/handlers/v1/category"
	"github.com/carson-networks/budget-engine/internal/handlers/v1/cron"
	"github.com/carson-networks/budget-engine/internal/handlers/v1/expense"
	"github.com/carson-networks/budget-engine/internal/handlers/v1/recurring"
	"github.com/carson-networks/budget-engine/internal/handlers/v1/status"
	"github.com/carson-networks/budget-engine/internal/logging"
	"github.com/carson-networks/budget-engine/internal/operator"
	"github.com/carson-networks/budget-engine/internal/ratelimit"
	"github.com/carson-networks/budget-engine/internal/recurrence"
	"github.com/carson-networks/budget-engine/internal/service"
)

const shutdownTimeout = 15 * time.Second

type Rest struct {
	Logger     *logrus.Logger
	Port       string
	Service    *service.Service
	Operator   *operator.OperatorDelegator
	Scheduler  *recurrence.Scheduler
	Limiter    *ratelimit.Limiter
	CronSecret string
}

// Handler builds the HTTP handler serving /status and the v1 API.
func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler(r.Operator)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	api := humago.New(mux, huma.DefaultConfig("Budget Engine", "1.0.0"))
	api.UseMiddleware(logging.Middleware(r.Logger))
	if r.Limiter != nil {
		api.UseMiddleware(ratelimit.Middleware(api, r.Limiter))
	}

	expense.NewCreateExpenseHandler(r.Service.Expense).Register(api)
	expense.NewListExpensesHandler(r.Service.Expense).Register(api)
	category.NewCreateCategoryHandler(r.Service.Category).Register(api)
	category.NewListCategoriesHandler(r.Service.Category).Register(api)
	budget.NewCreateBudgetHandler(r.Service.Budget).Register(api)
	budget.NewListBudgetsHandler(r.Service.Budget).Register(api)
	budget.NewBudgetStatusHandler(r.Service.Budget).Register(api)
	recurring.NewCreateTemplateHandler(r.Service.Recurring).Register(api)
	recurring.NewListTemplatesHandler(r.Service.Recurring).Register(api)
	recurring.NewUpdateTemplateHandler(r.Service.Recurring).Register(api)
	analytics.NewDetailedHandler(r.Service.Analytics).Register(api)
	alert.NewListAlertsHandler(r.Service.Alert).Register(api)
	cron.NewProcessRecurringHandler(r.Scheduler, r.CronSecret).Register(api)

	return mux
}

// Serve listens until ctx is cancelled, then drains in-flight requests.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	r.Logger.Info("HttpServer.Serve.shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
