package cmd

import (
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/carson-networks/budget-engine/api"
	"github.com/carson-networks/budget-engine/internal/ratelimit"
	"github.com/carson-networks/budget-engine/internal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long:  "Runs the HTTP API and, when SCHEDULER_ENABLED is set, the daily recurring-expense run.",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.log.Info("budget-engine starting")

	limiter := ratelimit.New(a.env.RateLimits)
	go limiter.Run(ctx, a.env.RateLimitSweep)

	if a.env.SchedulerEnabled {
		go a.scheduler.RunDaily(ctx, time.Now)
	}

	rest := api.Rest{
		Logger:     a.log,
		Port:       a.env.Port,
		Service:    service.NewService(a.store, a.delegator, a.env.AlertPolicy),
		Operator:   a.delegator,
		Scheduler:  a.scheduler,
		Limiter:    limiter,
		CronSecret: a.env.CronSecret,
	}
	return rest.Serve(ctx)
}
