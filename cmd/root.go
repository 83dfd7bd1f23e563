package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/carson-networks/budget-engine/internal/config"
	"github.com/carson-networks/budget-engine/internal/logging"
	"github.com/carson-networks/budget-engine/internal/operator"
	"github.com/carson-networks/budget-engine/internal/recurrence"
	"github.com/carson-networks/budget-engine/internal/storage"
	"github.com/carson-networks/budget-engine/internal/storage/memory"
)

var rootCmd = &cobra.Command{
	Use:           "budget-engine",
	Short:         "Expense tracking and budgeting service",
	Long:          "Serves the budget API, applies schema migrations and materializes recurring expenses.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("budget-engine exited")
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, processDueCmd)
}

// app is the wiring shared by the commands that touch storage.
type app struct {
	log       *logrus.Logger
	env       *config.Config
	store     *storage.Storage
	delegator *operator.OperatorDelegator
	scheduler *recurrence.Scheduler
}

func loadEnv() (*logrus.Logger, *config.Config, error) {
	log := logging.SetupLogging()
	env, err := config.ProcessEnvironmentVariables()
	if err != nil {
		return nil, nil, fmt.Errorf("config: %w", err)
	}
	if err := logging.SetLevel(log, env.LogLevel); err != nil {
		return nil, nil, err
	}
	return log, env, nil
}

func newApp() (*app, error) {
	log, env, err := loadEnv()
	if err != nil {
		return nil, err
	}

	var store *storage.Storage
	switch env.StorageDriver {
	case config.StorageDriverMemory:
		log.Warn("Storage.Memory.enabled, data is lost on exit")
		store = memory.New().Storage()
	default:
		if store, err = storage.NewStorage(env); err != nil {
			return nil, err
		}
	}

	delegator := operator.NewOperatorDelegator(store, env.OperatorWorkers)
	delegator.Start()

	return &app{
		log:       log,
		env:       env,
		store:     store,
		delegator: delegator,
		scheduler: recurrence.NewScheduler(store.Templates, delegator, env.SchedulerWorkers, log),
	}, nil
}

func (a *app) close() {
	a.delegator.Stop()
	if err := a.store.Close(); err != nil {
		a.log.WithError(err).Warn("Storage.Close.Error")
	}
}
