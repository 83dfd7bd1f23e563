package cmd

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carson-networks/budget-engine/internal/config"
	"github.com/carson-networks/budget-engine/internal/storage"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	RunE:  runMigrate,
}

func runMigrate(_ *cobra.Command, _ []string) error {
	log, env, err := loadEnv()
	if err != nil {
		return err
	}
	if env.StorageDriver == config.StorageDriverMemory {
		log.Info("Storage.Migrate.Skipped, memory driver has no schema")
		return nil
	}

	db, err := sql.Open("postgres", storage.PostgresURL(env))
	if err != nil {
		return fmt.Errorf("open postgres: %w", err)
	}
	defer db.Close()

	_, _, err = storage.Migrate(db, env.MigrationsPath, log)
	return err
}
