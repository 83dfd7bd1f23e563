package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/budget-engine/internal/config"
	"github.com/carson-networks/budget-engine/internal/storage/sqlconfig"
)

// Storage is the read side of the datastore plus the entry point for
// transactional writes.
type Storage struct {
	Templates  sqlconfig.ITemplateTable
	Expenses   sqlconfig.IExpenseTable
	Budgets    sqlconfig.IBudgetTable
	Alerts     sqlconfig.IAlertTable
	Categories sqlconfig.ICategoryTable

	// BeginWrite opens a transaction and returns a Writer bound to it.
	BeginWrite func(ctx context.Context) (*Writer, error)

	closer func() error
}

// PostgresURL builds the lib/pq connection string for env.
func PostgresURL(env *config.Config) string {
	return "postgres://" + env.PostgresUsername + ":" +
		env.PostgresPassword + "@" + env.PostgresAddress + ":" +
		env.PostgresPort + "/" + env.PostgresDB + "?sslmode=disable"
}

// NewStorage opens the Postgres database described by env.
func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", PostgresURL(env))
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return NewStorageFromDB(db), nil
}

// NewStorageFromDB wraps an already opened database handle.
func NewStorageFromDB(db *sql.DB) *Storage {
	bdb := bob.NewDB(db)
	return &Storage{
		Templates:  sqlconfig.NewTemplatesTable(bdb),
		Expenses:   sqlconfig.NewExpensesTable(bdb),
		Budgets:    sqlconfig.NewBudgetsTable(bdb),
		Alerts:     sqlconfig.NewAlertsTable(bdb),
		Categories: sqlconfig.NewCategoriesTable(bdb),
		BeginWrite: func(ctx context.Context) (*Writer, error) {
			tx, err := bdb.BeginTx(ctx, nil)
			if err != nil {
				return nil, err
			}
			return NewWriter(tx), nil
		},
		closer: db.Close,
	}
}

// Write starts a transactional Writer.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	if s.BeginWrite == nil {
		return nil, fmt.Errorf("storage is read-only")
	}
	return s.BeginWrite(ctx)
}

// Close releases the underlying database handle, if any.
func (s *Storage) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer()
}
