package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/budget-engine/internal/storage/sqlconfig"
)

// Tx is the transaction a Writer commits or rolls back.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Writer exposes the tables inside one transaction.
type Writer struct {
	tx         Tx
	Templates  sqlconfig.ITemplateTable
	Expenses   sqlconfig.IExpenseTable
	Budgets    sqlconfig.IBudgetTable
	Alerts     sqlconfig.IAlertTable
	Categories sqlconfig.ICategoryTable
}

// NewWriter binds the Postgres tables to tx.
func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx:         tx,
		Templates:  sqlconfig.NewTemplatesTable(tx),
		Expenses:   sqlconfig.NewExpensesTable(tx),
		Budgets:    sqlconfig.NewBudgetsTable(tx),
		Alerts:     sqlconfig.NewAlertsTable(tx),
		Categories: sqlconfig.NewCategoriesTable(tx),
	}
}

// NewWriterWithTables builds a Writer over arbitrary table implementations.
func NewWriterWithTables(
	tx Tx,
	templates sqlconfig.ITemplateTable,
	expenses sqlconfig.IExpenseTable,
	budgets sqlconfig.IBudgetTable,
	alerts sqlconfig.IAlertTable,
	categories sqlconfig.ICategoryTable,
) *Writer {
	return &Writer{
		tx:         tx,
		Templates:  templates,
		Expenses:   expenses,
		Budgets:    budgets,
		Alerts:     alerts,
		Categories: categories,
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
