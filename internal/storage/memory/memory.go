// Package memory is an in-process implementation of the storage tables. It
// backs STORAGE_DRIVER=memory and the end-to-end tests. Write transactions are
// serialized and roll back by restoring a snapshot taken when they began.
package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-engine/internal/storage"
	"github.com/carson-networks/budget-engine/internal/storage/sqlconfig"
)

// Op names a table operation for fault injection.
type Op string

const (
	OpTemplateInsert  Op = "templates.Insert"
	OpTemplateUpdate  Op = "templates.Update"
	OpTemplateAdvance Op = "templates.AdvanceOccurrence"
	OpTemplateDue     Op = "templates.FindActiveDue"
	OpExpenseInsert   Op = "expenses.Insert"
	OpExpenseList     Op = "expenses.List"
	OpBudgetInsert    Op = "budgets.Insert"
	OpCategoryInsert  Op = "categories.Insert"
	OpAlertInsert     Op = "alerts.Insert"
)

// ErrInjected is a convenience error for fault hooks.
var ErrInjected = errors.New("injected storage failure")

// FaultFunc is consulted before each operation. target is the row the
// operation is about: the template ID for template writes and for expenses
// materialized from a template, uuid.Nil otherwise. A non-nil return fails
// the operation.
type FaultFunc func(op Op, target uuid.UUID) error

type state struct {
	categories map[uuid.UUID]sqlconfig.Category
	templates  map[uuid.UUID]sqlconfig.RecurringTemplate
	expenses   []sqlconfig.Expense
	budgets    []sqlconfig.Budget
	alerts     []sqlconfig.Alert
}

func (s *state) clone() *state {
	c := &state{
		categories: make(map[uuid.UUID]sqlconfig.Category, len(s.categories)),
		templates:  make(map[uuid.UUID]sqlconfig.RecurringTemplate, len(s.templates)),
		expenses:   append([]sqlconfig.Expense(nil), s.expenses...),
		budgets:    append([]sqlconfig.Budget(nil), s.budgets...),
		alerts:     append([]sqlconfig.Alert(nil), s.alerts...),
	}
	for k, v := range s.categories {
		c.categories[k] = v
	}
	for k, v := range s.templates {
		c.templates[k] = v
	}
	return c
}

// DB holds all tables in memory.
type DB struct {
	mu      sync.RWMutex
	writeMu sync.Mutex
	data    *state
	fault   FaultFunc
	now     func() time.Time
}

// New returns an empty DB.
func New() *DB {
	return &DB{
		data: &state{
			categories: make(map[uuid.UUID]sqlconfig.Category),
			templates:  make(map[uuid.UUID]sqlconfig.RecurringTemplate),
		},
		now: time.Now,
	}
}

// SetFault installs a fault hook; nil clears it.
func (db *DB) SetFault(f FaultFunc) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.fault = f
}

// SetClock overrides the clock used for created_at stamps.
func (db *DB) SetClock(now func() time.Time) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.now = now
}

// Storage exposes the DB through the storage bundle.
func (db *DB) Storage() *storage.Storage {
	return &storage.Storage{
		Templates:  &templates{db: db},
		Expenses:   &expenses{db: db},
		Budgets:    &budgets{db: db},
		Alerts:     &alerts{db: db},
		Categories: &categories{db: db},
		BeginWrite: db.begin,
	}
}

func (db *DB) begin(ctx context.Context) (*storage.Writer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	db.writeMu.Lock()

	db.mu.RLock()
	snapshot := db.data.clone()
	db.mu.RUnlock()

	return storage.NewWriterWithTables(
		&tx{db: db, snapshot: snapshot},
		&templates{db: db},
		&expenses{db: db},
		&budgets{db: db},
		&alerts{db: db},
		&categories{db: db},
	), nil
}

type tx struct {
	db       *DB
	snapshot *state
	once     sync.Once
}

func (t *tx) Commit(context.Context) error {
	t.once.Do(t.db.writeMu.Unlock)
	return nil
}

func (t *tx) Rollback(context.Context) error {
	t.once.Do(func() {
		t.db.mu.Lock()
		t.db.data = t.snapshot
		t.db.mu.Unlock()
		t.db.writeMu.Unlock()
	})
	return nil
}

// check runs the fault hook. Callers hold db.mu.
func (db *DB) check(op Op, target uuid.UUID) error {
	if db.fault == nil {
		return nil
	}
	return db.fault(op, target)
}

// categoryName resolves the join the Postgres tables do. Callers hold db.mu.
func (db *DB) categoryName(id uuid.UUID) string {
	return db.data.categories[id].Name
}

func newID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}
