package memory

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-engine/internal/storage/sqlconfig"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWriter_RollbackRestoresSnapshot(t *testing.T) {
	ctx := context.Background()
	db := New()
	s := db.Storage()
	owner := uuid.Must(uuid.NewV4())

	w, err := s.Write(ctx)
	require.NoError(t, err)
	_, err = w.Expenses.Insert(ctx, &sqlconfig.ExpenseCreate{OwnerID: owner, Amount: decimal.NewFromInt(5), Date: date(2024, 1, 1)})
	require.NoError(t, err)
	require.NoError(t, w.Rollback())

	rows, err := s.Expenses.List(ctx, &sqlconfig.ExpenseFilter{OwnerID: owner})
	require.NoError(t, err)
	assert.Empty(t, rows)

	w, err = s.Write(ctx)
	require.NoError(t, err)
	_, err = w.Expenses.Insert(ctx, &sqlconfig.ExpenseCreate{OwnerID: owner, Amount: decimal.NewFromInt(5), Date: date(2024, 1, 1)})
	require.NoError(t, err)
	require.NoError(t, w.Commit())
	require.NoError(t, w.Rollback())

	rows, err = s.Expenses.List(ctx, &sqlconfig.ExpenseFilter{OwnerID: owner})
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestBudgets_DuplicateAndFind(t *testing.T) {
	ctx := context.Background()
	db := New()
	s := db.Storage()
	owner := uuid.Must(uuid.NewV4())
	category, err := s.Categories.Insert(ctx, &sqlconfig.CategoryCreate{OwnerID: owner, Name: "Food"})
	require.NoError(t, err)

	create := &sqlconfig.BudgetCreate{OwnerID: owner, CategoryID: category, MonthlyLimit: decimal.NewFromInt(100), Month: 3, Year: 2024}
	_, err = s.Budgets.Insert(ctx, create)
	require.NoError(t, err)
	_, err = s.Budgets.Insert(ctx, create)
	assert.ErrorIs(t, err, sqlconfig.ErrDuplicate)

	found, err := s.Budgets.Find(ctx, owner, category, 3, 2024)
	require.NoError(t, err)
	assert.Equal(t, "Food", found.CategoryName)

	locked, err := s.Budgets.FindForUpdate(ctx, owner, category, 3, 2024)
	require.NoError(t, err)
	assert.Equal(t, found.ID, locked.ID)

	_, err = s.Budgets.Find(ctx, owner, category, 4, 2024)
	assert.ErrorIs(t, err, sqlconfig.ErrNotFound)
}

func TestTemplates_AdvanceIsConditional(t *testing.T) {
	ctx := context.Background()
	s := New().Storage()

	id, err := s.Templates.Insert(ctx, &sqlconfig.TemplateCreate{
		Amount:         decimal.NewFromInt(10),
		Frequency:      "monthly",
		StartDate:      date(2024, 1, 31),
		NextOccurrence: date(2024, 1, 31),
	})
	require.NoError(t, err)

	require.NoError(t, s.Templates.AdvanceOccurrence(ctx, id, date(2024, 1, 31), date(2024, 2, 29), date(2024, 1, 31), true))
	err = s.Templates.AdvanceOccurrence(ctx, id, date(2024, 1, 31), date(2024, 2, 29), date(2024, 1, 31), true)
	assert.ErrorIs(t, err, sqlconfig.ErrStaleOccurrence)

	due, err := s.Templates.FindActiveDue(ctx, date(2024, 2, 29))
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, date(2024, 1, 31), *due[0].LastRunDate)
}

func TestTemplates_FindActiveDueSkipsRunToday(t *testing.T) {
	ctx := context.Background()
	s := New().Storage()

	id, err := s.Templates.Insert(ctx, &sqlconfig.TemplateCreate{
		Amount:         decimal.NewFromInt(10),
		Frequency:      "daily",
		StartDate:      date(2024, 1, 1),
		NextOccurrence: date(2024, 1, 1),
	})
	require.NoError(t, err)

	asOf := date(2024, 1, 10)
	require.NoError(t, s.Templates.AdvanceOccurrence(ctx, id, date(2024, 1, 1), date(2024, 1, 2), asOf, true))

	due, err := s.Templates.FindActiveDue(ctx, asOf)
	require.NoError(t, err)
	assert.Empty(t, due)

	due, err = s.Templates.FindActiveDue(ctx, asOf.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Len(t, due, 1)
}

func TestFaultInjection(t *testing.T) {
	ctx := context.Background()
	db := New()
	s := db.Storage()
	target := uuid.Must(uuid.NewV4())

	db.SetFault(func(op Op, id uuid.UUID) error {
		if op == OpExpenseInsert && id == target {
			return ErrInjected
		}
		return nil
	})

	_, err := s.Expenses.Insert(ctx, &sqlconfig.ExpenseCreate{RecurringTemplateID: &target})
	assert.ErrorIs(t, err, ErrInjected)
	_, err = s.Expenses.Insert(ctx, &sqlconfig.ExpenseCreate{})
	assert.NoError(t, err)
}

func TestAlerts_NewestFirstWithLimit(t *testing.T) {
	ctx := context.Background()
	s := New().Storage()
	owner := uuid.Must(uuid.NewV4())

	for _, title := range []string{"a", "b", "c"} {
		_, err := s.Alerts.Insert(ctx, &sqlconfig.AlertCreate{OwnerID: owner, Title: title})
		require.NoError(t, err)
	}

	rows, err := s.Alerts.ListByOwner(ctx, owner, true, 2)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "c", rows[0].Title)
	assert.Equal(t, "b", rows[1].Title)
}

func TestCategories_InsertListAndJoin(t *testing.T) {
	ctx := context.Background()
	s := New().Storage()
	owner := uuid.Must(uuid.NewV4())

	rent, err := s.Categories.Insert(ctx, &sqlconfig.CategoryCreate{OwnerID: owner, Name: "Rent", Color: "#112233"})
	require.NoError(t, err)
	food, err := s.Categories.Insert(ctx, &sqlconfig.CategoryCreate{OwnerID: owner, Name: "Food", Icon: "utensils"})
	require.NoError(t, err)
	_, err = s.Categories.Insert(ctx, &sqlconfig.CategoryCreate{OwnerID: uuid.Must(uuid.NewV4()), Name: "Food"})
	require.NoError(t, err)

	_, err = s.Categories.Insert(ctx, &sqlconfig.CategoryCreate{OwnerID: owner, Name: "Food"})
	assert.ErrorIs(t, err, sqlconfig.ErrDuplicate)

	rows, err := s.Categories.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Food", rows[0].Name)
	assert.Equal(t, "utensils", rows[0].Icon)
	assert.Equal(t, "Rent", rows[1].Name)
	assert.Equal(t, "#112233", rows[1].Color)

	for _, c := range []uuid.UUID{rent, food} {
		_, err = s.Expenses.Insert(ctx, &sqlconfig.ExpenseCreate{OwnerID: owner, CategoryID: c, Amount: decimal.NewFromInt(5), Date: date(2024, 1, 1)})
		require.NoError(t, err)
	}
	expenses, err := s.Expenses.List(ctx, &sqlconfig.ExpenseFilter{OwnerID: owner})
	require.NoError(t, err)
	names := []string{expenses[0].CategoryName, expenses[1].CategoryName}
	assert.ElementsMatch(t, []string{"Rent", "Food"}, names)
}
