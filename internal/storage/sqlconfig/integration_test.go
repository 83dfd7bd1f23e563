//go:build integration

package sqlconfig_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/carson-networks/budget-engine/internal/storage"
	"github.com/carson-networks/budget-engine/internal/storage/sqlconfig"
)

func startPostgres(t *testing.T) *storage.Storage {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("budget"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("testpassword"),
		tcpostgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("postgres", connStr)
	require.NoError(t, err)

	log := logrus.New()
	_, _, err = storage.Migrate(db, "file://../../../migrations", log)
	require.NoError(t, err)

	s := storage.NewStorageFromDB(db)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPostgres_TemplateLifecycle(t *testing.T) {
	s := startPostgres(t)
	ctx := context.Background()

	id, err := s.Templates.Insert(ctx, &sqlconfig.TemplateCreate{
		OwnerID:        uuid.Must(uuid.NewV4()),
		CategoryID:     uuid.Must(uuid.NewV4()),
		Amount:         decimal.RequireFromString("12.50"),
		Description:    "Gym",
		Frequency:      "monthly",
		StartDate:      day(2024, 1, 31),
		NextOccurrence: day(2024, 1, 31),
	})
	require.NoError(t, err)

	due, err := s.Templates.FindActiveDue(ctx, day(2024, 1, 31))
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, id, due[0].ID)

	require.NoError(t, s.Templates.AdvanceOccurrence(ctx, id, day(2024, 1, 31), day(2024, 2, 29), day(2024, 1, 31), true))
	err = s.Templates.AdvanceOccurrence(ctx, id, day(2024, 1, 31), day(2024, 2, 29), day(2024, 1, 31), true)
	assert.ErrorIs(t, err, sqlconfig.ErrStaleOccurrence)

	due, err = s.Templates.FindActiveDue(ctx, day(2024, 1, 31))
	require.NoError(t, err)
	assert.Empty(t, due)

	_, err = s.Templates.FindByID(ctx, uuid.Must(uuid.NewV4()))
	assert.ErrorIs(t, err, sqlconfig.ErrNotFound)
}

func TestPostgres_BudgetUniqueness(t *testing.T) {
	s := startPostgres(t)
	ctx := context.Background()

	create := &sqlconfig.BudgetCreate{
		OwnerID:      uuid.Must(uuid.NewV4()),
		CategoryID:   uuid.Must(uuid.NewV4()),
		MonthlyLimit: decimal.NewFromInt(500),
		Month:        6,
		Year:         2024,
	}
	_, err := s.Budgets.Insert(ctx, create)
	require.NoError(t, err)
	_, err = s.Budgets.Insert(ctx, create)
	assert.ErrorIs(t, err, sqlconfig.ErrDuplicate)
}

func TestPostgres_WriterRollback(t *testing.T) {
	s := startPostgres(t)
	ctx := context.Background()
	owner := uuid.Must(uuid.NewV4())
	category := uuid.Must(uuid.NewV4())

	w, err := s.Write(ctx)
	require.NoError(t, err)
	_, err = w.Expenses.Insert(ctx, &sqlconfig.ExpenseCreate{
		OwnerID: owner, CategoryID: category, Amount: decimal.NewFromInt(40), Date: day(2024, 6, 3),
	})
	require.NoError(t, err)
	require.NoError(t, w.Rollback())

	total, err := s.Expenses.SumByCategory(ctx, owner, category, day(2024, 6, 1), day(2024, 6, 30))
	require.NoError(t, err)
	assert.True(t, total.IsZero())

	w, err = s.Write(ctx)
	require.NoError(t, err)
	_, err = w.Expenses.Insert(ctx, &sqlconfig.ExpenseCreate{
		OwnerID: owner, CategoryID: category, Amount: decimal.NewFromInt(40), Date: day(2024, 6, 3),
	})
	require.NoError(t, err)
	require.NoError(t, w.Commit())

	total, err = s.Expenses.SumByCategory(ctx, owner, category, day(2024, 6, 1), day(2024, 6, 30))
	require.NoError(t, err)
	assert.Equal(t, "40.00", total.StringFixed(2))

	rows, err := s.Expenses.List(ctx, &sqlconfig.ExpenseFilter{OwnerID: owner})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "", rows[0].CategoryName)
}

func TestPostgres_CategoriesNameJoins(t *testing.T) {
	s := startPostgres(t)
	ctx := context.Background()
	owner := uuid.Must(uuid.NewV4())

	food, err := s.Categories.Insert(ctx, &sqlconfig.CategoryCreate{OwnerID: owner, Name: "Food", Color: "#00ff00"})
	require.NoError(t, err)
	_, err = s.Categories.Insert(ctx, &sqlconfig.CategoryCreate{OwnerID: owner, Name: "Food"})
	assert.ErrorIs(t, err, sqlconfig.ErrDuplicate)
	_, err = s.Categories.Insert(ctx, &sqlconfig.CategoryCreate{OwnerID: uuid.Must(uuid.NewV4()), Name: "Food"})
	require.NoError(t, err)

	listed, err := s.Categories.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, food, listed[0].ID)
	assert.Equal(t, "#00ff00", listed[0].Color)

	_, err = s.Expenses.Insert(ctx, &sqlconfig.ExpenseCreate{
		OwnerID: owner, CategoryID: food, Amount: decimal.NewFromInt(12), Date: day(2024, 6, 3),
	})
	require.NoError(t, err)
	rows, err := s.Expenses.List(ctx, &sqlconfig.ExpenseFilter{OwnerID: owner})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Food", rows[0].CategoryName)
}

func TestPostgres_FindForUpdateBlocksSecondWriter(t *testing.T) {
	s := startPostgres(t)
	ctx := context.Background()
	owner := uuid.Must(uuid.NewV4())
	category := uuid.Must(uuid.NewV4())

	_, err := s.Budgets.Insert(ctx, &sqlconfig.BudgetCreate{
		OwnerID: owner, CategoryID: category, MonthlyLimit: decimal.NewFromInt(100), Month: 6, Year: 2024,
	})
	require.NoError(t, err)

	first, err := s.Write(ctx)
	require.NoError(t, err)
	_, err = first.Budgets.FindForUpdate(ctx, owner, category, 6, 2024)
	require.NoError(t, err)

	locked := make(chan error, 1)
	go func() {
		second, err := s.Write(ctx)
		if err != nil {
			locked <- err
			return
		}
		defer func() { _ = second.Rollback() }()
		_, err = second.Budgets.FindForUpdate(ctx, owner, category, 6, 2024)
		locked <- err
	}()

	select {
	case err := <-locked:
		t.Fatalf("second FindForUpdate returned before the first writer ended: %v", err)
	case <-time.After(300 * time.Millisecond):
	}

	require.NoError(t, first.Commit())
	select {
	case err := <-locked:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("second FindForUpdate never acquired the lock")
	}
}
