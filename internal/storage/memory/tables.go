package memory

import (
	"context"
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-engine/internal/storage/sqlconfig"
)

type templates struct{ db *DB }

func (t *templates) FindByID(_ context.Context, id uuid.UUID) (*sqlconfig.RecurringTemplate, error) {
	t.db.mu.RLock()
	defer t.db.mu.RUnlock()
	row, ok := t.db.data.templates[id]
	if !ok {
		return nil, sqlconfig.ErrNotFound
	}
	return &row, nil
}

func (t *templates) FindActiveDue(_ context.Context, asOf time.Time) ([]*sqlconfig.RecurringTemplate, error) {
	t.db.mu.RLock()
	defer t.db.mu.RUnlock()
	if err := t.db.check(OpTemplateDue, uuid.Nil); err != nil {
		return nil, err
	}
	var result []*sqlconfig.RecurringTemplate
	for _, row := range t.db.data.templates {
		if !row.Active || row.NextOccurrence.After(asOf) {
			continue
		}
		if row.LastRunDate != nil && !row.LastRunDate.Before(asOf) {
			continue
		}
		row := row
		result = append(result, &row)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].NextOccurrence.Equal(result[j].NextOccurrence) {
			return result[i].NextOccurrence.Before(result[j].NextOccurrence)
		}
		return result[i].ID.String() < result[j].ID.String()
	})
	return result, nil
}

func (t *templates) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*sqlconfig.RecurringTemplate, error) {
	t.db.mu.RLock()
	defer t.db.mu.RUnlock()
	var result []*sqlconfig.RecurringTemplate
	for _, row := range t.db.data.templates {
		if row.OwnerID == ownerID {
			row := row
			result = append(result, &row)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].NextOccurrence.Equal(result[j].NextOccurrence) {
			return result[i].NextOccurrence.Before(result[j].NextOccurrence)
		}
		return result[i].ID.String() < result[j].ID.String()
	})
	return result, nil
}

func (t *templates) Insert(_ context.Context, create *sqlconfig.TemplateCreate) (uuid.UUID, error) {
	t.db.mu.Lock()
	defer t.db.mu.Unlock()
	if err := t.db.check(OpTemplateInsert, uuid.Nil); err != nil {
		return uuid.Nil, err
	}
	id := newID()
	t.db.data.templates[id] = sqlconfig.RecurringTemplate{
		ID:             id,
		OwnerID:        create.OwnerID,
		CategoryID:     create.CategoryID,
		Amount:         create.Amount,
		Description:    create.Description,
		Frequency:      create.Frequency,
		StartDate:      create.StartDate,
		EndDate:        create.EndDate,
		NextOccurrence: create.NextOccurrence,
		Active:         true,
		CreatedAt:      t.db.now(),
	}
	return id, nil
}

func (t *templates) Update(_ context.Context, id uuid.UUID, update *sqlconfig.TemplateUpdate) error {
	t.db.mu.Lock()
	defer t.db.mu.Unlock()
	if err := t.db.check(OpTemplateUpdate, id); err != nil {
		return err
	}
	row, ok := t.db.data.templates[id]
	if !ok {
		return sqlconfig.ErrNotFound
	}
	if v, ok := update.CategoryID.Get(); ok {
		row.CategoryID = v
	}
	if v, ok := update.Amount.Get(); ok {
		row.Amount = v
	}
	if v, ok := update.Description.Get(); ok {
		row.Description = v
	}
	if v, ok := update.Active.Get(); ok {
		row.Active = v
	}
	t.db.data.templates[id] = row
	return nil
}

func (t *templates) AdvanceOccurrence(_ context.Context, id uuid.UUID, prev, next, runDate time.Time, active bool) error {
	t.db.mu.Lock()
	defer t.db.mu.Unlock()
	if err := t.db.check(OpTemplateAdvance, id); err != nil {
		return err
	}
	row, ok := t.db.data.templates[id]
	if !ok || !row.NextOccurrence.Equal(prev) {
		return sqlconfig.ErrStaleOccurrence
	}
	row.NextOccurrence = next
	row.LastRunDate = &runDate
	row.Active = active
	t.db.data.templates[id] = row
	return nil
}

type expenses struct{ db *DB }

func (e *expenses) Insert(_ context.Context, create *sqlconfig.ExpenseCreate) (uuid.UUID, error) {
	e.db.mu.Lock()
	defer e.db.mu.Unlock()
	target := uuid.Nil
	if create.RecurringTemplateID != nil {
		target = *create.RecurringTemplateID
	}
	if err := e.db.check(OpExpenseInsert, target); err != nil {
		return uuid.Nil, err
	}
	id := newID()
	e.db.data.expenses = append(e.db.data.expenses, sqlconfig.Expense{
		ID:                  id,
		OwnerID:             create.OwnerID,
		CategoryID:          create.CategoryID,
		Amount:              create.Amount,
		Description:         create.Description,
		Date:                create.Date,
		RecurringTemplateID: create.RecurringTemplateID,
		CreatedAt:           e.db.now(),
	})
	return id, nil
}

func (e *expenses) List(_ context.Context, filter *sqlconfig.ExpenseFilter) ([]*sqlconfig.Expense, error) {
	e.db.mu.RLock()
	defer e.db.mu.RUnlock()
	if err := e.db.check(OpExpenseList, uuid.Nil); err != nil {
		return nil, err
	}
	var result []*sqlconfig.Expense
	for _, row := range e.db.data.expenses {
		if !matches(&row, filter) {
			continue
		}
		row := row
		row.CategoryName = e.db.categoryName(row.CategoryID)
		result = append(result, &row)
	}
	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.Before(result[j].Date)
		}
		return result[i].ID.String() < result[j].ID.String()
	})
	return result, nil
}

func (e *expenses) SumByCategory(_ context.Context, ownerID, categoryID uuid.UUID, from, to time.Time) (decimal.Decimal, error) {
	e.db.mu.RLock()
	defer e.db.mu.RUnlock()
	filter := &sqlconfig.ExpenseFilter{OwnerID: ownerID, CategoryID: &categoryID, From: &from, To: &to}
	total := decimal.Zero
	for _, row := range e.db.data.expenses {
		if matches(&row, filter) {
			total = total.Add(row.Amount)
		}
	}
	return total, nil
}

func matches(row *sqlconfig.Expense, filter *sqlconfig.ExpenseFilter) bool {
	if row.OwnerID != filter.OwnerID {
		return false
	}
	if filter.CategoryID != nil && row.CategoryID != *filter.CategoryID {
		return false
	}
	if filter.From != nil && row.Date.Before(*filter.From) {
		return false
	}
	if filter.To != nil && row.Date.After(*filter.To) {
		return false
	}
	return true
}

type budgets struct{ db *DB }

func (b *budgets) Insert(_ context.Context, create *sqlconfig.BudgetCreate) (uuid.UUID, error) {
	b.db.mu.Lock()
	defer b.db.mu.Unlock()
	if err := b.db.check(OpBudgetInsert, uuid.Nil); err != nil {
		return uuid.Nil, err
	}
	for _, row := range b.db.data.budgets {
		if row.OwnerID == create.OwnerID && row.CategoryID == create.CategoryID &&
			row.Month == create.Month && row.Year == create.Year {
			return uuid.Nil, sqlconfig.ErrDuplicate
		}
	}
	id := newID()
	b.db.data.budgets = append(b.db.data.budgets, sqlconfig.Budget{
		ID:           id,
		OwnerID:      create.OwnerID,
		CategoryID:   create.CategoryID,
		MonthlyLimit: create.MonthlyLimit,
		Month:        create.Month,
		Year:         create.Year,
		CreatedAt:    b.db.now(),
	})
	return id, nil
}

func (b *budgets) Find(_ context.Context, ownerID, categoryID uuid.UUID, month, year int) (*sqlconfig.Budget, error) {
	b.db.mu.RLock()
	defer b.db.mu.RUnlock()
	for _, row := range b.db.data.budgets {
		if row.OwnerID == ownerID && row.CategoryID == categoryID && row.Month == month && row.Year == year {
			row.CategoryName = b.db.categoryName(row.CategoryID)
			return &row, nil
		}
	}
	return nil, sqlconfig.ErrNotFound
}

// FindForUpdate needs no row lock here: write transactions are already serialized.
func (b *budgets) FindForUpdate(ctx context.Context, ownerID, categoryID uuid.UUID, month, year int) (*sqlconfig.Budget, error) {
	return b.Find(ctx, ownerID, categoryID, month, year)
}

func (b *budgets) List(_ context.Context, ownerID uuid.UUID, month, year int) ([]*sqlconfig.Budget, error) {
	b.db.mu.RLock()
	defer b.db.mu.RUnlock()
	var result []*sqlconfig.Budget
	for _, row := range b.db.data.budgets {
		if row.OwnerID != ownerID || (month > 0 && row.Month != month) || (year > 0 && row.Year != year) {
			continue
		}
		row := row
		row.CategoryName = b.db.categoryName(row.CategoryID)
		result = append(result, &row)
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Year != result[j].Year {
			return result[i].Year > result[j].Year
		}
		return result[i].Month > result[j].Month
	})
	return result, nil
}

type alerts struct{ db *DB }

func (a *alerts) Insert(_ context.Context, create *sqlconfig.AlertCreate) (uuid.UUID, error) {
	a.db.mu.Lock()
	defer a.db.mu.Unlock()
	if err := a.db.check(OpAlertInsert, uuid.Nil); err != nil {
		return uuid.Nil, err
	}
	id := newID()
	a.db.data.alerts = append(a.db.data.alerts, sqlconfig.Alert{
		ID:        id,
		OwnerID:   create.OwnerID,
		Kind:      create.Kind,
		Title:     create.Title,
		Message:   create.Message,
		Severity:  create.Severity,
		CreatedAt: a.db.now(),
	})
	return id, nil
}

func (a *alerts) ListByOwner(_ context.Context, ownerID uuid.UUID, unreadOnly bool, limit int) ([]*sqlconfig.Alert, error) {
	a.db.mu.RLock()
	defer a.db.mu.RUnlock()
	var result []*sqlconfig.Alert
	for i := len(a.db.data.alerts) - 1; i >= 0; i-- {
		row := a.db.data.alerts[i]
		if row.OwnerID != ownerID || (unreadOnly && row.Read) {
			continue
		}
		result = append(result, &row)
		if limit > 0 && len(result) == limit {
			break
		}
	}
	return result, nil
}

type categories struct{ db *DB }

func (c *categories) Insert(_ context.Context, create *sqlconfig.CategoryCreate) (uuid.UUID, error) {
	c.db.mu.Lock()
	defer c.db.mu.Unlock()
	if err := c.db.check(OpCategoryInsert, uuid.Nil); err != nil {
		return uuid.Nil, err
	}
	for _, row := range c.db.data.categories {
		if row.OwnerID == create.OwnerID && row.Name == create.Name {
			return uuid.Nil, sqlconfig.ErrDuplicate
		}
	}
	id := newID()
	c.db.data.categories[id] = sqlconfig.Category{
		ID:        id,
		OwnerID:   create.OwnerID,
		Name:      create.Name,
		Icon:      create.Icon,
		Color:     create.Color,
		CreatedAt: c.db.now(),
	}
	return id, nil
}

func (c *categories) List(_ context.Context, ownerID uuid.UUID) ([]*sqlconfig.Category, error) {
	c.db.mu.RLock()
	defer c.db.mu.RUnlock()
	var result []*sqlconfig.Category
	for _, row := range c.db.data.categories {
		if row.OwnerID != ownerID {
			continue
		}
		row := row
		result = append(result, &row)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		return result[i].ID.String() < result[j].ID.String()
	})
	return result, nil
}
