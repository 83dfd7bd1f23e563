package recurrence

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-engine/internal/operator"
	"github.com/carson-networks/budget-engine/internal/operator/actions"
	"github.com/carson-networks/budget-engine/internal/storage"
	"github.com/carson-networks/budget-engine/internal/storage/memory"
	"github.com/carson-networks/budget-engine/internal/storage/sqlconfig"
)

type fixture struct {
	db        *memory.DB
	store     *storage.Storage
	scheduler *Scheduler
	owner     uuid.UUID
	category  uuid.UUID
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newFixture(t *testing.T, workers int) *fixture {
	t.Helper()
	db := memory.New()
	store := db.Storage()
	delegator := operator.NewOperatorDelegator(store, workers)
	delegator.Start()
	t.Cleanup(delegator.Stop)

	return &fixture{
		db:        db,
		store:     store,
		scheduler: NewScheduler(store.Templates, delegator, workers, quietLogger()),
		owner:     uuid.Must(uuid.NewV4()),
		category:  uuid.Must(uuid.NewV4()),
	}
}

func (f *fixture) addTemplate(t *testing.T, desc string, freq Frequency, start time.Time, end *time.Time) uuid.UUID {
	t.Helper()
	id, err := f.store.Templates.Insert(context.Background(), &sqlconfig.TemplateCreate{
		OwnerID:        f.owner,
		CategoryID:     f.category,
		Amount:         decimal.RequireFromString("15.99"),
		Description:    desc,
		Frequency:      string(freq),
		StartDate:      start,
		EndDate:        end,
		NextOccurrence: start,
	})
	require.NoError(t, err)
	return id
}

func (f *fixture) template(t *testing.T, id uuid.UUID) *sqlconfig.RecurringTemplate {
	t.Helper()
	tmpl, err := f.store.Templates.FindByID(context.Background(), id)
	require.NoError(t, err)
	return tmpl
}

func (f *fixture) expenses(t *testing.T) []*sqlconfig.Expense {
	t.Helper()
	rows, err := f.store.Expenses.List(context.Background(), &sqlconfig.ExpenseFilter{OwnerID: f.owner})
	require.NoError(t, err)
	return rows
}

func outcomes(result *BatchResult) map[uuid.UUID]Outcome {
	m := make(map[uuid.UUID]Outcome, len(result.Items))
	for _, item := range result.Items {
		m[item.TemplateID] = item.Outcome
	}
	return m
}

func TestProcessDue_Materializes(t *testing.T) {
	f := newFixture(t, 2)
	id := f.addTemplate(t, "Netflix", Monthly, day(2024, 1, 31), nil)

	result, err := f.scheduler.ProcessDue(context.Background(), day(2024, 1, 31))
	require.NoError(t, err)
	require.Len(t, result.Items, 1, spew.Sdump(result))

	item := result.Items[0]
	assert.Equal(t, OutcomeMaterialized, item.Outcome)
	require.NotNil(t, item.NextOccurrence)
	assert.Equal(t, day(2024, 2, 29), *item.NextOccurrence)
	assert.Equal(t, 1, result.Processed)

	rows := f.expenses(t)
	require.Len(t, rows, 1)
	assert.Equal(t, "Netflix (Recurring)", rows[0].Description)
	assert.Equal(t, day(2024, 1, 31), rows[0].Date)
	assert.Equal(t, "15.99", rows[0].Amount.StringFixed(2))
	require.NotNil(t, rows[0].RecurringTemplateID)
	assert.Equal(t, id, *rows[0].RecurringTemplateID)

	assert.Equal(t, day(2024, 2, 29), f.template(t, id).NextOccurrence)
}

func TestProcessDue_MonthEndAnchorSurvivesFebruary(t *testing.T) {
	f := newFixture(t, 1)
	id := f.addTemplate(t, "Rent", Monthly, day(2024, 1, 31), nil)

	for _, asOf := range []time.Time{day(2024, 1, 31), day(2024, 2, 29), day(2024, 3, 31)} {
		_, err := f.scheduler.ProcessDue(context.Background(), asOf)
		require.NoError(t, err)
	}
	assert.Equal(t, day(2024, 4, 30), f.template(t, id).NextOccurrence)
	assert.Len(t, f.expenses(t), 3)
}

func TestProcessDue_IdempotentForSameDay(t *testing.T) {
	f := newFixture(t, 2)
	f.addTemplate(t, "Coffee", Daily, day(2024, 3, 1), nil)
	f.addTemplate(t, "Gym", Monthly, day(2024, 3, 1), nil)

	asOf := day(2024, 3, 10)
	first, err := f.scheduler.ProcessDue(context.Background(), asOf)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Processed)

	second, err := f.scheduler.ProcessDue(context.Background(), asOf)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Total, spew.Sdump(second))
	assert.Len(t, f.expenses(t), 2)
}

func TestProcessDue_PartialFailureIsolation(t *testing.T) {
	f := newFixture(t, 3)
	first := f.addTemplate(t, "One", Monthly, day(2024, 5, 1), nil)
	second := f.addTemplate(t, "Two", Monthly, day(2024, 5, 2), nil)
	third := f.addTemplate(t, "Three", Monthly, day(2024, 5, 3), nil)

	f.db.SetFault(func(op memory.Op, target uuid.UUID) error {
		if op == memory.OpExpenseInsert && target == second {
			return memory.ErrInjected
		}
		return nil
	})

	result, err := f.scheduler.ProcessDue(context.Background(), day(2024, 5, 10))
	require.NoError(t, err)
	require.Len(t, result.Items, 3)

	assert.Equal(t, first, result.Items[0].TemplateID)
	assert.Equal(t, second, result.Items[1].TemplateID)
	assert.Equal(t, third, result.Items[2].TemplateID)

	got := outcomes(result)
	assert.Equal(t, OutcomeMaterialized, got[first])
	assert.Equal(t, OutcomeError, got[second])
	assert.Equal(t, OutcomeMaterialized, got[third])
	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 1, result.Errors)
	assert.Contains(t, result.Items[1].Detail, memory.ErrInjected.Error())

	assert.Equal(t, day(2024, 5, 2), f.template(t, second).NextOccurrence)
	assert.Nil(t, f.template(t, second).LastRunDate)
	assert.Len(t, f.expenses(t), 2)

	f.db.SetFault(nil)
	retry, err := f.scheduler.ProcessDue(context.Background(), day(2024, 5, 10))
	require.NoError(t, err)
	require.Len(t, retry.Items, 1)
	assert.Equal(t, OutcomeMaterialized, retry.Items[0].Outcome)
}

func TestProcessDue_AdvanceFailureRollsBackExpense(t *testing.T) {
	f := newFixture(t, 1)
	id := f.addTemplate(t, "Insurance", Yearly, day(2024, 2, 29), nil)

	f.db.SetFault(func(op memory.Op, target uuid.UUID) error {
		if op == memory.OpTemplateAdvance && target == id {
			return errors.New("deadlock detected")
		}
		return nil
	})

	result, err := f.scheduler.ProcessDue(context.Background(), day(2024, 2, 29))
	require.NoError(t, err)
	assert.Equal(t, OutcomeError, result.Items[0].Outcome)
	assert.Empty(t, f.expenses(t))
	assert.Equal(t, day(2024, 2, 29), f.template(t, id).NextOccurrence)
}

func TestProcessDue_DeactivatesExpiredTemplate(t *testing.T) {
	f := newFixture(t, 1)
	end := day(2024, 4, 30)
	id := f.addTemplate(t, "Trial", Weekly, day(2024, 4, 1), &end)

	result, err := f.scheduler.ProcessDue(context.Background(), day(2024, 5, 15))
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, OutcomeDeactivated, result.Items[0].Outcome)
	assert.Equal(t, 1, result.Processed)

	tmpl := f.template(t, id)
	assert.False(t, tmpl.Active)
	assert.Equal(t, day(2024, 4, 1), tmpl.NextOccurrence)
	assert.Empty(t, f.expenses(t))
}

func TestProcessDue_FinalOccurrenceDeactivates(t *testing.T) {
	f := newFixture(t, 1)
	end := day(2024, 3, 20)
	id := f.addTemplate(t, "Lessons", Monthly, day(2024, 3, 15), &end)

	result, err := f.scheduler.ProcessDue(context.Background(), day(2024, 3, 15))
	require.NoError(t, err)
	assert.Equal(t, OutcomeMaterialized, result.Items[0].Outcome)
	assert.NotEmpty(t, result.Items[0].Detail)

	tmpl := f.template(t, id)
	assert.False(t, tmpl.Active)
	assert.Equal(t, day(2024, 4, 15), tmpl.NextOccurrence)
	assert.Len(t, f.expenses(t), 1)

	again, err := f.scheduler.ProcessDue(context.Background(), day(2024, 4, 15))
	require.NoError(t, err)
	assert.Equal(t, 0, again.Total)
}

func TestProcessDue_EmptyDescription(t *testing.T) {
	f := newFixture(t, 1)
	f.addTemplate(t, "", Daily, day(2024, 1, 1), nil)

	_, err := f.scheduler.ProcessDue(context.Background(), day(2024, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, "(Recurring)", f.expenses(t)[0].Description)
}

func TestProcessDue_FetchError(t *testing.T) {
	f := newFixture(t, 1)
	f.db.SetFault(func(op memory.Op, _ uuid.UUID) error {
		if op == memory.OpTemplateDue {
			return memory.ErrInjected
		}
		return nil
	})

	result, err := f.scheduler.ProcessDue(context.Background(), day(2024, 1, 1))
	assert.ErrorIs(t, err, memory.ErrInjected)
	assert.Nil(t, result)
}

type panicOnce struct {
	target uuid.UUID
	next   ActionProcessor
}

func (p *panicOnce) Process(ctx context.Context, action actions.IAction) error {
	if m, ok := action.(*actions.MaterializeOccurrence); ok && m.TemplateID == p.target {
		panic("corrupt row")
	}
	return p.next.Process(ctx, action)
}

func TestProcessDue_PanicIsolation(t *testing.T) {
	f := newFixture(t, 2)
	bad := f.addTemplate(t, "Bad", Daily, day(2024, 1, 1), nil)
	good := f.addTemplate(t, "Good", Daily, day(2024, 1, 2), nil)

	delegator := operator.NewOperatorDelegator(f.store, 1)
	delegator.Start()
	t.Cleanup(delegator.Stop)
	s := NewScheduler(f.store.Templates, &panicOnce{target: bad, next: delegator}, 2, quietLogger())

	result, err := s.ProcessDue(context.Background(), day(2024, 1, 5))
	require.NoError(t, err)
	got := outcomes(result)
	assert.Equal(t, OutcomeError, got[bad])
	assert.Equal(t, OutcomeMaterialized, got[good])
}

func TestProcessDue_StaleAdvanceIsSkipped(t *testing.T) {
	finder := &staticFinder{}
	processor := &recordingProcessor{err: sqlconfig.ErrStaleOccurrence}
	s := NewScheduler(finder, processor, 1, quietLogger())

	id := uuid.Must(uuid.NewV4())
	finder.rows = []*sqlconfig.RecurringTemplate{{
		ID:             id,
		Frequency:      "weekly",
		StartDate:      day(2024, 1, 1),
		NextOccurrence: day(2024, 1, 1),
		Active:         true,
	}}

	result, err := s.ProcessDue(context.Background(), day(2024, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, OutcomeSkipped, result.Items[0].Outcome)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 0, result.Errors)
	assert.Nil(t, result.Items[0].NextOccurrence)
}

func TestProcessDue_InvalidFrequencyIsItemError(t *testing.T) {
	finder := &staticFinder{rows: []*sqlconfig.RecurringTemplate{{
		ID:             uuid.Must(uuid.NewV4()),
		Frequency:      "hourly",
		StartDate:      day(2024, 1, 1),
		NextOccurrence: day(2024, 1, 1),
		Active:         true,
	}}}
	processor := &recordingProcessor{}
	s := NewScheduler(finder, processor, 1, quietLogger())

	result, err := s.ProcessDue(context.Background(), day(2024, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, OutcomeError, result.Items[0].Outcome)
	assert.Empty(t, processor.calls())
}

func TestProcessDue_ConcurrentCallsShareOneRun(t *testing.T) {
	finder := &staticFinder{
		rows: []*sqlconfig.RecurringTemplate{{
			ID:             uuid.Must(uuid.NewV4()),
			Frequency:      "daily",
			StartDate:      day(2024, 1, 1),
			NextOccurrence: day(2024, 1, 1),
			Active:         true,
		}},
		gate: make(chan struct{}),
	}
	processor := &recordingProcessor{}
	s := NewScheduler(finder, processor, 1, quietLogger())

	var wg sync.WaitGroup
	results := make([]*BatchResult, 5)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r, err := s.ProcessDue(context.Background(), day(2024, 1, 1))
			assert.NoError(t, err)
			results[i] = r
		}()
	}
	time.Sleep(50 * time.Millisecond)
	close(finder.gate)
	wg.Wait()

	assert.Len(t, processor.calls(), 1)
	for _, r := range results {
		assert.Same(t, results[0], r)
	}
}

func TestProcessDue_WithMockedFinder(t *testing.T) {
	templates := sqlconfig.NewMockITemplateTable(t)
	templates.EXPECT().FindActiveDue(mock.Anything, day(2024, 7, 4)).Return(nil, nil)

	s := NewScheduler(templates, &recordingProcessor{}, 4, quietLogger())
	result, err := s.ProcessDue(context.Background(), time.Date(2024, 7, 4, 18, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 0, result.Total)
	assert.NotNil(t, result.Items)
}

func TestUntilNextRun(t *testing.T) {
	assert.Equal(t, 90*time.Minute, untilNextRun(time.Date(2024, 1, 1, 22, 30, 0, 0, time.UTC)))
	assert.Equal(t, 24*time.Hour, untilNextRun(day(2024, 1, 1)))
}

type staticFinder struct {
	rows []*sqlconfig.RecurringTemplate
	gate chan struct{}
}

func (s *staticFinder) FindActiveDue(context.Context, time.Time) ([]*sqlconfig.RecurringTemplate, error) {
	if s.gate != nil {
		<-s.gate
	}
	return s.rows, nil
}

type recordingProcessor struct {
	mu      sync.Mutex
	actions []actions.IAction
	err     error
}

func (r *recordingProcessor) Process(_ context.Context, action actions.IAction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions = append(r.actions, action)
	return r.err
}

func (r *recordingProcessor) calls() []actions.IAction {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]actions.IAction(nil), r.actions...)
}
