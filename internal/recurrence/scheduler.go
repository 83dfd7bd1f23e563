package recurrence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/carson-networks/budget-engine/internal/operator/actions"
	"github.com/carson-networks/budget-engine/internal/storage/sqlconfig"
)

// DescriptionSuffix marks an expense as materialized from a template.
const DescriptionSuffix = " (Recurring)"

// Outcome is the per-template result of a batch run.
type Outcome string

const (
	OutcomeMaterialized Outcome = "materialized"
	OutcomeDeactivated  Outcome = "deactivated"
	OutcomeError        Outcome = "error"
	// OutcomeSkipped means another run advanced the template first.
	OutcomeSkipped Outcome = "skipped"
)

type ItemResult struct {
	TemplateID     uuid.UUID  `json:"templateId"`
	Outcome        Outcome    `json:"outcome"`
	Detail         string     `json:"detail,omitempty"`
	NextOccurrence *time.Time `json:"nextOccurrence,omitempty"`
}

type BatchResult struct {
	AsOf      time.Time    `json:"asOf"`
	Processed int          `json:"processed"`
	Errors    int          `json:"errors"`
	Skipped   int          `json:"skipped"`
	Total     int          `json:"total"`
	Items     []ItemResult `json:"items"`
}

// TemplateFinder is the read the scheduler needs from storage.
type TemplateFinder interface {
	FindActiveDue(ctx context.Context, asOf time.Time) ([]*sqlconfig.RecurringTemplate, error)
}

// ActionProcessor runs an action in its own transaction.
type ActionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Scheduler materializes due recurring templates.
type Scheduler struct {
	templates TemplateFinder
	processor ActionProcessor
	workers   int
	log       *logrus.Logger
	flight    singleflight.Group
}

func NewScheduler(templates TemplateFinder, processor ActionProcessor, workers int, log *logrus.Logger) *Scheduler {
	if workers < 1 {
		workers = 1
	}
	return &Scheduler{
		templates: templates,
		processor: processor,
		workers:   workers,
		log:       log,
	}
}

// ProcessDue materializes every template due on or before asOf. Each template
// is handled in its own transaction, so one failing item never affects the
// others. Concurrent calls for the same date share a single run. The only
// error returned is a failure to fetch the due templates.
func (s *Scheduler) ProcessDue(ctx context.Context, asOf time.Time) (*BatchResult, error) {
	asOf = DateOnly(asOf)
	v, err, _ := s.flight.Do(asOf.Format(time.DateOnly), func() (interface{}, error) {
		return s.run(ctx, asOf)
	})
	if err != nil {
		return nil, err
	}
	return v.(*BatchResult), nil
}

func (s *Scheduler) run(ctx context.Context, asOf time.Time) (*BatchResult, error) {
	start := time.Now()

	due, err := s.templates.FindActiveDue(ctx, asOf)
	if err != nil {
		s.log.WithError(err).Error("Scheduler.ProcessDue.FetchError")
		return nil, fmt.Errorf("find due templates: %w", err)
	}

	items := make([]ItemResult, len(due))
	var g errgroup.Group
	g.SetLimit(s.workers)
	for i, tmpl := range due {
		g.Go(func() error {
			items[i] = s.processTemplate(ctx, tmpl, asOf)
			return nil
		})
	}
	_ = g.Wait()

	result := &BatchResult{AsOf: asOf, Total: len(items), Items: items}
	for _, item := range items {
		switch item.Outcome {
		case OutcomeMaterialized, OutcomeDeactivated:
			result.Processed++
		case OutcomeSkipped:
			result.Skipped++
		default:
			result.Errors++
		}
	}

	s.log.WithFields(logrus.Fields{
		"asOf":      asOf.Format(time.DateOnly),
		"total":     result.Total,
		"processed": result.Processed,
		"errors":    result.Errors,
		"skipped":   result.Skipped,
		"duration":  time.Since(start).Milliseconds(),
	}).Info("Scheduler.ProcessDue.Complete")

	return result, nil
}

func (s *Scheduler) processTemplate(ctx context.Context, tmpl *sqlconfig.RecurringTemplate, asOf time.Time) (item ItemResult) {
	item.TemplateID = tmpl.ID
	defer func() {
		if r := recover(); r != nil {
			item = ItemResult{TemplateID: tmpl.ID, Outcome: OutcomeError, Detail: fmt.Sprintf("panic: %v", r)}
		}
		if item.Outcome == OutcomeError {
			s.log.WithField("templateId", tmpl.ID.String()).WithField("detail", item.Detail).
				Warn("Scheduler.ProcessDue.ItemError")
		}
	}()

	current := DateOnly(tmpl.NextOccurrence)

	if tmpl.EndDate != nil && DateOnly(*tmpl.EndDate).Before(asOf) {
		err := s.processor.Process(ctx, &actions.DeactivateTemplate{
			TemplateID:     tmpl.ID,
			NextOccurrence: tmpl.NextOccurrence,
			RunDate:        asOf,
		})
		return s.finish(item, err, OutcomeDeactivated, "end date passed")
	}

	freq, err := ParseFrequency(tmpl.Frequency)
	if err != nil {
		item.Outcome = OutcomeError
		item.Detail = err.Error()
		return item
	}
	next, err := AdvanceAnchored(current, freq, DateOnly(tmpl.StartDate).Day())
	if err != nil {
		item.Outcome = OutcomeError
		item.Detail = err.Error()
		return item
	}
	active := tmpl.EndDate == nil || !next.After(DateOnly(*tmpl.EndDate))

	templateID := tmpl.ID
	err = s.processor.Process(ctx, &actions.MaterializeOccurrence{
		TemplateID: tmpl.ID,
		Expense: sqlconfig.ExpenseCreate{
			OwnerID:             tmpl.OwnerID,
			CategoryID:          tmpl.CategoryID,
			Amount:              tmpl.Amount,
			Description:         strings.TrimSpace(tmpl.Description + DescriptionSuffix),
			Date:                asOf,
			RecurringTemplateID: &templateID,
		},
		Prev:    tmpl.NextOccurrence,
		Next:    next,
		RunDate: asOf,
		Active:  active,
	})

	detail := ""
	if !active {
		detail = "final occurrence, template deactivated"
	}
	item = s.finish(item, err, OutcomeMaterialized, detail)
	if item.Outcome == OutcomeMaterialized {
		item.NextOccurrence = &next
	}
	return item
}

func (s *Scheduler) finish(item ItemResult, err error, success Outcome, detail string) ItemResult {
	switch {
	case err == nil:
		item.Outcome = success
		item.Detail = detail
	case errors.Is(err, sqlconfig.ErrStaleOccurrence):
		item.Outcome = OutcomeSkipped
		item.Detail = "already advanced by a concurrent run"
	default:
		item.Outcome = OutcomeError
		item.Detail = err.Error()
	}
	return item
}

// RunDaily calls ProcessDue for the new UTC date each midnight until ctx is done.
func (s *Scheduler) RunDaily(ctx context.Context, now func() time.Time) {
	for {
		timer := time.NewTimer(untilNextRun(now()))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}

		if _, err := s.ProcessDue(ctx, now()); err != nil {
			s.log.WithError(err).Error("Scheduler.RunDaily.Error")
		}
	}
}

func untilNextRun(now time.Time) time.Duration {
	now = now.UTC()
	return DateOnly(now).AddDate(0, 0, 1).Sub(now)
}
