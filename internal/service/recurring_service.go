package service

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-engine/internal/operator/actions"
	"github.com/carson-networks/budget-engine/internal/recurrence"
	"github.com/carson-networks/budget-engine/internal/storage"
	"github.com/carson-networks/budget-engine/internal/storage/sqlconfig"
)

// RecurringService handles recurring template business logic.
type RecurringService struct {
	storage   *storage.Storage
	processor ActionProcessor
}

// NewRecurringService creates a new RecurringService.
func NewRecurringService(store *storage.Storage, processor ActionProcessor) *RecurringService {
	return &RecurringService{storage: store, processor: processor}
}

// CreateTemplate validates and stores a new active template whose first
// occurrence is its start date.
func (s *RecurringService) CreateTemplate(ctx context.Context, create TemplateCreate) (uuid.UUID, error) {
	if err := validateAmount(create.Amount); err != nil {
		return uuid.Nil, err
	}
	if err := validateDescription(create.Description); err != nil {
		return uuid.Nil, err
	}
	freq, err := recurrence.ParseFrequency(create.Frequency)
	if err != nil {
		return uuid.Nil, invalidf("%v", err)
	}
	if create.StartDate.IsZero() {
		return uuid.Nil, invalidf("startDate is required")
	}

	start := recurrence.DateOnly(create.StartDate)
	var end *time.Time
	if create.EndDate != nil {
		e := recurrence.DateOnly(*create.EndDate)
		if e.Before(start) {
			return uuid.Nil, invalidf("endDate must not be before startDate")
		}
		end = &e
	}

	action := &actions.CreateTemplate{
		Create: sqlconfig.TemplateCreate{
			OwnerID:        create.OwnerID,
			CategoryID:     create.CategoryID,
			Amount:         create.Amount,
			Description:    create.Description,
			Frequency:      string(freq),
			StartDate:      start,
			EndDate:        end,
			NextOccurrence: start,
		},
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return uuid.Nil, translate(err)
	}
	return action.ID, nil
}

// ListTemplates returns an owner's templates ordered by next occurrence.
func (s *RecurringService) ListTemplates(ctx context.Context, ownerID uuid.UUID) ([]RecurringTemplate, error) {
	rows, err := s.storage.Templates.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, translate(err)
	}

	templates := make([]RecurringTemplate, len(rows))
	for i, row := range rows {
		templates[i] = templateFromStorage(row)
	}
	return templates, nil
}

// UpdateTemplate applies edit to a template the owner holds and returns the
// result. Templates owned by someone else are not found.
func (s *RecurringService) UpdateTemplate(ctx context.Context, id, ownerID uuid.UUID, edit TemplateEdit) (*RecurringTemplate, error) {
	var update sqlconfig.TemplateUpdate
	if edit.Amount != nil {
		if err := validateAmount(*edit.Amount); err != nil {
			return nil, err
		}
		update.Amount = omit.From(*edit.Amount)
	}
	if edit.Description != nil {
		if err := validateDescription(*edit.Description); err != nil {
			return nil, err
		}
		update.Description = omit.From(*edit.Description)
	}
	if edit.CategoryID != nil {
		update.CategoryID = omit.From(*edit.CategoryID)
	}
	if edit.Active != nil {
		update.Active = omit.From(*edit.Active)
	}

	action := &actions.UpdateTemplate{ID: id, OwnerID: ownerID, Update: update}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, translate(err)
	}

	row, err := s.storage.Templates.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	template := templateFromStorage(row)
	return &template, nil
}
