package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-engine/internal/storage/sqlconfig"
)

// RecurringTemplate represents a recurring expense template in the service layer.
type RecurringTemplate struct {
	ID             uuid.UUID
	CategoryID     uuid.UUID
	Amount         decimal.Decimal
	Description    string
	Frequency      string
	StartDate      time.Time
	EndDate        *time.Time
	NextOccurrence time.Time
	LastRunDate    *time.Time
	Active         bool
	CreatedAt      time.Time
}

// TemplateCreate is the input for creating a recurring template.
type TemplateCreate struct {
	OwnerID     uuid.UUID
	CategoryID  uuid.UUID
	Amount      decimal.Decimal
	Description string
	Frequency   string
	StartDate   time.Time
	EndDate     *time.Time
}

// TemplateEdit is a partial edit. Nil fields are left untouched; setting
// Active pauses or resumes the template.
type TemplateEdit struct {
	CategoryID  *uuid.UUID
	Amount      *decimal.Decimal
	Description *string
	Active      *bool
}

func templateFromStorage(row *sqlconfig.RecurringTemplate) RecurringTemplate {
	return RecurringTemplate{
		ID:             row.ID,
		CategoryID:     row.CategoryID,
		Amount:         row.Amount,
		Description:    row.Description,
		Frequency:      row.Frequency,
		StartDate:      row.StartDate,
		EndDate:        row.EndDate,
		NextOccurrence: row.NextOccurrence,
		LastRunDate:    row.LastRunDate,
		Active:         row.Active,
		CreatedAt:      row.CreatedAt,
	}
}
