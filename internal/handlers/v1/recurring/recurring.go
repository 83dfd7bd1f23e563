package recurring

import (
	"github.com/carson-networks/budget-engine/internal/handlers/v1/common"
	"github.com/carson-networks/budget-engine/internal/service"
)

// Template is the API response model for a recurring expense template.
type Template struct {
	ID             string `json:"id" doc:"Template UUID"`
	CategoryID     string `json:"categoryID" doc:"Category UUID"`
	Amount         string `json:"amount" doc:"Decimal amount of each occurrence"`
	Description    string `json:"description" doc:"Description copied onto each expense"`
	Frequency      string `json:"frequency" doc:"daily, weekly, monthly or yearly"`
	StartDate      string `json:"startDate" doc:"YYYY-MM-DD first occurrence"`
	EndDate        string `json:"endDate,omitempty" doc:"YYYY-MM-DD last possible occurrence"`
	NextOccurrence string `json:"nextOccurrence" doc:"YYYY-MM-DD next date to materialize"`
	LastRunDate    string `json:"lastRunDate,omitempty" doc:"YYYY-MM-DD of the last scheduler run that touched this template"`
	Active         bool   `json:"active" doc:"False when paused or finished"`
}

func toTemplate(t service.RecurringTemplate) Template {
	return Template{
		ID:             t.ID.String(),
		CategoryID:     t.CategoryID.String(),
		Amount:         t.Amount.StringFixed(2),
		Description:    t.Description,
		Frequency:      t.Frequency,
		StartDate:      t.StartDate.Format(common.DateLayout),
		EndDate:        common.FormatDate(t.EndDate),
		NextOccurrence: t.NextOccurrence.Format(common.DateLayout),
		LastRunDate:    common.FormatDate(t.LastRunDate),
		Active:         t.Active,
	}
}
