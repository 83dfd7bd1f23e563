package recurring

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-engine/internal/handlers/v1/common"
	"github.com/carson-networks/budget-engine/internal/ratelimit"
	"github.com/carson-networks/budget-engine/internal/service"
)

// UpdateTemplateBody is a partial edit. Omitted fields are left unchanged.
type UpdateTemplateBody struct {
	CategoryID  *string `json:"categoryID,omitempty" doc:"Category UUID"`
	Amount      *string `json:"amount,omitempty" doc:"Decimal amount"`
	Description *string `json:"description,omitempty" doc:"Description"`
	Active      *bool   `json:"active,omitempty" doc:"False pauses the template, true resumes it"`
}

// UpdateTemplateInput is the Huma input for editing a recurring template.
type UpdateTemplateInput struct {
	OwnerID string `header:"X-Owner-ID" required:"true" doc:"Authenticated owner UUID"`
	ID      string `path:"id" doc:"Template UUID"`
	Body    UpdateTemplateBody
}

// UpdateTemplateOutput is the Huma output for editing a recurring template.
type UpdateTemplateOutput struct {
	Body Template
}

// templateUpdater is the interface for editing recurring templates.
type templateUpdater interface {
	UpdateTemplate(ctx context.Context, id, ownerID uuid.UUID, edit service.TemplateEdit) (*service.RecurringTemplate, error)
}

// UpdateTemplateHandler handles PATCH /v1/recurring/{id}.
type UpdateTemplateHandler struct {
	RecurringService templateUpdater
}

// NewUpdateTemplateHandler creates a new UpdateTemplateHandler.
func NewUpdateTemplateHandler(svc templateUpdater) *UpdateTemplateHandler {
	return &UpdateTemplateHandler{RecurringService: svc}
}

// Register registers the update template endpoint with the Huma API.
func (h *UpdateTemplateHandler) Register(api huma.API) {
	op := huma.Operation{
		OperationID: "update-recurring",
		Method:      http.MethodPatch,
		Path:        "/v1/recurring/{id}",
		Summary:     "Edit recurring expense",
		Description: "Edits amount, category or description, or pauses and resumes the template.",
		Tags:        []string{"Recurring"},
	}
	ratelimit.Classify(&op, ratelimit.ClassMutation)
	huma.Register(api, op, h.handle)
}

func parseUpdateTemplateInput(input *UpdateTemplateInput) (id, owner uuid.UUID, edit service.TemplateEdit, err error) {
	if owner, err = common.ParseOwner(input.OwnerID); err != nil {
		return
	}
	if id, err = common.ParseID("id", input.ID); err != nil {
		return
	}
	if input.Body.CategoryID != nil {
		var categoryID uuid.UUID
		if categoryID, err = common.ParseID("categoryID", *input.Body.CategoryID); err != nil {
			return
		}
		edit.CategoryID = &categoryID
	}
	if input.Body.Amount != nil {
		var amount decimal.Decimal
		if amount, err = decimal.NewFromString(*input.Body.Amount); err != nil {
			err = huma.NewError(http.StatusBadRequest, "invalid amount", err)
			return
		}
		edit.Amount = &amount
	}
	edit.Description = input.Body.Description
	edit.Active = input.Body.Active
	return
}

func (h *UpdateTemplateHandler) handle(ctx context.Context, input *UpdateTemplateInput) (*UpdateTemplateOutput, error) {
	id, owner, edit, err := parseUpdateTemplateInput(input)
	if err != nil {
		return nil, err
	}

	updated, err := h.RecurringService.UpdateTemplate(ctx, id, owner, edit)
	if err != nil {
		return nil, common.ServiceError(err, "failed to update recurring expense")
	}

	return &UpdateTemplateOutput{Body: toTemplate(*updated)}, nil
}
