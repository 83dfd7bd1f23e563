package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-engine/internal/handlers/v1/common"
	"github.com/carson-networks/budget-engine/internal/logging"
	"github.com/carson-networks/budget-engine/internal/ratelimit"
	"github.com/carson-networks/budget-engine/internal/service"
)

// CreateCategoryBody is the request body for creating a category.
type CreateCategoryBody struct {
	Name  string `json:"name" required:"true" doc:"Category name, 1-50 characters, unique per owner"`
	Icon  string `json:"icon,omitempty" doc:"Icon name, at most 50 characters"`
	Color string `json:"color,omitempty" doc:"Hex color, #rrggbb"`
}

// CreateCategoryInput is the Huma input for creating a category.
type CreateCategoryInput struct {
	OwnerID string `header:"X-Owner-ID" required:"true" doc:"Authenticated owner UUID"`
	Body    CreateCategoryBody
}

// CreateCategoryResponse is the response body for creating a category.
type CreateCategoryResponse struct {
	ID string `json:"id" doc:"Category UUID"`
}

// CreateCategoryOutput is the Huma output for creating a category.
type CreateCategoryOutput struct {
	Body CreateCategoryResponse
}

// categoryCreator is the interface for creating categories.
type categoryCreator interface {
	CreateCategory(ctx context.Context, create service.CategoryCreate) (uuid.UUID, error)
}

// CreateCategoryHandler handles POST /v1/category.
type CreateCategoryHandler struct {
	CategoryService categoryCreator
}

// NewCreateCategoryHandler creates a new CreateCategoryHandler.
func NewCreateCategoryHandler(svc categoryCreator) *CreateCategoryHandler {
	return &CreateCategoryHandler{CategoryService: svc}
}

// Register registers the create category endpoint with the Huma API.
func (h *CreateCategoryHandler) Register(api huma.API) {
	op := huma.Operation{
		OperationID:   "create-category",
		Method:        http.MethodPost,
		Path:          "/v1/category",
		Summary:       "Create category",
		Description:   "Creates a named spending category for the owner.",
		Tags:          []string{"Categories"},
		DefaultStatus: http.StatusCreated,
	}
	ratelimit.Classify(&op, ratelimit.ClassMutation)
	huma.Register(api, op, h.handle)
}

func (h *CreateCategoryHandler) handle(ctx context.Context, input *CreateCategoryInput) (*CreateCategoryOutput, error) {
	owner, err := common.ParseOwner(input.OwnerID)
	if err != nil {
		return nil, err
	}

	stopTimer := logging.GetLogData(ctx).AddTiming("createCategoryMs")
	id, err := h.CategoryService.CreateCategory(ctx, service.CategoryCreate{
		OwnerID: owner,
		Name:    input.Body.Name,
		Icon:    input.Body.Icon,
		Color:   input.Body.Color,
	})
	stopTimer()
	if err != nil {
		return nil, common.ServiceError(err, "failed to create category")
	}

	return &CreateCategoryOutput{Body: CreateCategoryResponse{ID: id.String()}}, nil
}
