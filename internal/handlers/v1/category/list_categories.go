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

// ListCategoriesInput is the Huma input for listing categories.
type ListCategoriesInput struct {
	OwnerID string `header:"X-Owner-ID" required:"true" doc:"Authenticated owner UUID"`
}

// ListCategoriesResponseBody is the response body for listing categories.
type ListCategoriesResponseBody struct {
	Categories []Category `json:"categories" doc:"Categories ordered by name"`
}

// ListCategoriesOutput is the Huma output for listing categories.
type ListCategoriesOutput struct {
	Body ListCategoriesResponseBody
}

type categoryLister interface {
	ListCategories(ctx context.Context, ownerID uuid.UUID) ([]service.Category, error)
}

// ListCategoriesHandler handles GET /v1/category.
type ListCategoriesHandler struct {
	CategoryService categoryLister
}

func NewListCategoriesHandler(svc categoryLister) *ListCategoriesHandler {
	return &ListCategoriesHandler{CategoryService: svc}
}

// Register registers the list categories endpoint with the Huma API.
func (h *ListCategoriesHandler) Register(api huma.API) {
	op := huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/v1/category",
		Summary:     "List categories",
		Tags:        []string{"Categories"},
	}
	ratelimit.Classify(&op, ratelimit.ClassRead)
	huma.Register(api, op, h.handle)
}

func (h *ListCategoriesHandler) handle(ctx context.Context, input *ListCategoriesInput) (*ListCategoriesOutput, error) {
	owner, err := common.ParseOwner(input.OwnerID)
	if err != nil {
		return nil, err
	}

	categories, err := h.CategoryService.ListCategories(ctx, owner)
	if err != nil {
		return nil, common.ServiceError(err, "failed to list categories")
	}
	logging.GetLogData(ctx).AddData("categoryCount", len(categories))

	resp := ListCategoriesResponseBody{Categories: make([]Category, len(categories))}
	for i, c := range categories {
		resp.Categories[i] = toCategory(c)
	}
	return &ListCategoriesOutput{Body: resp}, nil
}
