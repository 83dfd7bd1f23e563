package service

import (
	"context"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-engine/internal/operator/actions"
	"github.com/carson-networks/budget-engine/internal/storage"
)

// CategoryService handles category business logic.
type CategoryService struct {
	storage   *storage.Storage
	processor ActionProcessor
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(store *storage.Storage, processor ActionProcessor) *CategoryService {
	return &CategoryService{storage: store, processor: processor}
}

// CreateCategory creates a named category. Names are unique per owner.
func (s *CategoryService) CreateCategory(ctx context.Context, create CategoryCreate) (uuid.UUID, error) {
	create.Name = strings.TrimSpace(create.Name)
	create.Icon = strings.TrimSpace(create.Icon)
	if err := validateCategory(create.Name, create.Icon, create.Color); err != nil {
		return uuid.Nil, err
	}

	action := &actions.CreateCategory{
		OwnerID: create.OwnerID,
		Name:    create.Name,
		Icon:    create.Icon,
		Color:   create.Color,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return uuid.Nil, translate(err)
	}
	return action.ID, nil
}

// ListCategories returns an owner's categories ordered by name.
func (s *CategoryService) ListCategories(ctx context.Context, ownerID uuid.UUID) ([]Category, error) {
	rows, err := s.storage.Categories.List(ctx, ownerID)
	if err != nil {
		return nil, translate(err)
	}
	categories := make([]Category, len(rows))
	for i, row := range rows {
		categories[i] = categoryFromStorage(row)
	}
	return categories, nil
}
