package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-engine/internal/storage/sqlconfig"
)

// -- CreateCategory tests --

func TestCreateCategory_Validation(t *testing.T) {
	tests := map[string]CategoryCreate{
		"empty name":     {Name: ""},
		"blank name":     {Name: "   "},
		"name too long":  {Name: strings.Repeat("a", 51)},
		"icon too long":  {Name: "Food", Icon: strings.Repeat("i", 51)},
		"color no hash":  {Name: "Food", Color: "112233"},
		"color too long": {Name: "Food", Color: "#1122334"},
		"color not hex":  {Name: "Food", Color: "#11223g"},
	}

	for name, create := range tests {
		t.Run(name, func(t *testing.T) {
			h := newTestHarness(t)
			_, err := h.svc.Category.CreateCategory(context.Background(), create)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Zero(t, h.processor.calls)
		})
	}
}

func TestCreateCategory_Success(t *testing.T) {
	h := newTestHarness(t)
	owner := uuid.Must(uuid.NewV4())
	id := uuid.Must(uuid.NewV4())

	h.categories.EXPECT().Insert(mock.Anything, &sqlconfig.CategoryCreate{
		OwnerID: owner,
		Name:    "Groceries",
		Icon:    "cart",
		Color:   "#A1b2C3",
	}).Return(id, nil)

	got, err := h.svc.Category.CreateCategory(context.Background(), CategoryCreate{
		OwnerID: owner,
		Name:    "  Groceries ",
		Icon:    " cart",
		Color:   "#A1b2C3",
	})
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestCreateCategory_Duplicate(t *testing.T) {
	h := newTestHarness(t)
	h.categories.EXPECT().Insert(mock.Anything, mock.Anything).Return(uuid.Nil, sqlconfig.ErrDuplicate)

	_, err := h.svc.Category.CreateCategory(context.Background(), CategoryCreate{Name: "Rent"})
	assert.ErrorIs(t, err, ErrConflict)
}

// -- ListCategories tests --

func TestListCategories(t *testing.T) {
	h := newTestHarness(t)
	owner := uuid.Must(uuid.NewV4())

	h.categories.EXPECT().List(mock.Anything, owner).Return([]*sqlconfig.Category{
		{ID: uuid.Must(uuid.NewV4()), Name: "Food", Icon: "utensils"},
		{ID: uuid.Must(uuid.NewV4()), Name: "Rent", Color: "#000000"},
	}, nil)

	categories, err := h.svc.Category.ListCategories(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Food", categories[0].Name)
	assert.Equal(t, "utensils", categories[0].Icon)
	assert.Equal(t, "#000000", categories[1].Color)
}

func TestListCategories_StorageError(t *testing.T) {
	h := newTestHarness(t)
	h.categories.EXPECT().List(mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))

	_, err := h.svc.Category.ListCategories(context.Background(), uuid.Must(uuid.NewV4()))
	assert.ErrorIs(t, err, ErrStorage)
}
