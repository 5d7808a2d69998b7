package categories_test

import (
	"context"
	"testing"

	"tastelog/internal/domain/categories"
	"tastelog/internal/validate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndName(t *testing.T) {
	store := categories.NewMemoryStore()
	ctx := context.Background()

	beer := &categories.Category{Name: "Beer"}
	require.NoError(t, store.Create(ctx, beer))
	assert.Equal(t, int64(1), beer.ID)

	name, ok := store.Name(beer.ID)
	assert.True(t, ok)
	assert.Equal(t, "Beer", name)

	_, ok = store.Name(999)
	assert.False(t, ok)
}

func TestCreateRejectsBlankName(t *testing.T) {
	store := categories.NewMemoryStore()

	err := store.Create(context.Background(), &categories.Category{Name: "   "})

	var verr *validate.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Violations, 1)
	assert.Equal(t, "Name", verr.Violations[0].Field)
}

func TestCreateDuplicateNameConflicts(t *testing.T) {
	store := categories.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, &categories.Category{Name: "Wine"}))
	err := store.Create(ctx, &categories.Category{Name: "Wine"})
	assert.ErrorIs(t, err, categories.ErrConflict)
}

func TestListOrderedByName(t *testing.T) {
	store := categories.NewMemoryStore()
	ctx := context.Background()

	for _, name := range []string{"Wine", "Beer", "Tea"} {
		require.NoError(t, store.Create(ctx, &categories.Category{Name: name}))
	}

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Beer", list[0].Name)
	assert.Equal(t, "Tea", list[1].Name)
	assert.Equal(t, "Wine", list[2].Name)
}

func TestUpdateAndDelete(t *testing.T) {
	store := categories.NewMemoryStore()
	ctx := context.Background()

	cider := &categories.Category{Name: "Cidre"}
	require.NoError(t, store.Create(ctx, cider))

	cider.Name = "Cider"
	require.NoError(t, store.Update(ctx, cider))

	got, err := store.GetByID(ctx, cider.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cider", got.Name)

	require.NoError(t, store.Delete(ctx, cider.ID))

	_, err = store.GetByID(ctx, cider.ID)
	assert.ErrorIs(t, err, categories.ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, cider.ID), categories.ErrNotFound)
	assert.ErrorIs(t, store.Update(ctx, cider), categories.ErrNotFound)
}

func TestUpdateToExistingNameConflicts(t *testing.T) {
	store := categories.NewMemoryStore()
	ctx := context.Background()

	beer := &categories.Category{Name: "Beer"}
	wine := &categories.Category{Name: "Wine"}
	require.NoError(t, store.Create(ctx, beer))
	require.NoError(t, store.Create(ctx, wine))

	wine.Name = "Beer"
	assert.ErrorIs(t, store.Update(ctx, wine), categories.ErrConflict)
}
