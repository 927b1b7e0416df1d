package categories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/model/kv"
	"max.ks1230/expense-tracker/internal/model/storage"
)

type localeConfig string

func (c localeConfig) Locale() string { return string(c) }

func Test_OnLookupMissingId_ShouldReturnFallbackLabel(t *testing.T) {
	catalog := NewCatalog([]expense.Category{{ID: "c1", Name: "Food", DisplayName: "餐饮", Color: "orange"}})

	assert.Equal(t, "餐饮", catalog.Lookup("c1").Name)
	assert.Equal(t, expense.FallbackChartColor, catalog.Lookup("c1").ChartColor)

	missing := catalog.Lookup("deleted")
	assert.Equal(t, expense.FallbackName, missing.Name)
	assert.Equal(t, expense.FallbackColor, missing.Color)

	var empty *Catalog
	assert.Equal(t, expense.FallbackName, empty.Lookup("c1").Name)
}

func Test_OnNewCatalog_ShouldBuildTreeByParent(t *testing.T) {
	catalog := NewCatalog([]expense.Category{
		{ID: "coffee", ParentID: "food", Name: "Coffee", Level: 1},
		{ID: "transport", Name: "Transport", SortOrder: 2},
		{ID: "food", Name: "Food", SortOrder: 1},
		{ID: "orphan", ParentID: "gone", Name: "Orphan", Level: 1},
	})

	roots := catalog.Roots()
	require.Len(t, roots, 3)
	assert.Equal(t, "food", roots[0].ID)
	assert.Equal(t, "transport", roots[1].ID)
	assert.Equal(t, "orphan", roots[2].ID)
	require.Len(t, roots[0].Children, 1)
	assert.Equal(t, "coffee", roots[0].Children[0].ID)

	found, ok := catalog.ByName("Coffee")
	assert.True(t, ok)
	assert.Equal(t, "coffee", found.ID)
}

func Test_OnEnsureForUser_ShouldCreateDefaultsOnce(t *testing.T) {
	ctx := context.Background()
	gw := storage.NewLocalStorage(ctx, kv.NewMemoryStore())
	service := NewService(gw, localeConfig("en"))

	created, err := service.EnsureForUser(ctx, "user-a")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = service.EnsureForUser(ctx, "user-a")
	require.NoError(t, err)
	assert.False(t, created)

	catalog, err := service.Tree(ctx, "user-a")
	require.NoError(t, err)
	assert.Equal(t, 5, catalog.Len())
	assert.Equal(t, "Food", catalog.Roots()[0].DisplayName)
}

func Test_OnEnsureForAnonymous_ShouldDoNothing(t *testing.T) {
	ctx := context.Background()
	gw := storage.NewLocalStorage(ctx, kv.NewMemoryStore())

	created, err := NewService(gw, localeConfig("en")).EnsureForUser(ctx, "")

	require.NoError(t, err)
	assert.False(t, created)
}
