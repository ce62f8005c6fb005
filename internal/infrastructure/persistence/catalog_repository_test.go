package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/quickbite/backend/internal/domain/catalog"
	"github.com/quickbite/backend/internal/domain/shared"
)

// setupCatalogTestDB creates an in-memory SQLite database for testing
func setupCatalogTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&catalog.Restaurant{}, &catalog.Category{}, &catalog.MenuItem{}))
	return db
}

func TestGormCategoryRepository_DuplicateName(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewGormCategoryRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &catalog.Category{Name: "Pizza"}))

	err := repo.Create(ctx, &catalog.Category{Name: "Pizza"})
	assert.ErrorIs(t, err, shared.ErrAlreadyExists)
}

func TestGormCategoryRepository_FindByName(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewGormCategoryRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &catalog.Category{Name: "Sushi"}))

	found, err := repo.FindByName(ctx, "Sushi")
	require.NoError(t, err)
	assert.Equal(t, "Sushi", found.Name)

	_, err = repo.FindByName(ctx, "Burgers")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormMenuItemRepository_FindAllFilters(t *testing.T) {
	db := setupCatalogTestDB(t)
	categories := NewGormCategoryRepository(db)
	items := NewGormMenuItemRepository(db)
	ctx := context.Background()

	pizza := &catalog.Category{Name: "Pizza"}
	require.NoError(t, categories.Create(ctx, pizza))
	drinks := &catalog.Category{Name: "Drinks"}
	require.NoError(t, categories.Create(ctx, drinks))

	require.NoError(t, items.Create(ctx, &catalog.MenuItem{
		RestaurantID: catalog.DefaultRestaurantID, CategoryID: &pizza.ID, Name: "Margherita", Price: 1200,
	}))
	require.NoError(t, items.Create(ctx, &catalog.MenuItem{
		RestaurantID: catalog.DefaultRestaurantID, CategoryID: &pizza.ID, Name: "Pepperoni", Price: 1400,
	}))
	require.NoError(t, items.Create(ctx, &catalog.MenuItem{
		RestaurantID: catalog.DefaultRestaurantID, CategoryID: &drinks.ID, Name: "Cola", Price: 300,
	}))

	all, err := items.FindAll(ctx, catalog.DefaultRestaurantID, catalog.MenuFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byCategory, err := items.FindAll(ctx, catalog.DefaultRestaurantID, catalog.MenuFilter{CategoryID: &pizza.ID})
	require.NoError(t, err)
	assert.Len(t, byCategory, 2)

	bySearch, err := items.FindAll(ctx, catalog.DefaultRestaurantID, catalog.MenuFilter{Search: "Pepp"})
	require.NoError(t, err)
	require.Len(t, bySearch, 1)
	assert.Equal(t, "Pepperoni", bySearch[0].Name)
}

func TestGormMenuItemRepository_Delete(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewGormMenuItemRepository(db)
	ctx := context.Background()

	item := &catalog.MenuItem{RestaurantID: catalog.DefaultRestaurantID, Name: "Soup", Price: 500}
	require.NoError(t, repo.Create(ctx, item))
	require.NoError(t, repo.Delete(ctx, item.ID))

	_, err := repo.FindByID(ctx, item.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, item.ID), shared.ErrNotFound)
}

func TestGormRestaurantRepository_EnsureDefault(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewGormRestaurantRepository(db)
	ctx := context.Background()

	seed := &catalog.Restaurant{ID: catalog.DefaultRestaurantID, Name: "QuickBite"}
	require.NoError(t, repo.EnsureDefault(ctx, seed))
	// Second startup is a no-op.
	require.NoError(t, repo.EnsureDefault(ctx, &catalog.Restaurant{ID: catalog.DefaultRestaurantID, Name: "Other"}))

	found, err := repo.FindByID(ctx, catalog.DefaultRestaurantID)
	require.NoError(t, err)
	assert.Equal(t, "QuickBite", found.Name)
}
