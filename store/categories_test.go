package store

import (
	"testing"

	"bloomsnursery/apperr"
	"bloomsnursery/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryDeleteBlockedWhenReferenced(t *testing.T) {
	database := newTestDB(t)
	cats := NewCategoryStore(database)

	cat := mustCreateCategory(t, database, "Succulents", true)
	mustCreateProduct(t, database, models.Product{
		Category:    "Succulents",
		ProductName: "Echeveria",
		Price:       12.50,
		Stock:       3,
		Available:   true,
		Images:      models.ImageList{"/uploads/echeveria.jpg"},
	})
	mustCreateProduct(t, database, models.Product{
		Category:    "Succulents",
		ProductName: "Aloe Vera",
		Price:       8.00,
		Stock:       5,
		Available:   true,
		Images:      models.ImageList{"/uploads/aloe.jpg"},
	})
	require.NoError(t, database.Create(&models.Featured{
		Category: "Succulents",
		Images:   models.ImageList{"/uploads/banner.jpg"},
		Show:     true,
	}).Error)

	deleted, err := cats.Delete(ctx(), cat.ID)
	require.Error(t, err)
	assert.Nil(t, deleted)
	assert.True(t, apperr.IsConflict(err))
	assert.Contains(t, err.Error(), "1 featured items")
	assert.Contains(t, err.Error(), "2 products")

	// the row must survive the refused delete
	var count int64
	require.NoError(t, database.Model(&models.Category{}).Where("id = ?", cat.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCategoryDeleteUnreferenced(t *testing.T) {
	database := newTestDB(t)
	cats := NewCategoryStore(database)

	cat := mustCreateCategory(t, database, "Bonsai", true)
	// products under a different category must not block the delete
	mustCreateCategory(t, database, "Ferns", true)
	mustCreateProduct(t, database, models.Product{
		Category:    "Ferns",
		ProductName: "Boston Fern",
		Price:       15.00,
		Images:      models.ImageList{"/uploads/fern.jpg"},
	})

	deleted, err := cats.Delete(ctx(), cat.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	assert.Equal(t, "Bonsai", deleted.CategoryName)

	_, err = cats.Get(ctx(), cat.ID)
	assert.True(t, apperr.IsNotFound(err))
}

func TestCategoryDeleteMissing(t *testing.T) {
	database := newTestDB(t)
	cats := NewCategoryStore(database)

	_, err := cats.Delete(ctx(), 999)
	assert.True(t, apperr.IsNotFound(err))
}

func TestCategoryCreateDuplicateName(t *testing.T) {
	database := newTestDB(t)
	cats := NewCategoryStore(database)

	require.NoError(t, cats.Create(ctx(), &models.Category{CategoryName: "Roses", Available: true}))

	// hits the unique index directly, without any pre-check
	err := cats.Create(ctx(), &models.Category{CategoryName: "Roses", Available: true})
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
	assert.Contains(t, err.Error(), `"Roses"`)
}

func TestCategoryNameTaken(t *testing.T) {
	database := newTestDB(t)
	cats := NewCategoryStore(database)

	cat := mustCreateCategory(t, database, "Orchids", true)

	taken, err := cats.NameTaken(ctx(), "Orchids", 0)
	require.NoError(t, err)
	assert.True(t, taken)

	// renaming a category to its own current name is not a collision
	taken, err = cats.NameTaken(ctx(), "Orchids", cat.ID)
	require.NoError(t, err)
	assert.False(t, taken)

	taken, err = cats.NameTaken(ctx(), "Cacti", 0)
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestCategoryExistsAvailable(t *testing.T) {
	database := newTestDB(t)
	cats := NewCategoryStore(database)

	mustCreateCategory(t, database, "Herbs", true)
	mustCreateCategory(t, database, "Trees", false)

	got, err := cats.ExistsAvailable(ctx(), "Herbs")
	require.NoError(t, err)
	assert.True(t, got)

	got, err = cats.ExistsAvailable(ctx(), "Trees")
	require.NoError(t, err)
	assert.False(t, got)

	got, err = cats.ExistsAvailable(ctx(), "Nope")
	require.NoError(t, err)
	assert.False(t, got)
}

func TestCategoryToggleAvailable(t *testing.T) {
	database := newTestDB(t)
	cats := NewCategoryStore(database)

	cat := mustCreateCategory(t, database, "Vines", true)

	toggled, err := cats.ToggleAvailable(ctx(), cat.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Available)

	toggled, err = cats.ToggleAvailable(ctx(), cat.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Available)

	_, err = cats.ToggleAvailable(ctx(), 404)
	assert.True(t, apperr.IsNotFound(err))
}

func TestCategoryStats(t *testing.T) {
	database := newTestDB(t)
	cats := NewCategoryStore(database)

	cat := mustCreateCategory(t, database, "Palms", true)
	mustCreateProduct(t, database, models.Product{
		Category:    "Palms",
		ProductName: "Areca Palm",
		Price:       30.00,
		Images:      models.ImageList{"/uploads/areca.jpg"},
	})

	stats, err := cats.Stats(ctx(), cat.ID)
	require.NoError(t, err)
	assert.Equal(t, "Palms", stats.CategoryName)
	assert.Equal(t, int64(1), stats.ProductsCount)
	assert.Equal(t, int64(0), stats.FeaturedCount)
}
