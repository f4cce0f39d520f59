package store

import (
	"context"
	"testing"

	"bloomsnursery/db"
	"bloomsnursery/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(database))
	return database
}

func mustCreateCategory(t *testing.T, database *gorm.DB, name string, available bool) models.Category {
	t.Helper()
	cat := models.Category{CategoryName: name, Available: available}
	require.NoError(t, database.Create(&cat).Error)
	return cat
}

func mustCreateProduct(t *testing.T, database *gorm.DB, p models.Product) models.Product {
	t.Helper()
	require.NoError(t, database.Create(&p).Error)
	return p
}

func ctx() context.Context { return context.Background() }
