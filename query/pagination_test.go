package query

import (
	"fmt"
	"testing"
	"time"

	"bloomsnursery/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestNewPageRequestDefaults(t *testing.T) {
	req := NewPageRequest(0, -3)
	assert.Equal(t, DefaultPage, req.Page)
	assert.Equal(t, DefaultLimit, req.Limit)

	req = NewPageRequest(3, 25)
	assert.Equal(t, 3, req.Page)
	assert.Equal(t, 25, req.Limit)
}

func TestPageRequestOffset(t *testing.T) {
	assert.Equal(t, 0, NewPageRequest(1, 10).Offset())
	assert.Equal(t, 10, NewPageRequest(2, 10).Offset())
	assert.Equal(t, 28, NewPageRequest(5, 7).Offset())
}

func TestNewPaginationMetadata(t *testing.T) {
	tests := []struct {
		page, limit int
		total       int64
		wantPages   int
		wantNext    bool
		wantPrev    bool
	}{
		{1, 10, 0, 0, false, false},
		{1, 10, 10, 1, false, false},
		{1, 10, 11, 2, true, false},
		{2, 10, 11, 2, false, true},
		{3, 10, 45, 5, true, true},
		{9, 10, 45, 5, false, true}, // past the end
		{1, 3, 7, 3, true, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("page=%d limit=%d total=%d", tt.page, tt.limit, tt.total), func(t *testing.T) {
			pg := NewPagination(NewPageRequest(tt.page, tt.limit), tt.total)
			assert.Equal(t, tt.wantPages, pg.Pages)
			assert.Equal(t, tt.total, pg.Total)
			assert.Equal(t, tt.wantNext, pg.HasNext)
			assert.Equal(t, tt.wantPrev, pg.HasPrev)
		})
	}
}

func newPaginateDB(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(&models.Product{}))
	return database
}

func seedProducts(t *testing.T, database *gorm.DB, n int) {
	t.Helper()
	base := time.Now().Add(-time.Duration(n) * time.Minute)
	for i := 0; i < n; i++ {
		p := models.Product{
			Category:    "Roses",
			ProductName: fmt.Sprintf("plant-%02d", i),
			Price:       float64(i),
			Stock:       i % 3,
			Available:   true,
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, database.Create(&p).Error)
	}
}

func TestPaginateReturnsNewestFirst(t *testing.T) {
	database := newPaginateDB(t)
	seedProducts(t, database, 5)

	var products []models.Product
	pg, err := Paginate(database, &models.Product{}, &Builder{}, NewPageRequest(1, 3), &products)
	require.NoError(t, err)

	assert.Equal(t, int64(5), pg.Total)
	assert.Equal(t, 2, pg.Pages)
	assert.True(t, pg.HasNext)
	assert.False(t, pg.HasPrev)
	require.Len(t, products, 3)
	assert.Equal(t, "plant-04", products[0].ProductName)
	assert.Equal(t, "plant-02", products[2].ProductName)
}

func TestPaginateSecondPage(t *testing.T) {
	database := newPaginateDB(t)
	seedProducts(t, database, 5)

	var products []models.Product
	pg, err := Paginate(database, &models.Product{}, &Builder{}, NewPageRequest(2, 3), &products)
	require.NoError(t, err)

	assert.False(t, pg.HasNext)
	assert.True(t, pg.HasPrev)
	require.Len(t, products, 2)
	assert.Equal(t, "plant-01", products[0].ProductName)
}

func TestPaginateOffsetPastTotalReportsTrueTotal(t *testing.T) {
	database := newPaginateDB(t)
	seedProducts(t, database, 4)

	var products []models.Product
	pg, err := Paginate(database, &models.Product{}, &Builder{}, NewPageRequest(10, 10), &products)
	require.NoError(t, err)

	assert.Empty(t, products)
	assert.Equal(t, int64(4), pg.Total)
	assert.Equal(t, 1, pg.Pages)
	assert.False(t, pg.HasNext)
	assert.True(t, pg.HasPrev)
}

func TestPaginateEmptyTable(t *testing.T) {
	database := newPaginateDB(t)

	var products []models.Product
	pg, err := Paginate(database, &models.Product{}, &Builder{}, NewPageRequest(1, 10), &products)
	require.NoError(t, err)

	assert.Empty(t, products)
	assert.Equal(t, int64(0), pg.Total)
	assert.Equal(t, 0, pg.Pages)
	assert.False(t, pg.HasNext)
	assert.False(t, pg.HasPrev)
}

func TestPaginateWithFilterCountsFilteredRows(t *testing.T) {
	database := newPaginateDB(t)
	seedProducts(t, database, 6)
	require.NoError(t, database.Create(&models.Product{
		Category:    "Ferns",
		ProductName: "odd one out",
		Available:   true,
	}).Error)

	f := ProductFilters{Category: ptr("Roses")}
	var products []models.Product
	pg, err := Paginate(database, &models.Product{}, f.Build(), NewPageRequest(1, 10), &products)
	require.NoError(t, err)

	assert.Equal(t, int64(6), pg.Total)
	require.Len(t, products, 6)
	for _, p := range products {
		assert.Equal(t, "Roses", p.Category)
	}
}
