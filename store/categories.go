package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"bloomsnursery/apperr"
	"bloomsnursery/models"

	"gorm.io/gorm"
)

// CategoryStats is a category row with its usage counts.
type CategoryStats struct {
	models.Category
	FeaturedCount int64 `json:"featured_count"`
	ProductsCount int64 `json:"products_count"`
}

type CategoryStore interface {
	All(ctx context.Context) ([]models.Category, error)
	Available(ctx context.Context) ([]models.Category, error)
	Get(ctx context.Context, id uint) (*models.Category, error)
	ByName(ctx context.Context, name string) (*models.Category, error)
	Search(ctx context.Context, term string) ([]models.Category, error)
	// ExistsAvailable reports whether name resolves to an available category.
	// Product and Featured reference categories by this name.
	ExistsAvailable(ctx context.Context, name string) (bool, error)
	NameTaken(ctx context.Context, name string, excludeID uint) (bool, error)
	Create(ctx context.Context, cat *models.Category) error
	Save(ctx context.Context, cat *models.Category) error
	ToggleAvailable(ctx context.Context, id uint) (*models.Category, error)
	Stats(ctx context.Context, id uint) (*CategoryStats, error)
	Delete(ctx context.Context, id uint) (*models.Category, error)
}

type categoryStore struct {
	db *gorm.DB
}

var _ CategoryStore = (*categoryStore)(nil)

func NewCategoryStore(db *gorm.DB) CategoryStore {
	return &categoryStore{db: db}
}

func (s *categoryStore) All(ctx context.Context) ([]models.Category, error) {
	var cats []models.Category
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&cats).Error
	return cats, err
}

func (s *categoryStore) Available(ctx context.Context) ([]models.Category, error) {
	var cats []models.Category
	err := s.db.WithContext(ctx).
		Where("available = ?", true).
		Order("created_at DESC").
		Find(&cats).Error
	return cats, err
}

func (s *categoryStore) Get(ctx context.Context, id uint) (*models.Category, error) {
	var cat models.Category
	if err := s.db.WithContext(ctx).First(&cat, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("category", strconv.FormatUint(uint64(id), 10))
		}
		return nil, err
	}
	return &cat, nil
}

func (s *categoryStore) ByName(ctx context.Context, name string) (*models.Category, error) {
	var cat models.Category
	if err := s.db.WithContext(ctx).Where("category_name = ?", name).First(&cat).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("category", name)
		}
		return nil, err
	}
	return &cat, nil
}

func (s *categoryStore) Search(ctx context.Context, term string) ([]models.Category, error) {
	var cats []models.Category
	err := s.db.WithContext(ctx).
		Where("category_name LIKE ?", "%"+term+"%").
		Order("category_name").
		Find(&cats).Error
	return cats, err
}

func (s *categoryStore) ExistsAvailable(ctx context.Context, name string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Category{}).
		Where("category_name = ? AND available = ?", name, true).
		Count(&count).Error
	return count > 0, err
}

func (s *categoryStore) NameTaken(ctx context.Context, name string, excludeID uint) (bool, error) {
	q := s.db.WithContext(ctx).Model(&models.Category{}).Where("category_name = ?", name)
	if excludeID != 0 {
		q = q.Where("id != ?", excludeID)
	}
	var count int64
	err := q.Count(&count).Error
	return count > 0, err
}

func (s *categoryStore) Create(ctx context.Context, cat *models.Category) error {
	if err := s.db.WithContext(ctx).Create(cat).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.NewConflict(fmt.Sprintf("category %q already exists", cat.CategoryName))
		}
		return err
	}
	return nil
}

func (s *categoryStore) Save(ctx context.Context, cat *models.Category) error {
	return s.db.WithContext(ctx).Save(cat).Error
}

func (s *categoryStore) ToggleAvailable(ctx context.Context, id uint) (*models.Category, error) {
	result := s.db.WithContext(ctx).Model(&models.Category{}).
		Where("id = ?", id).
		Update("available", gorm.Expr("NOT available"))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, apperr.NewNotFound("category", strconv.FormatUint(uint64(id), 10))
	}
	return s.Get(ctx, id)
}

func (s *categoryStore) Stats(ctx context.Context, id uint) (*CategoryStats, error) {
	cat, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	stats := CategoryStats{Category: *cat}
	if err := s.db.WithContext(ctx).Model(&models.Featured{}).
		Where("category = ?", cat.CategoryName).
		Count(&stats.FeaturedCount).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&models.Product{}).
		Where("category = ?", cat.CategoryName).
		Count(&stats.ProductsCount).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}

// Delete removes a category only when nothing references its name. The count
// and the delete run in one transaction so they observe the same snapshot;
// an insert committed after the transaction is an accepted race.
func (s *categoryStore) Delete(ctx context.Context, id uint) (*models.Category, error) {
	var cat models.Category
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&cat, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NewNotFound("category", strconv.FormatUint(uint64(id), 10))
			}
			return err
		}

		var featuredCount, productsCount int64
		if err := tx.Model(&models.Featured{}).
			Where("category = ?", cat.CategoryName).
			Count(&featuredCount).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Product{}).
			Where("category = ?", cat.CategoryName).
			Count(&productsCount).Error; err != nil {
			return err
		}

		if featuredCount > 0 || productsCount > 0 {
			return apperr.NewConflict(fmt.Sprintf(
				"cannot delete category: it is being used in %d featured items and %d products",
				featuredCount, productsCount))
		}

		return tx.Delete(&models.Category{}, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &cat, nil
}
