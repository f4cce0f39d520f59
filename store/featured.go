package store

import (
	"context"
	"errors"
	"strconv"

	"bloomsnursery/apperr"
	"bloomsnursery/models"

	"gorm.io/gorm"
)

type FeaturedStore interface {
	All(ctx context.Context) ([]models.Featured, error)
	Active(ctx context.Context) ([]models.Featured, error)
	ByCategory(ctx context.Context, category string) ([]models.Featured, error)
	Get(ctx context.Context, id uint) (*models.Featured, error)
	Create(ctx context.Context, f *models.Featured) error
	Save(ctx context.Context, f *models.Featured) error
	ToggleShow(ctx context.Context, id uint) (*models.Featured, error)
	Delete(ctx context.Context, id uint) (*models.Featured, error)
}

type featuredStore struct {
	db *gorm.DB
}

var _ FeaturedStore = (*featuredStore)(nil)

func NewFeaturedStore(db *gorm.DB) FeaturedStore {
	return &featuredStore{db: db}
}

func (s *featuredStore) All(ctx context.Context) ([]models.Featured, error) {
	var items []models.Featured
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&items).Error
	return items, err
}

func (s *featuredStore) Active(ctx context.Context) ([]models.Featured, error) {
	var items []models.Featured
	err := s.db.WithContext(ctx).
		Where("show = ?", true).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (s *featuredStore) ByCategory(ctx context.Context, category string) ([]models.Featured, error) {
	var items []models.Featured
	err := s.db.WithContext(ctx).
		Where("category = ?", category).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (s *featuredStore) Get(ctx context.Context, id uint) (*models.Featured, error) {
	var item models.Featured
	if err := s.db.WithContext(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("featured item", strconv.FormatUint(uint64(id), 10))
		}
		return nil, err
	}
	return &item, nil
}

func (s *featuredStore) Create(ctx context.Context, f *models.Featured) error {
	return s.db.WithContext(ctx).Create(f).Error
}

func (s *featuredStore) Save(ctx context.Context, f *models.Featured) error {
	return s.db.WithContext(ctx).Save(f).Error
}

func (s *featuredStore) ToggleShow(ctx context.Context, id uint) (*models.Featured, error) {
	result := s.db.WithContext(ctx).Model(&models.Featured{}).
		Where("id = ?", id).
		Update("show", gorm.Expr("NOT show"))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, apperr.NewNotFound("featured item", strconv.FormatUint(uint64(id), 10))
	}
	return s.Get(ctx, id)
}

func (s *featuredStore) Delete(ctx context.Context, id uint) (*models.Featured, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Delete(&models.Featured{}, id).Error; err != nil {
		return nil, err
	}
	return item, nil
}
