package store

import (
	"context"
	"errors"
	"strconv"

	"bloomsnursery/apperr"
	"bloomsnursery/models"

	"gorm.io/gorm"
)

type CustomerStore interface {
	All(ctx context.Context) ([]models.Customer, error)
	Get(ctx context.Context, id uint) (*models.Customer, error)
	Create(ctx context.Context, c *models.Customer) error
	Save(ctx context.Context, c *models.Customer) error
	Delete(ctx context.Context, id uint) error
}

type customerStore struct {
	db *gorm.DB
}

var _ CustomerStore = (*customerStore)(nil)

func NewCustomerStore(db *gorm.DB) CustomerStore {
	return &customerStore{db: db}
}

func (s *customerStore) All(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&customers).Error
	return customers, err
}

func (s *customerStore) Get(ctx context.Context, id uint) (*models.Customer, error) {
	var c models.Customer
	if err := s.db.WithContext(ctx).First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("customer", strconv.FormatUint(uint64(id), 10))
		}
		return nil, err
	}
	return &c, nil
}

func (s *customerStore) Create(ctx context.Context, c *models.Customer) error {
	return s.db.WithContext(ctx).Create(c).Error
}

func (s *customerStore) Save(ctx context.Context, c *models.Customer) error {
	return s.db.WithContext(ctx).Save(c).Error
}

func (s *customerStore) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Customer{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.NewNotFound("customer", strconv.FormatUint(uint64(id), 10))
	}
	return nil
}
