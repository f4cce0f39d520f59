package store

import (
	"context"
	"errors"
	"strconv"
	"time"

	"bloomsnursery/apperr"
	"bloomsnursery/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DashboardStats aggregates the counters shown on the admin dashboard.
type DashboardStats struct {
	TotalProducts      int64 `json:"total_products"`
	AvailableProducts  int64 `json:"available_products"`
	OutOfStockProducts int64 `json:"out_of_stock_products"`
	TotalCategories    int64 `json:"total_categories"`
	ActiveCategories   int64 `json:"active_categories"`
	FeaturedItems      int64 `json:"featured_items"`
	TotalCustomers     int64 `json:"total_customers"`
}

type AdminStore interface {
	// ByUsername returns an active admin including its password hash.
	ByUsername(ctx context.Context, username string) (*models.Admin, error)
	// Get returns an active admin by id.
	Get(ctx context.Context, id uint) (*models.Admin, error)
	UpdateLastLogin(ctx context.Context, id uint) error
	ChangePassword(ctx context.Context, id uint, newPassword string) error
	// Seed creates or resets the admin account. Used once at startup.
	Seed(ctx context.Context, username, password string) error
	DashboardStats(ctx context.Context) (*DashboardStats, error)
}

type adminStore struct {
	db *gorm.DB
}

var _ AdminStore = (*adminStore)(nil)

func NewAdminStore(db *gorm.DB) AdminStore {
	return &adminStore{db: db}
}

func (s *adminStore) ByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var admin models.Admin
	err := s.db.WithContext(ctx).
		Where("username = ? AND is_active = ?", username, true).
		First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("admin", username)
		}
		return nil, err
	}
	return &admin, nil
}

func (s *adminStore) Get(ctx context.Context, id uint) (*models.Admin, error) {
	var admin models.Admin
	err := s.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("admin", strconv.FormatUint(uint64(id), 10))
		}
		return nil, err
	}
	return &admin, nil
}

func (s *adminStore) UpdateLastLogin(ctx context.Context, id uint) error {
	now := time.Now()
	return s.db.WithContext(ctx).Model(&models.Admin{}).
		Where("id = ?", id).
		Update("last_login", now).Error
}

func (s *adminStore) ChangePassword(ctx context.Context, id uint, newPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	result := s.db.WithContext(ctx).Model(&models.Admin{}).
		Where("id = ?", id).
		Update("password", string(hash))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.NewNotFound("admin", strconv.FormatUint(uint64(id), 10))
	}
	return nil
}

func (s *adminStore) Seed(ctx context.Context, username, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	var admin models.Admin
	err = s.db.WithContext(ctx).Where("username = ?", username).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.db.WithContext(ctx).Create(&models.Admin{
			Username: username,
			Password: string(hash),
			Role:     "admin",
			IsActive: true,
		}).Error
	}
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Model(&admin).
		Updates(map[string]any{"password": string(hash), "is_active": true}).Error
}

func (s *adminStore) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats
	db := s.db.WithContext(ctx)

	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&stats.TotalProducts, db.Model(&models.Product{})},
		{&stats.AvailableProducts, db.Model(&models.Product{}).Where("available = ?", true)},
		{&stats.OutOfStockProducts, db.Model(&models.Product{}).Where("stock = 0")},
		{&stats.TotalCategories, db.Model(&models.Category{})},
		{&stats.ActiveCategories, db.Model(&models.Category{}).Where("available = ?", true)},
		{&stats.FeaturedItems, db.Model(&models.Featured{})},
		{&stats.TotalCustomers, db.Model(&models.Customer{})},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}
	return &stats, nil
}
