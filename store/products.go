package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"bloomsnursery/apperr"
	"bloomsnursery/models"
	"bloomsnursery/query"

	"gorm.io/gorm"
)

// StockChange and PriceChange are the rows of a bulk update request.
type StockChange struct {
	ID    uint `json:"id" validate:"required"`
	Stock int  `json:"stock" validate:"gte=0"`
}

type PriceChange struct {
	ID    uint    `json:"id" validate:"required"`
	Price float64 `json:"price" validate:"gte=0"`
}

type ProductStore interface {
	All(ctx context.Context) ([]models.Product, error)
	Page(ctx context.Context, f query.ProductFilters, req query.PageRequest) ([]models.Product, query.Pagination, error)
	Available(ctx context.Context) ([]models.Product, error)
	InStock(ctx context.Context) ([]models.Product, error)
	OutOfStock(ctx context.Context) ([]models.Product, error)
	Featured(ctx context.Context, limit int) ([]models.Product, error)
	LowStock(ctx context.Context, threshold int) ([]models.Product, error)
	Search(ctx context.Context, term string) ([]models.Product, error)
	ByCategory(ctx context.Context, category string) ([]models.Product, error)
	ByPriceRange(ctx context.Context, min, max float64) ([]models.Product, error)
	ByMinRating(ctx context.Context, min float64) ([]models.Product, error)
	Get(ctx context.Context, id uint) (*models.Product, error)
	Create(ctx context.Context, p *models.Product) error
	Save(ctx context.Context, p *models.Product) error
	UpdateStock(ctx context.Context, id uint, stock int) (*models.Product, error)
	UpdatePrice(ctx context.Context, id uint, price float64) (*models.Product, error)
	UpdateRating(ctx context.Context, id uint, rating float64, reviews *int) (*models.Product, error)
	ToggleAvailable(ctx context.Context, id uint) (*models.Product, error)
	BulkUpdateStock(ctx context.Context, changes []StockChange) ([]models.Product, error)
	BulkUpdatePrice(ctx context.Context, changes []PriceChange) ([]models.Product, error)
	Delete(ctx context.Context, id uint) (*models.Product, error)
}

type productStore struct {
	db *gorm.DB
}

var _ ProductStore = (*productStore)(nil)

func NewProductStore(db *gorm.DB) ProductStore {
	return &productStore{db: db}
}

func (s *productStore) All(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&products).Error
	return products, err
}

func (s *productStore) Page(ctx context.Context, f query.ProductFilters, req query.PageRequest) ([]models.Product, query.Pagination, error) {
	var products []models.Product
	pg, err := query.Paginate(s.db.WithContext(ctx), &models.Product{}, f.Build(), req, &products)
	if err != nil {
		return nil, query.Pagination{}, err
	}
	return products, pg, nil
}

func (s *productStore) Available(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := s.db.WithContext(ctx).
		Where("available = ?", true).
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

func (s *productStore) InStock(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := s.db.WithContext(ctx).
		Where("stock > 0 AND available = ?", true).
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

func (s *productStore) OutOfStock(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := s.db.WithContext(ctx).
		Where("stock = 0").
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

// Featured returns the storefront picks: available, in stock, well rated and
// reviewed.
func (s *productStore) Featured(ctx context.Context, limit int) ([]models.Product, error) {
	var products []models.Product
	err := s.db.WithContext(ctx).
		Where("available = ? AND stock > 0 AND rating >= ? AND reviews >= ?", true, 4.0, 10).
		Order("rating DESC, reviews DESC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (s *productStore) LowStock(ctx context.Context, threshold int) ([]models.Product, error) {
	var products []models.Product
	err := s.db.WithContext(ctx).
		Where("stock <= ? AND available = ?", threshold, true).
		Order("stock ASC").
		Find(&products).Error
	return products, err
}

func (s *productStore) Search(ctx context.Context, term string) ([]models.Product, error) {
	var products []models.Product
	err := s.db.WithContext(ctx).
		Where("product_name LIKE ?", "%"+term+"%").
		Order("product_name").
		Find(&products).Error
	return products, err
}

func (s *productStore) ByCategory(ctx context.Context, category string) ([]models.Product, error) {
	var products []models.Product
	err := s.db.WithContext(ctx).
		Where("category = ?", category).
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

func (s *productStore) ByPriceRange(ctx context.Context, min, max float64) ([]models.Product, error) {
	var products []models.Product
	err := s.db.WithContext(ctx).
		Where("price BETWEEN ? AND ? AND available = ?", min, max, true).
		Order("price ASC").
		Find(&products).Error
	return products, err
}

func (s *productStore) ByMinRating(ctx context.Context, min float64) ([]models.Product, error) {
	var products []models.Product
	err := s.db.WithContext(ctx).
		Where("rating >= ? AND available = ?", min, true).
		Order("rating DESC").
		Find(&products).Error
	return products, err
}

func (s *productStore) Get(ctx context.Context, id uint) (*models.Product, error) {
	var p models.Product
	if err := s.db.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("product", strconv.FormatUint(uint64(id), 10))
		}
		return nil, err
	}
	return &p, nil
}

func (s *productStore) Create(ctx context.Context, p *models.Product) error {
	return s.db.WithContext(ctx).Create(p).Error
}

// Save writes the full row. Callers merge the partial request body into the
// stored row first, so omitted fields keep their current values.
func (s *productStore) Save(ctx context.Context, p *models.Product) error {
	return s.db.WithContext(ctx).Save(p).Error
}

func (s *productStore) UpdateStock(ctx context.Context, id uint, stock int) (*models.Product, error) {
	return s.patch(ctx, id, map[string]any{"stock": stock})
}

func (s *productStore) UpdatePrice(ctx context.Context, id uint, price float64) (*models.Product, error) {
	return s.patch(ctx, id, map[string]any{"price": price})
}

func (s *productStore) UpdateRating(ctx context.Context, id uint, rating float64, reviews *int) (*models.Product, error) {
	fields := map[string]any{"rating": rating}
	if reviews != nil {
		fields["reviews"] = *reviews
	}
	return s.patch(ctx, id, fields)
}

func (s *productStore) ToggleAvailable(ctx context.Context, id uint) (*models.Product, error) {
	return s.patch(ctx, id, map[string]any{"available": gorm.Expr("NOT available")})
}

func (s *productStore) patch(ctx context.Context, id uint, fields map[string]any) (*models.Product, error) {
	result := s.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, apperr.NewNotFound("product", strconv.FormatUint(uint64(id), 10))
	}
	return s.Get(ctx, id)
}

// BulkUpdateStock applies every change inside one transaction. Any missing
// row rolls the whole batch back.
func (s *productStore) BulkUpdateStock(ctx context.Context, changes []StockChange) ([]models.Product, error) {
	updated := make([]models.Product, 0, len(changes))
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, ch := range changes {
			var p models.Product
			if err := tx.First(&p, ch.ID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperr.NewNotFound("product", strconv.FormatUint(uint64(ch.ID), 10))
				}
				return err
			}
			if err := tx.Model(&p).Update("stock", ch.Stock).Error; err != nil {
				return fmt.Errorf("update stock for product %d: %w", ch.ID, err)
			}
			p.Stock = ch.Stock
			updated = append(updated, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// BulkUpdatePrice mirrors BulkUpdateStock for prices.
func (s *productStore) BulkUpdatePrice(ctx context.Context, changes []PriceChange) ([]models.Product, error) {
	updated := make([]models.Product, 0, len(changes))
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, ch := range changes {
			var p models.Product
			if err := tx.First(&p, ch.ID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperr.NewNotFound("product", strconv.FormatUint(uint64(ch.ID), 10))
				}
				return err
			}
			if err := tx.Model(&p).Update("price", ch.Price).Error; err != nil {
				return fmt.Errorf("update price for product %d: %w", ch.ID, err)
			}
			p.Price = ch.Price
			updated = append(updated, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *productStore) Delete(ctx context.Context, id uint) (*models.Product, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Delete(&models.Product{}, id).Error; err != nil {
		return nil, err
	}
	return p, nil
}
