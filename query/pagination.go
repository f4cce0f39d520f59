package query

import (
	"math"

	"gorm.io/gorm"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// PageRequest is a normalized page/limit pair.
type PageRequest struct {
	Page  int
	Limit int
}

// NewPageRequest applies the defaults for out-of-range values.
func NewPageRequest(page, limit int) PageRequest {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	return PageRequest{Page: page, Limit: limit}
}

func (r PageRequest) Offset() int {
	return (r.Page - 1) * r.Limit
}

// Pagination is the navigation metadata returned next to a result page.
type Pagination struct {
	Page    int   `json:"page"`
	Limit   int   `json:"limit"`
	Total   int64 `json:"total"`
	Pages   int   `json:"pages"`
	HasNext bool  `json:"hasNext"`
	HasPrev bool  `json:"hasPrev"`
}

// NewPagination derives the metadata from a request and a total row count.
// A page past the end reports the true total with an empty result set.
func NewPagination(req PageRequest, total int64) Pagination {
	pages := int(math.Ceil(float64(total) / float64(req.Limit)))
	return Pagination{
		Page:    req.Page,
		Limit:   req.Limit,
		Total:   total,
		Pages:   pages,
		HasNext: req.Page < pages,
		HasPrev: req.Page > 1,
	}
}

// Paginate issues the count query and the bounded data query over the same
// predicate, ordered by creation time descending, and fills dest with at most
// req.Limit rows.
func Paginate(db *gorm.DB, model any, b *Builder, req PageRequest, dest any) (Pagination, error) {
	q := b.Apply(db.Model(model))

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return Pagination{}, err
	}

	if err := q.Order("created_at DESC").
		Offset(req.Offset()).
		Limit(req.Limit).
		Find(dest).Error; err != nil {
		return Pagination{}, err
	}

	return NewPagination(req, total), nil
}
