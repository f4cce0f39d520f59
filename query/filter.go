// Package query holds the filtered-list building blocks: a typed WHERE
// builder and the pagination engine used by the product listing endpoints.
package query

import (
	"strings"

	"gorm.io/gorm"
)

type condition struct {
	expr string
	args []any
}

// Builder assembles a parameterized WHERE clause from an ordered list of
// (condition, argument) pairs. Arguments are always bound, never
// interpolated, and keep the order their conditions were added in.
type Builder struct {
	conds []condition
}

// Where appends a condition. Conditions without arguments (e.g. "stock > 0")
// contribute no bound parameters.
func (b *Builder) Where(expr string, args ...any) *Builder {
	b.conds = append(b.conds, condition{expr: expr, args: args})
	return b
}

func (b *Builder) Empty() bool { return len(b.conds) == 0 }

// Clause returns the AND-joined fragment and its arguments. An empty builder
// yields the empty string, which matches all rows.
func (b *Builder) Clause() (string, []any) {
	if len(b.conds) == 0 {
		return "", nil
	}
	exprs := make([]string, 0, len(b.conds))
	var args []any
	for _, c := range b.conds {
		exprs = append(exprs, c.expr)
		args = append(args, c.args...)
	}
	return strings.Join(exprs, " AND "), args
}

// Apply attaches the assembled predicate to a gorm query.
func (b *Builder) Apply(tx *gorm.DB) *gorm.DB {
	clause, args := b.Clause()
	if clause == "" {
		return tx
	}
	return tx.Where(clause, args...)
}

// ProductFilters carries the recognized optional filters for product
// listings. Nil fields are left out of the assembled clause entirely rather
// than compared against a default. Cross-field checks (minPrice vs maxPrice)
// belong to the request boundary, not here.
type ProductFilters struct {
	Category  *string
	Available *bool
	MinPrice  *float64
	MaxPrice  *float64
	MinRating *float64
	InStock   bool
}

// Build translates the active filters into a Builder.
func (f ProductFilters) Build() *Builder {
	b := &Builder{}
	if f.Category != nil {
		b.Where("category = ?", *f.Category)
	}
	if f.Available != nil {
		b.Where("available = ?", *f.Available)
	}
	if f.MinPrice != nil {
		b.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		b.Where("price <= ?", *f.MaxPrice)
	}
	if f.MinRating != nil {
		b.Where("rating >= ?", *f.MinRating)
	}
	if f.InStock {
		// literal condition, no bound parameter
		b.Where("stock > 0")
	}
	return b
}
