// Package store provides the storage collaborators. Each entity gets an
// interface plus a gorm-backed implementation; all variable input goes
// through gorm parameter binding.
package store

import "gorm.io/gorm"

// Stores bundles the per-entity stores around one shared connection pool.
type Stores struct {
	Products   ProductStore
	Categories CategoryStore
	Featured   FeaturedStore
	Customers  CustomerStore
	Admins     AdminStore
}

// New wires every store to the injected pool handle.
func New(db *gorm.DB) *Stores {
	return &Stores{
		Products:   NewProductStore(db),
		Categories: NewCategoryStore(db),
		Featured:   NewFeaturedStore(db),
		Customers:  NewCustomerStore(db),
		Admins:     NewAdminStore(db),
	}
}
