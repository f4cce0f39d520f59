package models

import "time"

// Category is referenced from Product and Featured by name, not by id.
// The lookup enforcing that reference lives in the store layer.
type Category struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CategoryName string    `gorm:"uniqueIndex;not null" json:"category_name"`
	Available    bool      `json:"available"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
