package models

import "time"

type Product struct {
	ID          uint      `gorm:"primaryKey" json:"id" csv:"id"`
	Category    string    `gorm:"index;not null" json:"category" csv:"category"`
	ProductName string    `gorm:"not null" json:"product_name" csv:"product_name"`
	Stock       int       `json:"stock" csv:"stock"`
	Price       float64   `json:"price" csv:"price"`
	Available   bool      `json:"available" csv:"available"`
	Images      ImageList `gorm:"type:text;serializer:json" json:"images" csv:"images"`
	Rating      float64   `json:"rating" csv:"rating"`
	Reviews     int       `json:"reviews" csv:"reviews"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at" csv:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at" csv:"updated_at"`
}
