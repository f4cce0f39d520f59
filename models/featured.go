package models

import "time"

type Featured struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Category  string    `gorm:"index;not null" json:"category"`
	Images    ImageList `gorm:"type:text;serializer:json" json:"images"`
	Show      bool      `json:"show"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
