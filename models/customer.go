package models

import "time"

// Customer holds a storefront order request. ProductName is free text typed
// by the customer, not a reference into the products table.
type Customer struct {
	ID              uint      `gorm:"primaryKey" json:"id" csv:"id"`
	Name            string    `gorm:"not null" json:"name" csv:"name"`
	Email           string    `gorm:"not null" json:"email" csv:"email"`
	Mobile          string    `gorm:"not null" json:"mobile" csv:"mobile"`
	ProductName     string    `json:"product_name" csv:"product_name"`
	Quantity        int       `json:"quantity" csv:"quantity"`
	DeliveryAddress string    `json:"delivery_address" csv:"delivery_address"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at" csv:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at" csv:"updated_at"`
}
