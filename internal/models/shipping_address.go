package models

import "gorm.io/gorm"

// ShippingAddress is captured after payment and linked back onto the Order.
type ShippingAddress struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID     string `json:"user_id,omitempty" gorm:"type:varchar(36)"`
	FullName   string `json:"full_name" validate:"required,min=1,max=255"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code" validate:"required"`
	Country    string `json:"country" validate:"required"`
	Phone      string `json:"phone,omitempty"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
