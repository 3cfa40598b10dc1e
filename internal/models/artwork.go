package models

import "gorm.io/gorm"

// Artwork is the sold-once catalog entity. The settlement core only reads
// the availability flag at checkout and clears it on first successful
// payment; everything else on the record belongs to the catalog service.
type Artwork struct {
	ID         string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title      string  `json:"title" validate:"required,min=1,max=255"`
	PriceUSD   float64 `json:"price_usd" validate:"required,gt=0"`
	Available  bool    `json:"available"`
	gorm.Model         // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
