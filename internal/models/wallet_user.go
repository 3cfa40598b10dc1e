package models

import "gorm.io/gorm"

// WalletUser is a buyer or operator identified by a wallet address.
// Email and password are optional: orders may be created for wallets that
// never registered. IsAdmin gates the reconciliation endpoints.
type WalletUser struct {
	ID            string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	WalletAddress string `json:"wallet_address" gorm:"uniqueIndex;type:varchar(42)" validate:"required,eth_addr"`
	Email         string `json:"email,omitempty" gorm:"type:varchar(255)" validate:"omitempty,email"`
	Password      string `gorm:"type:varchar(255)"` // No json tag for security
	IsAdmin       bool   `json:"is_admin"`
	gorm.Model           // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
