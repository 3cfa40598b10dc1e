package repositories

import (
	"galeria/internal/models"
)

// WalletUserRepository defines the interface for wallet-user data access.
type WalletUserRepository interface {
	Create(user *models.WalletUser) error
	GetByID(id string) (*models.WalletUser, error)
	GetByWalletAddress(address string) (*models.WalletUser, error)
	GetByEmail(email string) (*models.WalletUser, error)
}
