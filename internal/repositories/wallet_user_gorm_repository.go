package repositories

import (
	"fmt"
	"strings"

	"galeria/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMWalletUserRepository is a GORM implementation of WalletUserRepository.
type GORMWalletUserRepository struct {
	db *gorm.DB
}

// NewGORMWalletUserRepository creates a new instance of GORMWalletUserRepository.
func NewGORMWalletUserRepository(db *gorm.DB) *GORMWalletUserRepository {
	return &GORMWalletUserRepository{
		db: db,
	}
}

// Create inserts a new wallet user. The wallet address is normalized to
// lower case so lookups are case-insensitive.
func (r *GORMWalletUserRepository) Create(user *models.WalletUser) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.WalletAddress = strings.ToLower(user.WalletAddress)
	user.Email = strings.ToLower(user.Email)
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create wallet user: %w", err)
	}
	return nil
}

// GetByID retrieves a wallet user by their ID.
func (r *GORMWalletUserRepository) GetByID(id string) (*models.WalletUser, error) {
	var user models.WalletUser
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("wallet user with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get wallet user by ID %s: %w", id, err)
	}
	return &user, nil
}

// GetByWalletAddress retrieves a wallet user by their wallet address.
func (r *GORMWalletUserRepository) GetByWalletAddress(address string) (*models.WalletUser, error) {
	var user models.WalletUser
	if err := r.db.First(&user, "wallet_address = ?", strings.ToLower(address)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("wallet user with address %s: %w", address, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get wallet user by address %s: %w", address, err)
	}
	return &user, nil
}

// GetByEmail retrieves a wallet user by their email.
func (r *GORMWalletUserRepository) GetByEmail(email string) (*models.WalletUser, error) {
	var user models.WalletUser
	if err := r.db.First(&user, "email = ?", strings.ToLower(email)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("wallet user with email %s: %w", email, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get wallet user by email %s: %w", email, err)
	}
	return &user, nil
}
