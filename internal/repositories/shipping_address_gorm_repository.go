package repositories

import (
	"fmt"

	"galeria/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMShippingAddressRepository is a GORM implementation of
// ShippingAddressRepository.
type GORMShippingAddressRepository struct {
	db *gorm.DB
}

// NewGORMShippingAddressRepository creates a new instance of
// GORMShippingAddressRepository.
func NewGORMShippingAddressRepository(db *gorm.DB) *GORMShippingAddressRepository {
	return &GORMShippingAddressRepository{
		db: db,
	}
}

// Create inserts a new shipping address.
func (r *GORMShippingAddressRepository) Create(address *models.ShippingAddress) error {
	if address.ID == "" {
		address.ID = uuid.New().String()
	}
	if err := r.db.Create(address).Error; err != nil {
		return fmt.Errorf("failed to create shipping address: %w", err)
	}
	return nil
}

// GetByID retrieves a shipping address by its ID.
func (r *GORMShippingAddressRepository) GetByID(id string) (*models.ShippingAddress, error) {
	var address models.ShippingAddress
	if err := r.db.First(&address, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("shipping address with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get shipping address by ID %s: %w", id, err)
	}
	return &address, nil
}
