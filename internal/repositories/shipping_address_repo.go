package repositories

import (
	"galeria/internal/models"
)

// ShippingAddressRepository defines the interface for shipping-address
// data access.
type ShippingAddressRepository interface {
	Create(address *models.ShippingAddress) error
	GetByID(id string) (*models.ShippingAddress, error)
}
