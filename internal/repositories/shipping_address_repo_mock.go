package repositories

import (
	"fmt"
	"sync"
	"time"

	"galeria/internal/models"

	"github.com/google/uuid"
)

// MockShippingAddressRepository is an in-memory implementation of
// ShippingAddressRepository.
type MockShippingAddressRepository struct {
	addresses map[string]models.ShippingAddress
	mu        sync.RWMutex
}

// NewMockShippingAddressRepository creates a new instance of
// MockShippingAddressRepository.
func NewMockShippingAddressRepository() *MockShippingAddressRepository {
	return &MockShippingAddressRepository{
		addresses: make(map[string]models.ShippingAddress),
	}
}

// Create adds a new shipping address.
func (r *MockShippingAddressRepository) Create(address *models.ShippingAddress) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if address.ID == "" {
		address.ID = uuid.New().String()
	}
	address.CreatedAt = time.Now()
	address.UpdatedAt = time.Now()
	r.addresses[address.ID] = *address
	return nil
}

// GetByID returns a shipping address by its ID.
func (r *MockShippingAddressRepository) GetByID(id string) (*models.ShippingAddress, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	address, ok := r.addresses[id]
	if !ok {
		return nil, fmt.Errorf("shipping address with ID %s: %w", id, ErrNotFound)
	}
	return &address, nil
}
