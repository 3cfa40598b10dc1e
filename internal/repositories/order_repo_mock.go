package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"galeria/internal/models"

	"github.com/google/uuid"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
// When constructed with a MockArtworkRepository, MarkPaid applies both
// mutations under a single lock, mirroring the database transaction of the
// GORM implementation.
type MockOrderRepository struct {
	orders   map[string]models.Order
	artworks *MockArtworkRepository
	mu       sync.RWMutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
// artworks may be nil if MarkPaid is never exercised.
func NewMockOrderRepository(artworks *MockArtworkRepository) *MockOrderRepository {
	return &MockOrderRepository{
		orders:   make(map[string]models.Order),
		artworks: artworks,
	}
}

// Create adds a new order.
func (r *MockOrderRepository) Create(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	order.CreatedAt = time.Now()
	order.UpdatedAt = time.Now()
	r.orders[order.ID] = *order
	return nil
}

// GetByID returns an order by its ID.
func (r *MockOrderRepository) GetByID(id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, fmt.Errorf("order with ID %s: %w", id, ErrNotFound)
	}
	return &order, nil
}

// List returns orders newest-first, optionally filtered by status.
func (r *MockOrderRepository) List(status string, limit int) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orderList := make([]models.Order, 0, len(r.orders))
	for _, order := range r.orders {
		if status != "" && order.Status != status {
			continue
		}
		orderList = append(orderList, order)
	}
	sort.Slice(orderList, func(i, j int) bool {
		return orderList[i].CreatedAt.After(orderList[j].CreatedAt)
	})
	if limit > 0 && len(orderList) > limit {
		orderList = orderList[:limit]
	}
	return orderList, nil
}

// UpdateStatus updates the status of an order.
func (r *MockOrderRepository) UpdateStatus(id string, status string) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, fmt.Errorf("order with ID %s: %w", id, ErrNotFound)
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	r.orders[id] = order
	return &order, nil
}

// MarkPaid applies the paid status, transaction hash, and artwork
// availability flip in one critical section.
func (r *MockOrderRepository) MarkPaid(id string, txHash string, artworkID string) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, fmt.Errorf("order with ID %s: %w", id, ErrNotFound)
	}
	order.Status = models.StatusPaid
	order.TxHash = txHash
	order.UpdatedAt = time.Now()

	if r.artworks != nil {
		if err := r.artworks.setAvailable(artworkID, false); err != nil {
			return nil, err
		}
	}
	r.orders[id] = order
	return &order, nil
}

// LinkShippingAddress stores the shipping-address reference on the order.
func (r *MockOrderRepository) LinkShippingAddress(id string, shippingAddressID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return fmt.Errorf("order with ID %s: %w", id, ErrNotFound)
	}
	order.ShippingAddressID = shippingAddressID
	order.UpdatedAt = time.Now()
	r.orders[id] = order
	return nil
}
