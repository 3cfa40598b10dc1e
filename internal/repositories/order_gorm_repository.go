package repositories

import (
	"fmt"
	"time"

	"galeria/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// Create inserts a new order.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if err := r.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// GetByID retrieves a single order by its ID.
func (r *GORMOrderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.First(&order, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("order with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order by ID %s: %w", id, err)
	}
	return &order, nil
}

// List retrieves orders newest-first, optionally filtered by status.
func (r *GORMOrderRepository) List(status string, limit int) ([]models.Order, error) {
	var orders []models.Order
	q := r.db.Order("created_at DESC").Limit(limit)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus sets the order's status and returns the updated record.
func (r *GORMOrderRepository) UpdateStatus(id string, status string) (*models.Order, error) {
	res := r.db.Model(&models.Order{}).Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "updated_at": time.Now()})
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update order status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("order with ID %s: %w", id, ErrNotFound)
	}
	return r.GetByID(id)
}

// MarkPaid commits the settlement result: the order's paid status and
// transaction hash plus the artwork's cleared availability flag, inside a
// single database transaction.
func (r *GORMOrderRepository) MarkPaid(id string, txHash string, artworkID string) (*models.Order, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Order{}).Where("id = ?", id).
			Updates(map[string]interface{}{
				"status":     models.StatusPaid,
				"tx_hash":    txHash,
				"updated_at": time.Now(),
			})
		if res.Error != nil {
			return fmt.Errorf("failed to mark order paid: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("order with ID %s: %w", id, ErrNotFound)
		}

		res = tx.Model(&models.Artwork{}).Where("id = ?", artworkID).
			Updates(map[string]interface{}{"available": false, "updated_at": time.Now()})
		if res.Error != nil {
			return fmt.Errorf("failed to mark artwork %s unavailable: %w", artworkID, res.Error)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

// LinkShippingAddress stores the shipping-address reference on the order.
func (r *GORMOrderRepository) LinkShippingAddress(id string, shippingAddressID string) error {
	res := r.db.Model(&models.Order{}).Where("id = ?", id).
		Updates(map[string]interface{}{"shipping_address_id": shippingAddressID, "updated_at": time.Now()})
	if res.Error != nil {
		return fmt.Errorf("failed to link shipping address: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order with ID %s: %w", id, ErrNotFound)
	}
	return nil
}
