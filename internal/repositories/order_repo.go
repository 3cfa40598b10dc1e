package repositories

import (
	"errors"

	"galeria/internal/models"
)

// ErrNotFound is wrapped by every repository when a record is absent.
var ErrNotFound = errors.New("record not found")

// OrderRepository defines the interface for order data access.
// Orders are never deleted; they are the settlement audit trail.
type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id string) (*models.Order, error)
	// List returns orders newest-first, optionally filtered by status,
	// bounded by limit.
	List(status string, limit int) ([]models.Order, error)
	UpdateStatus(id string, status string) (*models.Order, error)
	// MarkPaid sets the order to paid with its transaction hash and clears
	// the artwork's availability flag as a single atomic unit. A payment
	// recorded without the artwork flipped (or vice versa) is a torn state.
	MarkPaid(id string, txHash string, artworkID string) (*models.Order, error)
	// LinkShippingAddress stores the shipping-address reference on the order.
	LinkShippingAddress(id string, shippingAddressID string) error
}
