package services

import (
	"errors"
	"fmt"

	"galeria/internal/models"
	"galeria/internal/repositories"
)

// Default and maximum page sizes for the sales dashboard.
const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// AdminService is the operator-facing reconciliation surface: list orders
// and force a status when something settled outside the normal flow.
type AdminService struct {
	orderRepo repositories.OrderRepository
}

// NewAdminService creates a new AdminService.
func NewAdminService(orderRepo repositories.OrderRepository) *AdminService {
	return &AdminService{
		orderRepo: orderRepo,
	}
}

// SalesSummary aggregates the listed orders for the dashboard header.
type SalesSummary struct {
	TotalOrders   int                `json:"total_orders"`
	TotalUSD      float64            `json:"total_usd"`
	CountByStatus map[string]int     `json:"count_by_status"`
	USDByStatus   map[string]float64 `json:"usd_by_status"`
}

// ListOrders returns orders newest-first, optionally filtered by status,
// plus a totals summary. limit defaults to 50 and is capped at 200.
func (s *AdminService) ListOrders(status string, limit int) ([]models.Order, *SalesSummary, error) {
	if status != "" && !models.IsValidStatus(status) {
		return nil, nil, fmt.Errorf("%w: unknown status %q", ErrInvalidRequest, status)
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	orders, err := s.orderRepo.List(status, limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list orders: %w", err)
	}

	summary := &SalesSummary{
		TotalOrders:   len(orders),
		CountByStatus: make(map[string]int),
		USDByStatus:   make(map[string]float64),
	}
	for _, o := range orders {
		summary.TotalUSD += o.AmountUSD
		summary.CountByStatus[o.Status]++
		summary.USDByStatus[o.Status] += o.AmountUSD
	}
	return orders, summary, nil
}

// SetStatus forces an order's status without chain verification. Intended
// for the shipped/delivered transitions an operator performs by hand.
// The transition may skip forward but never move backward.
func (s *AdminService) SetStatus(orderID, newStatus string) (*models.Order, error) {
	if orderID == "" || newStatus == "" {
		return nil, fmt.Errorf("%w: orderID and status are required", ErrInvalidRequest)
	}
	if !models.IsValidStatus(newStatus) {
		return nil, fmt.Errorf("%w: invalid order status %q", ErrInvalidRequest, newStatus)
	}

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("order %s: %w", orderID, ErrOrderNotFound)
		}
		return nil, fmt.Errorf("failed to load order %s: %w", orderID, err)
	}

	if models.StatusRank(newStatus) < models.StatusRank(order.Status) {
		return nil, fmt.Errorf("order %s is %s: %w", orderID, order.Status, ErrInvalidTransition)
	}

	updated, err := s.orderRepo.UpdateStatus(orderID, newStatus)
	if err != nil {
		return nil, fmt.Errorf("failed to update order status for order %s: %w", orderID, err)
	}
	return updated, nil
}
