package services

import (
	"errors"
	"fmt"

	"galeria/internal/models"
	"galeria/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// ShippingService captures the buyer's shipping address after settlement.
// The capture step is locked until the order is paid.
type ShippingService struct {
	orderRepo   repositories.OrderRepository
	addressRepo repositories.ShippingAddressRepository
	validate    *validator.Validate
}

// NewShippingService creates a new ShippingService.
func NewShippingService(orderRepo repositories.OrderRepository, addressRepo repositories.ShippingAddressRepository) *ShippingService {
	return &ShippingService{
		orderRepo:   orderRepo,
		addressRepo: addressRepo,
		validate:    validator.New(),
	}
}

// AttachAddressRequest carries the shipping form fields for a paid order.
type AttachAddressRequest struct {
	OrderID    string `json:"order_id" validate:"required"`
	FullName   string `json:"full_name" validate:"required"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code" validate:"required"`
	Country    string `json:"country" validate:"required"`
	Phone      string `json:"phone,omitempty"`
}

// AttachAddress creates the shipping-address record and links it onto the
// order. Fails if the order is unknown or not yet paid.
func (s *ShippingService) AttachAddress(req AttachAddressRequest) (*models.ShippingAddress, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	order, err := s.orderRepo.GetByID(req.OrderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("order %s: %w", req.OrderID, ErrOrderNotFound)
		}
		return nil, fmt.Errorf("failed to load order %s: %w", req.OrderID, err)
	}
	if models.StatusRank(order.Status) < models.StatusRank(models.StatusPaid) {
		return nil, fmt.Errorf("order %s: %w", req.OrderID, ErrOrderNotPaid)
	}

	address := &models.ShippingAddress{
		UserID:     order.BuyerID,
		FullName:   req.FullName,
		Address:    req.Address,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Country:    req.Country,
		Phone:      req.Phone,
	}
	if err := s.addressRepo.Create(address); err != nil {
		return nil, fmt.Errorf("failed to create shipping address: %w", err)
	}
	if err := s.orderRepo.LinkShippingAddress(order.ID, address.ID); err != nil {
		return nil, fmt.Errorf("failed to link shipping address to order %s: %w", order.ID, err)
	}
	return address, nil
}
