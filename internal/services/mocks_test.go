package services_test

import (
	"context"
	"fmt"

	"galeria/internal/chain"
	"galeria/internal/models"
	"galeria/internal/repositories"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
)

// MockOrderRepo is a mock implementation of repositories.OrderRepository.
type MockOrderRepo struct {
	mock.Mock
}

func (m *MockOrderRepo) Create(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepo) GetByID(id string) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepo) List(status string, limit int) ([]models.Order, error) {
	args := m.Called(status, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepo) UpdateStatus(id string, status string) (*models.Order, error) {
	args := m.Called(id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepo) MarkPaid(id string, txHash string, artworkID string) (*models.Order, error) {
	args := m.Called(id, txHash, artworkID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepo) LinkShippingAddress(id string, shippingAddressID string) error {
	args := m.Called(id, shippingAddressID)
	return args.Error(0)
}

// MockArtworkRepo is a mock implementation of repositories.ArtworkRepository.
type MockArtworkRepo struct {
	mock.Mock
}

func (m *MockArtworkRepo) GetByID(id string) (*models.Artwork, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Artwork), args.Error(1)
}

func (m *MockArtworkRepo) Create(artwork *models.Artwork) error {
	args := m.Called(artwork)
	return args.Error(0)
}

func (m *MockArtworkRepo) Update(artwork *models.Artwork) error {
	args := m.Called(artwork)
	return args.Error(0)
}

// MockWalletUserRepo is a mock implementation of
// repositories.WalletUserRepository.
type MockWalletUserRepo struct {
	mock.Mock
}

func (m *MockWalletUserRepo) Create(user *models.WalletUser) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockWalletUserRepo) GetByID(id string) (*models.WalletUser, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WalletUser), args.Error(1)
}

func (m *MockWalletUserRepo) GetByWalletAddress(address string) (*models.WalletUser, error) {
	args := m.Called(address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WalletUser), args.Error(1)
}

func (m *MockWalletUserRepo) GetByEmail(email string) (*models.WalletUser, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WalletUser), args.Error(1)
}

// MockShippingAddressRepo is a mock implementation of
// repositories.ShippingAddressRepository.
type MockShippingAddressRepo struct {
	mock.Mock
}

func (m *MockShippingAddressRepo) Create(address *models.ShippingAddress) error {
	args := m.Called(address)
	return args.Error(0)
}

func (m *MockShippingAddressRepo) GetByID(id string) (*models.ShippingAddress, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ShippingAddress), args.Error(1)
}

// MockEventPublisher is a mock implementation of
// services.SettlementEventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishOrderPaid(eventData map[string]interface{}) error {
	args := m.Called(eventData)
	return args.Error(0)
}

// fakeReceiptClient returns a canned receipt (or error) and counts how many
// times the chain was queried.
type fakeReceiptClient struct {
	receipt *chain.Receipt
	err     error
	calls   int
}

func (f *fakeReceiptClient) GetReceipt(ctx context.Context, txHash common.Hash) (*chain.Receipt, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.receipt, nil
}

// notFoundErr mimics the wrapped sentinel the repositories return for an
// absent record.
func notFoundErr(what, id string) error {
	return fmt.Errorf("%s with ID %s: %w", what, id, repositories.ErrNotFound)
}
