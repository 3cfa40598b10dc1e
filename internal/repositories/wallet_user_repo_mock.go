package repositories

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"galeria/internal/models"

	"github.com/google/uuid"
)

// MockWalletUserRepository is an in-memory implementation of
// WalletUserRepository.
type MockWalletUserRepository struct {
	users map[string]models.WalletUser
	mu    sync.RWMutex
}

// NewMockWalletUserRepository creates a new instance of MockWalletUserRepository.
func NewMockWalletUserRepository() *MockWalletUserRepository {
	return &MockWalletUserRepository{
		users: make(map[string]models.WalletUser),
	}
}

// Create adds a new wallet user.
func (r *MockWalletUserRepository) Create(user *models.WalletUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.WalletAddress = strings.ToLower(user.WalletAddress)
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	r.users[user.ID] = *user
	return nil
}

// GetByID returns a wallet user by their ID.
func (r *MockWalletUserRepository) GetByID(id string) (*models.WalletUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("wallet user with ID %s: %w", id, ErrNotFound)
	}
	return &user, nil
}

// GetByWalletAddress returns a wallet user by their wallet address.
func (r *MockWalletUserRepository) GetByWalletAddress(address string) (*models.WalletUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	address = strings.ToLower(address)
	for _, user := range r.users {
		if user.WalletAddress == address {
			u := user
			return &u, nil
		}
	}
	return nil, fmt.Errorf("wallet user with address %s: %w", address, ErrNotFound)
}

// GetByEmail returns a wallet user by their email.
func (r *MockWalletUserRepository) GetByEmail(email string) (*models.WalletUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	email = strings.ToLower(email)
	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, fmt.Errorf("wallet user with email %s: %w", email, ErrNotFound)
}
