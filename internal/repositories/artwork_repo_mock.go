package repositories

import (
	"fmt"
	"sync"
	"time"

	"galeria/internal/models"

	"github.com/google/uuid"
)

// MockArtworkRepository is an in-memory implementation of ArtworkRepository.
type MockArtworkRepository struct {
	artworks map[string]models.Artwork
	mu       sync.RWMutex
}

// NewMockArtworkRepository creates a new instance of MockArtworkRepository.
func NewMockArtworkRepository() *MockArtworkRepository {
	return &MockArtworkRepository{
		artworks: make(map[string]models.Artwork),
	}
}

// GetByID returns an artwork by its ID.
func (r *MockArtworkRepository) GetByID(id string) (*models.Artwork, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	artwork, ok := r.artworks[id]
	if !ok {
		return nil, fmt.Errorf("artwork with ID %s: %w", id, ErrNotFound)
	}
	return &artwork, nil
}

// Create adds a new artwork.
func (r *MockArtworkRepository) Create(artwork *models.Artwork) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if artwork.ID == "" {
		artwork.ID = uuid.New().String()
	}
	artwork.CreatedAt = time.Now()
	artwork.UpdatedAt = time.Now()
	r.artworks[artwork.ID] = *artwork
	return nil
}

// Update replaces an existing artwork.
func (r *MockArtworkRepository) Update(artwork *models.Artwork) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.artworks[artwork.ID]; !ok {
		return fmt.Errorf("artwork with ID %s: %w", artwork.ID, ErrNotFound)
	}
	artwork.UpdatedAt = time.Now()
	r.artworks[artwork.ID] = *artwork
	return nil
}

// setAvailable flips the availability flag. Called by MockOrderRepository
// from inside its MarkPaid critical section.
func (r *MockArtworkRepository) setAvailable(id string, available bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	artwork, ok := r.artworks[id]
	if !ok {
		return fmt.Errorf("artwork with ID %s: %w", id, ErrNotFound)
	}
	artwork.Available = available
	artwork.UpdatedAt = time.Now()
	r.artworks[id] = artwork
	return nil
}
