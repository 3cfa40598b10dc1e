package repositories

import (
	"fmt"

	"galeria/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMArtworkRepository is a GORM implementation of ArtworkRepository.
type GORMArtworkRepository struct {
	db *gorm.DB
}

// NewGORMArtworkRepository creates a new instance of GORMArtworkRepository.
func NewGORMArtworkRepository(db *gorm.DB) *GORMArtworkRepository {
	return &GORMArtworkRepository{
		db: db,
	}
}

// GetByID retrieves a single artwork by its ID.
func (r *GORMArtworkRepository) GetByID(id string) (*models.Artwork, error) {
	var artwork models.Artwork
	if err := r.db.First(&artwork, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("artwork with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get artwork by ID %s: %w", id, err)
	}
	return &artwork, nil
}

// Create inserts a new artwork.
func (r *GORMArtworkRepository) Create(artwork *models.Artwork) error {
	if artwork.ID == "" {
		artwork.ID = uuid.New().String()
	}
	if err := r.db.Create(artwork).Error; err != nil {
		return fmt.Errorf("failed to create artwork: %w", err)
	}
	return nil
}

// Update saves an existing artwork.
func (r *GORMArtworkRepository) Update(artwork *models.Artwork) error {
	res := r.db.Save(artwork)
	if res.Error != nil {
		return fmt.Errorf("failed to update artwork: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("artwork with ID %s: %w", artwork.ID, ErrNotFound)
	}
	return nil
}
