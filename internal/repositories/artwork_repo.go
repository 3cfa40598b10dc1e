package repositories

import (
	"galeria/internal/models"
)

// ArtworkRepository defines the slice of the catalog the settlement core
// touches: the availability flag and the price, nothing more. Catalog CRUD
// belongs to the content-management service.
type ArtworkRepository interface {
	GetByID(id string) (*models.Artwork, error)
	Create(artwork *models.Artwork) error
	Update(artwork *models.Artwork) error
}
