package repository

import (
	"context"

	"plantmon/internal/model"
)

// PlantRepository defines data access for plants.
// No business logic here, strictly persistence operations. Identifiers are
// opaque strings; implementations own the round-trip through the store's
// native identifier type and return ErrInvalidID when it fails.
type PlantRepository interface {
	// List returns all plants.
	List(ctx context.Context) ([]model.Plant, error)

	// FindByID returns a plant by its ID.
	FindByID(ctx context.Context, id string) (*model.Plant, error)

	// Create inserts a new plant and returns the store-assigned ID.
	Create(ctx context.Context, p *model.Plant) (string, error)

	// Update replaces the mutable fields of a plant (everything but the ID).
	Update(ctx context.Context, id string, p *model.Plant) (*UpdateResult, error)

	// SetImageURL updates only the image URL of a plant.
	SetImageURL(ctx context.Context, id, imageURL string) (*UpdateResult, error)

	// Delete removes a plant by ID. It returns ErrNotFound when no plant
	// matched.
	Delete(ctx context.Context, id string) (*DeleteResult, error)
}
