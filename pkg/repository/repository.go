package repository

import (
	"context"

	"github.com/m-mizutani/ecotravel/pkg/model"
)

// Repository persists the durable list of saved itineraries. The list is
// read once at store initialization and overwritten wholesale on every
// save or delete, never patched incrementally.
type Repository interface {
	// Load reads the saved itinerary list. A missing list is an empty
	// slice, not an error.
	Load(ctx context.Context) ([]model.Itinerary, error)

	// Save overwrites the saved itinerary list.
	Save(ctx context.Context, itineraries []model.Itinerary) error

	// Close releases any underlying resources
	Close() error
}
