// Package catalog provides the interface for game-catalog persistence.
package catalog

//go:generate mockgen -destination=mock/mock_repository.go -package=catalogmock github.com/DSestu/MH-Wilds-Tools/internal/repositories/catalog Repository

import (
	"context"
	"time"

	"github.com/DSestu/MH-Wilds-Tools/internal/entities"
)

// Repository defines the interface for catalog persistence. The catalog
// is stored and replaced as a whole: partial gear datasets make solver
// results meaningless.
type Repository interface {
	// Save stores the catalog, replacing any previous version.
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Get retrieves the stored catalog.
	// Returns errors.NotFound if no catalog has been saved yet
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
}

// SaveInput defines the input for saving a catalog
type SaveInput struct {
	Catalog *entities.Catalog
}

// SaveOutput defines the output for saving a catalog
type SaveOutput struct {
	// SavedAt is the storage timestamp recorded with the catalog.
	SavedAt time.Time
}

// GetInput defines the input for getting the catalog
type GetInput struct{}

// GetOutput defines the output for getting the catalog
type GetOutput struct {
	Catalog *entities.Catalog
	// SavedAt is when the catalog was last stored.
	SavedAt time.Time
}
