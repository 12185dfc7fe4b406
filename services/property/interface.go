package property

import (
	"context"

	"realtor/models"
)

// SearchService defines methods for querying property listings.
type SearchService interface {
	// Search normalizes the filters and returns matching listings.
	Search(ctx context.Context, filters models.PropertySearchFilters) ([]models.Property, error)
	// GetByID retrieves a single listing.
	GetByID(ctx context.Context, id string) (*models.Property, error)
}
