package propertyRepo

import (
	"context"

	"realtor/models"
)

// PropertyRepository defines methods for listing data access.
type PropertyRepository interface {
	// GetByID retrieves a property by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Property, error)
	// Search returns listings matching the given filters, up to limit.
	Search(ctx context.Context, filters models.PropertySearchFilters, limit int) ([]models.Property, error)
}
