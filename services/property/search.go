package property

import (
	"context"
	"fmt"
	"strings"

	propertyRepo "realtor/database/repository/property"
	"realtor/models"
	"realtor/utils"

	"go.uber.org/zap"
)

// DefaultSearchService is a concrete implementation over the property repository.
type DefaultSearchService struct {
	Repo       propertyRepo.PropertyRepository
	MaxResults int
}

func (s *DefaultSearchService) Search(ctx context.Context, filters models.PropertySearchFilters) ([]models.Property, error) {
	normalized := normalizeFilters(filters)

	limit := s.MaxResults
	if limit <= 0 {
		limit = 10
	}

	properties, err := s.Repo.Search(ctx, normalized, limit)
	if err != nil {
		return nil, fmt.Errorf("property search failed: %w", err)
	}
	return properties, nil
}

func (s *DefaultSearchService) GetByID(ctx context.Context, id string) (*models.Property, error) {
	return s.Repo.GetByID(ctx, id)
}

// normalizeFilters cleans up extracted filters before they reach the
// repository: amenities are trimmed, lowercased and de-blanked; unknown sort
// fields or orders are dropped so the repository falls back to its default;
// inverted ranges are kept but logged, since they may legitimately return
// nothing.
func normalizeFilters(filters models.PropertySearchFilters) models.PropertySearchFilters {
	logger := utils.GetLogger()

	var amenities []string
	for _, a := range filters.Amenities {
		a = strings.ToLower(strings.TrimSpace(a))
		if a != "" {
			amenities = append(amenities, a)
		}
	}
	filters.Amenities = amenities

	if filters.SortBy != nil && *filters.SortBy != "price" && *filters.SortBy != "area" {
		logger.Warn("Ignoring invalid sort_by value", zap.String("sort_by", *filters.SortBy))
		filters.SortBy = nil
	}
	if filters.SortOrder != nil && *filters.SortOrder != "asc" && *filters.SortOrder != "desc" {
		logger.Warn("Ignoring invalid sort_order value", zap.String("sort_order", *filters.SortOrder))
		filters.SortOrder = nil
	}

	if filters.MinPrice != nil && filters.MaxPrice != nil && *filters.MinPrice > *filters.MaxPrice {
		logger.Warn("min_price is greater than max_price, this may return no results",
			zap.Float64("min_price", *filters.MinPrice),
			zap.Float64("max_price", *filters.MaxPrice),
		)
	}
	if filters.MinArea != nil && filters.MaxArea != nil && *filters.MinArea > *filters.MaxArea {
		logger.Warn("min_area is greater than max_area, this may return no results",
			zap.Float64("min_area", *filters.MinArea),
			zap.Float64("max_area", *filters.MaxArea),
		)
	}

	return filters
}
