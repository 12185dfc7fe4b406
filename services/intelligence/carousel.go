// File: services/intelligence/carousel.go
package ai

import (
	"fmt"
	"strings"

	"realtor/models"

	"github.com/google/uuid"
)

// BuildPropertyCarousel renders found listings as a property_carousel UI
// message plus an accompanying assistant line summarizing the applied filters.
func BuildPropertyCarousel(properties []models.Property, filters models.PropertySearchFilters) (*models.UIMessage, string) {
	if len(properties) == 0 {
		return nil, "No properties available to display."
	}

	noun := "properties"
	if len(properties) == 1 {
		noun = "property"
	}
	verb := "match"
	if len(properties) == 1 {
		verb = "matches"
	}
	text := fmt.Sprintf("I found %d %s that %s your criteria:", len(properties), noun, verb)

	if summary := summarizeFilters(filters); summary != "" {
		text += fmt.Sprintf(" (%s)", summary)
	}

	ui := &models.UIMessage{
		ID:   uuid.NewString(),
		Type: "property_carousel",
		Props: map[string]any{
			"properties": properties,
		},
	}
	return ui, text
}

func summarizeFilters(filters models.PropertySearchFilters) string {
	var parts []string
	if filters.City != nil && *filters.City != "" {
		parts = append(parts, "in "+*filters.City)
	}
	if filters.MinPrice != nil || filters.MaxPrice != nil {
		var bounds []string
		if filters.MinPrice != nil {
			bounds = append(bounds, fmt.Sprintf("min $%.0f", *filters.MinPrice))
		}
		if filters.MaxPrice != nil {
			bounds = append(bounds, fmt.Sprintf("max $%.0f", *filters.MaxPrice))
		}
		parts = append(parts, "price range: "+strings.Join(bounds, " - "))
	}
	if filters.Bedrooms != nil {
		parts = append(parts, fmt.Sprintf("%d+ bedrooms", *filters.Bedrooms))
	}
	if filters.PropertyType != nil && *filters.PropertyType != "" {
		parts = append(parts, "type: "+*filters.PropertyType)
	}
	return strings.Join(parts, ", ")
}
