// File: services/intelligence/parser_test.go
package ai

import (
	"testing"

	"realtor/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeModelJSONValidPayload(t *testing.T) {
	raw := `{"city": "Cairo", "max_price": 300000, "bedrooms": 2, "amenities": ["pool", "gym"]}`

	var filters models.PropertySearchFilters
	require.NoError(t, decodeModelJSON(raw, &filters))
	require.NotNil(t, filters.City)
	assert.Equal(t, "Cairo", *filters.City)
	require.NotNil(t, filters.MaxPrice)
	assert.Equal(t, 300000.0, *filters.MaxPrice)
	require.NotNil(t, filters.Bedrooms)
	assert.Equal(t, 2, *filters.Bedrooms)
	assert.Equal(t, []string{"pool", "gym"}, filters.Amenities)
}

func TestDecodeModelJSONRepairsFencedOutput(t *testing.T) {
	// Models sometimes wrap JSON in markdown fences despite JSON response mode.
	raw := "```json\n{\"city\": \"Giza\", \"property_type\": \"apartment\",}\n```"

	var filters models.PropertySearchFilters
	require.NoError(t, decodeModelJSON(raw, &filters))
	require.NotNil(t, filters.City)
	assert.Equal(t, "Giza", *filters.City)
	require.NotNil(t, filters.PropertyType)
	assert.Equal(t, "apartment", *filters.PropertyType)
}

func TestDecodeModelJSONRepairsSingleQuotes(t *testing.T) {
	raw := `{'sort_by': 'price', 'sort_order': 'desc'}`

	var filters models.PropertySearchFilters
	require.NoError(t, decodeModelJSON(raw, &filters))
	require.NotNil(t, filters.SortBy)
	assert.Equal(t, "price", *filters.SortBy)
	require.NotNil(t, filters.SortOrder)
	assert.Equal(t, "desc", *filters.SortOrder)
}

func TestDecodeModelJSONRejectsNonJSON(t *testing.T) {
	var filters models.PropertySearchFilters
	err := decodeModelJSON("I could not parse that request, sorry!", &filters)
	assert.Error(t, err)
}
