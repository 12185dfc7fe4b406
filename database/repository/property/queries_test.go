package propertyRepo

import (
	"testing"

	"realtor/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }
func intPtr(n int) *int         { return &n }

func TestBuildSearchFilterEmpty(t *testing.T) {
	query := buildSearchFilter(models.PropertySearchFilters{})
	assert.Empty(t, query)
}

func TestBuildSearchFilterRanges(t *testing.T) {
	query := buildSearchFilter(models.PropertySearchFilters{
		MinPrice: f64Ptr(100000),
		MaxPrice: f64Ptr(500000),
		MinArea:  f64Ptr(80),
	})

	assert.Equal(t, bson.M{"$gte": 100000.0, "$lte": 500000.0}, query["price"])
	assert.Equal(t, bson.M{"$gte": 80.0}, query["area_sqm"])
}

func TestBuildSearchFilterExactAndRegexFields(t *testing.T) {
	query := buildSearchFilter(models.PropertySearchFilters{
		City:         strPtr("Cairo"),
		PropertyType: strPtr("villa"),
		Bedrooms:     intPtr(3),
		Bathrooms:    intPtr(2),
		Amenities:    []string{"pool", "gym"},
	})

	assert.Equal(t, bson.M{"$regex": "Cairo", "$options": "i"}, query["city"])
	assert.Equal(t, bson.M{"$regex": "villa", "$options": "i"}, query["property_type"])
	assert.Equal(t, 3, query["bedrooms"])
	assert.Equal(t, 2, query["bathrooms"])
	assert.Equal(t, bson.M{"$all": []string{"pool", "gym"}}, query["amenities"])
}

func TestBuildSearchSortDefaultsToPriceDesc(t *testing.T) {
	sort := buildSearchSort(models.PropertySearchFilters{})
	assert.Equal(t, bson.D{{Key: "price", Value: -1}}, sort)

	// Unknown values also fall back.
	sort = buildSearchSort(models.PropertySearchFilters{
		SortBy:    strPtr("bedrooms"),
		SortOrder: strPtr("upwards"),
	})
	assert.Equal(t, bson.D{{Key: "price", Value: -1}}, sort)
}

func TestBuildSearchSortMapsAreaField(t *testing.T) {
	sort := buildSearchSort(models.PropertySearchFilters{
		SortBy:    strPtr("area"),
		SortOrder: strPtr("asc"),
	})
	assert.Equal(t, bson.D{{Key: "area_sqm", Value: 1}}, sort)
}
