package propertyRepo

import (
	"realtor/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Allowed sort fields and orders; anything else falls back to price/desc.
var (
	allowedSortFields = map[string]string{"price": "price", "area": "area_sqm"}
	allowedSortOrders = map[string]int{"asc": 1, "desc": -1}
)

// buildSearchFilter translates the structured filters into a Mongo filter
// document. Nil criteria are omitted entirely.
func buildSearchFilter(filters models.PropertySearchFilters) bson.M {
	query := bson.M{}

	price := bson.M{}
	if filters.MinPrice != nil {
		price["$gte"] = *filters.MinPrice
	}
	if filters.MaxPrice != nil {
		price["$lte"] = *filters.MaxPrice
	}
	if len(price) > 0 {
		query["price"] = price
	}

	area := bson.M{}
	if filters.MinArea != nil {
		area["$gte"] = *filters.MinArea
	}
	if filters.MaxArea != nil {
		area["$lte"] = *filters.MaxArea
	}
	if len(area) > 0 {
		query["area_sqm"] = area
	}

	if filters.City != nil && *filters.City != "" {
		query["city"] = bson.M{"$regex": *filters.City, "$options": "i"}
	}
	if filters.PropertyType != nil && *filters.PropertyType != "" {
		query["property_type"] = bson.M{"$regex": *filters.PropertyType, "$options": "i"}
	}
	if filters.Bedrooms != nil {
		query["bedrooms"] = *filters.Bedrooms
	}
	if filters.Bathrooms != nil {
		query["bathrooms"] = *filters.Bathrooms
	}
	if len(filters.Amenities) > 0 {
		query["amenities"] = bson.M{"$all": filters.Amenities}
	}

	return query
}

// buildSearchSort resolves the sort specification, falling back to price
// descending when the requested field or order is not allowed.
func buildSearchSort(filters models.PropertySearchFilters) bson.D {
	field := "price"
	if filters.SortBy != nil {
		if f, ok := allowedSortFields[*filters.SortBy]; ok {
			field = f
		}
	}
	order := -1
	if filters.SortOrder != nil {
		if o, ok := allowedSortOrders[*filters.SortOrder]; ok {
			order = o
		}
	}
	return bson.D{{Key: field, Value: order}}
}
