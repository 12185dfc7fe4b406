package models

// Property represents a single listing with a required image URL.
type Property struct {
	ID           string   `bson:"id" json:"id"`
	Title        string   `bson:"title" json:"title"`
	Description  string   `bson:"description,omitempty" json:"description,omitempty"`
	Price        float64  `bson:"price" json:"price"`
	PropertyType string   `bson:"property_type,omitempty" json:"property_type,omitempty"` // e.g., apartment, villa, townhouse
	Bedrooms     int      `bson:"bedrooms,omitempty" json:"bedrooms,omitempty"`
	Bathrooms    int      `bson:"bathrooms,omitempty" json:"bathrooms,omitempty"`
	City         string   `bson:"city,omitempty" json:"city,omitempty"`
	AreaSqm      float64  `bson:"area_sqm,omitempty" json:"area_sqm,omitempty"`
	ImageURL     string   `bson:"image_url" json:"image_url"`
	Amenities    []string `bson:"amenities,omitempty" json:"amenities,omitempty"`
}

// PropertySearchFilters carries the structured search criteria extracted from a
// user query. Nil fields are left to the repository's defaults.
type PropertySearchFilters struct {
	SortBy    *string `json:"sort_by,omitempty"`    // "price" or "area"
	SortOrder *string `json:"sort_order,omitempty"` // "asc" or "desc"

	MinPrice *float64 `json:"min_price,omitempty"`
	MaxPrice *float64 `json:"max_price,omitempty"`

	City         *string  `json:"city,omitempty"`
	Bedrooms     *int     `json:"bedrooms,omitempty"`
	Bathrooms    *int     `json:"bathrooms,omitempty"`
	PropertyType *string  `json:"property_type,omitempty"`
	Amenities    []string `json:"amenities,omitempty"`

	MinArea *float64 `json:"min_area,omitempty"`
	MaxArea *float64 `json:"max_area,omitempty"`
}
