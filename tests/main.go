package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"realtor/database"
	"realtor/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Seeds the properties collection with sample listings for local development.
func main() {
	database.InitDB()
	client := database.MongoClient
	db := client.Database("realtor")
	propertyColl := db.Collection("properties")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if _, err := propertyColl.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear properties collection: %v", err)
	}

	cities := []string{"Cairo", "Giza", "Alexandria", "New Cairo", "6th of October"}
	types := []string{"apartment", "villa", "townhouse", "duplex"}
	amenityPool := []string{"pool", "gym", "garden", "parking", "security", "balcony", "elevator"}
	listingsPerCity := 8

	var docs []interface{}
	serial := 0
	for _, city := range cities {
		for i := 0; i < listingsPerCity; i++ {
			serial++
			propertyType := types[rand.Intn(len(types))]
			bedrooms := 1 + rand.Intn(4)
			area := 60.0 + float64(rand.Intn(240))

			// Price tracks area with some noise so sort-by-price looks realistic.
			price := area*1800 + float64(rand.Intn(50000))

			amenities := make([]string, 0, 3)
			for _, a := range amenityPool {
				if rand.Float64() < 0.4 {
					amenities = append(amenities, a)
				}
			}

			docs = append(docs, models.Property{
				ID:           fmt.Sprintf("prop-%03d", serial),
				Title:        fmt.Sprintf("%s %s #%d", city, propertyType, i+1),
				Description:  fmt.Sprintf("A %d-bedroom %s in %s, %.0f sqm.", bedrooms, propertyType, city, area),
				Price:        price,
				PropertyType: propertyType,
				Bedrooms:     bedrooms,
				Bathrooms:    1 + rand.Intn(bedrooms),
				City:         city,
				AreaSqm:      area,
				ImageURL:     fmt.Sprintf("https://images.example.com/properties/prop-%03d.jpg", serial),
				Amenities:    amenities,
			})
		}
	}

	res, err := propertyColl.InsertMany(ctx, docs)
	if err != nil {
		log.Fatalf("Failed to seed properties: %v", err)
	}
	fmt.Printf("Seeded %d properties across %d cities\n", len(res.InsertedIDs), len(cities))
}
