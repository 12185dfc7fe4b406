package propertyRepo

import (
	"context"
	"fmt"
	"time"

	"realtor/database"
	"realtor/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPropertyRepo implements PropertyRepository using MongoDB.
type MongoPropertyRepo struct {
	coll *mongo.Collection
}

// NewMongoPropertyRepo creates a new instance of PropertyRepository using MongoDB.
func NewMongoPropertyRepo() PropertyRepository {
	// Use the "realtor" database and the "properties" collection.
	coll := database.MongoClient.Database("realtor").Collection("properties")
	return &MongoPropertyRepo{coll: coll}
}

func (r *MongoPropertyRepo) GetByID(ctx context.Context, id string) (*models.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	var property models.Property
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&property); err != nil {
		return nil, fmt.Errorf("failed to fetch property with id %s: %w", id, err)
	}
	return &property, nil
}

func (r *MongoPropertyRepo) Search(ctx context.Context, filters models.PropertySearchFilters, limit int) ([]models.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	findOpts := options.Find().
		SetSort(buildSearchSort(filters)).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, buildSearchFilter(filters), findOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to search properties: %w", err)
	}
	defer cursor.Close(ctx)

	var properties []models.Property
	for cursor.Next(ctx) {
		var p models.Property
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode property: %w", err)
		}
		properties = append(properties, p)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("property search cursor error: %w", err)
	}
	return properties, nil
}
