package serviceRepo

import (
	"context"
	"fmt"
	"time"

	"docportal/database"
	"docportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoServiceRepo implements ServiceRepository using MongoDB.
type MongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo creates a new instance of ServiceRepository using MongoDB.
func NewMongoServiceRepo() ServiceRepository {
	return &MongoServiceRepo{coll: database.DB().Collection("services")}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoServiceRepo) getAllWithProjection(projection bson.M) ([]models.Service, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find()
	if projection != nil {
		opts.SetProjection(projection)
	}

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	for cursor.Next(ctx) {
		var s models.Service
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode service: %w", err)
		}
		services = append(services, s)
	}
	return services, nil
}

// GetAll retrieves all services (full documents).
func (r *MongoServiceRepo) GetAll() ([]models.Service, error) {
	return r.getAllWithProjection(nil)
}

// GetAllNames retrieves all services projected to the name field.
func (r *MongoServiceRepo) GetAllNames() ([]models.Service, error) {
	return r.getAllWithProjection(bson.M{"name": 1})
}
