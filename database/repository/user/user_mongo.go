package userRepo

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

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo creates a new instance of UserRepository using MongoDB.
func NewMongoUserRepo() UserRepository {
	repo := &MongoUserRepo{coll: database.DB().Collection("users")}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoUserRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Upsert inserts or updates a user keyed by email and returns the stored record.
func (r *MongoUserRepo) Upsert(user *models.User) (*models.User, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	update := bson.M{
		"$set":         bson.M{"name": user.Name, "updated_at": now},
		"$setOnInsert": bson.M{"email": user.Email, "created_at": now},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var stored models.User
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"email": user.Email}, update, opts).Decode(&stored); err != nil {
		return nil, fmt.Errorf("failed to upsert user with email %s: %w", user.Email, err)
	}
	return &stored, nil
}

// GetByEmail retrieves a user by its email address.
func (r *MongoUserRepo) GetByEmail(email string) (*models.User, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var user models.User
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch user with email %s: %w", email, err)
	}
	return &user, nil
}

// GetAll retrieves all users.
func (r *MongoUserRepo) GetAll() ([]models.User, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	for cursor.Next(ctx) {
		var u models.User
		if err := cursor.Decode(&u); err != nil {
			return nil, fmt.Errorf("failed to decode user: %w", err)
		}
		users = append(users, u)
	}
	return users, nil
}

// SetRole sets the role for the user with the given email. The write is an
// upsert so promoting an address that has never logged in still sticks.
func (r *MongoUserRepo) SetRole(email, role string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	update := bson.M{
		"$set":         bson.M{"role": role, "updated_at": now},
		"$setOnInsert": bson.M{"email": email, "created_at": now},
	}
	opts := options.Update().SetUpsert(true)

	if _, err := r.coll.UpdateOne(ctx, bson.M{"email": email}, update, opts); err != nil {
		return fmt.Errorf("failed to set role for user %s: %w", email, err)
	}
	return nil
}
