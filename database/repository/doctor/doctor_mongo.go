package doctorRepo

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

// MongoDoctorRepo implements DoctorRepository using MongoDB.
type MongoDoctorRepo struct {
	coll *mongo.Collection
}

// NewMongoDoctorRepo creates a new instance of DoctorRepository using MongoDB.
func NewMongoDoctorRepo() DoctorRepository {
	repo := &MongoDoctorRepo{coll: database.DB().Collection("doctors")}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoDoctorRepo) ensureIndexes() error {
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

// Create inserts a new doctor document.
func (r *MongoDoctorRepo) Create(doctor *models.Doctor) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	doctor.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, doctor); err != nil {
		return fmt.Errorf("failed to create doctor: %w", err)
	}
	return nil
}

// GetAll retrieves all doctors.
func (r *MongoDoctorRepo) GetAll() ([]models.Doctor, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve doctors: %w", err)
	}
	defer cursor.Close(ctx)

	var doctors []models.Doctor
	for cursor.Next(ctx) {
		var d models.Doctor
		if err := cursor.Decode(&d); err != nil {
			return nil, fmt.Errorf("failed to decode doctor: %w", err)
		}
		doctors = append(doctors, d)
	}
	return doctors, nil
}

// GetByEmail retrieves a doctor by its email address.
func (r *MongoDoctorRepo) GetByEmail(email string) (*models.Doctor, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var doctor models.Doctor
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doctor); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch doctor with email %s: %w", email, err)
	}
	return &doctor, nil
}

// DeleteByEmail removes a doctor document by its email.
func (r *MongoDoctorRepo) DeleteByEmail(email string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"email": email})
	if err != nil {
		return fmt.Errorf("failed to delete doctor with email %s: %w", email, err)
	}
	if result.DeletedCount == 0 {
		return ErrDoctorNotFound
	}
	return nil
}
