package bookingRepo

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

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll        *mongo.Collection
	paymentColl *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.DB()
	repo := &MongoBookingRepo{
		coll:        db.Collection("bookings"),
		paymentColl: db.Collection("payments"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates the unique natural-key index that makes duplicate
// bookings impossible even under concurrent identical requests.
func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{
			Keys: bson.D{
				{Key: "treatment", Value: 1},
				{Key: "date", Value: 1},
				{Key: "patient_email", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "date", Value: 1}}},
		{Keys: bson.D{{Key: "patient_email", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new booking document.
func (r *MongoBookingRepo) Create(booking *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	booking.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateBooking
		}
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// GetByID retrieves a booking by its unique ID.
func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &booking, nil
}

// GetByNaturalKey retrieves the booking matching (treatment, date, patient email).
func (r *MongoBookingRepo) GetByNaturalKey(treatment, date, patientEmail string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"treatment":     treatment,
		"date":          date,
		"patient_email": patientEmail,
	}

	var booking models.Booking
	if err := r.coll.FindOne(ctx, filter).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	return &booking, nil
}

func (r *MongoBookingRepo) findAll(filter bson.M) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

// GetByPatient retrieves all bookings for a patient email.
func (r *MongoBookingRepo) GetByPatient(patientEmail string) ([]models.Booking, error) {
	return r.findAll(bson.M{"patient_email": patientEmail})
}

// GetByDate retrieves all bookings for a calendar day.
func (r *MongoBookingRepo) GetByDate(date string) ([]models.Booking, error) {
	return r.findAll(bson.M{"date": date})
}

// SetPaid flags a booking paid and records the transaction id.
func (r *MongoBookingRepo) SetPaid(bookingID, transactionID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"paid": true, "transaction_id": transactionID}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": bookingID}, update)
	if err != nil {
		return fmt.Errorf("failed to mark booking %s paid: %w", bookingID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("booking with id %s not found", bookingID)
	}
	return nil
}
