package paymentRepo

import (
	"context"
	"fmt"
	"time"

	"docportal/database"
	"docportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoPaymentRepo implements PaymentRepository using MongoDB.
type MongoPaymentRepo struct {
	coll *mongo.Collection
}

// NewMongoPaymentRepo creates a new instance of PaymentRepository using MongoDB.
func NewMongoPaymentRepo() PaymentRepository {
	return &MongoPaymentRepo{coll: database.DB().Collection("payments")}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoPaymentRepo) findOne(filter bson.M) (*models.Payment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var payment models.Payment
	if err := r.coll.FindOne(ctx, filter).Decode(&payment); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch payment: %w", err)
	}
	return &payment, nil
}

// GetByID retrieves a payment by its unique ID.
func (r *MongoPaymentRepo) GetByID(id string) (*models.Payment, error) {
	return r.findOne(bson.M{"id": id})
}

// GetByBookingID retrieves the payment linked to a booking.
func (r *MongoPaymentRepo) GetByBookingID(bookingID string) (*models.Payment, error) {
	return r.findOne(bson.M{"booking_id": bookingID})
}
