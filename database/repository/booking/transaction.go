package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"docportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MarkPaidWithPayment appends the payment record and flags the booking paid
// inside one MongoDB transaction. Either both writes land or neither does, so
// a crash cannot leave an orphaned payment behind.
func (r *MongoBookingRepo) MarkPaidWithPayment(ctx context.Context, bookingID string, payment *models.Payment) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		payment.CreatedAt = time.Now()
		if _, err := r.paymentColl.InsertOne(sc, payment); err != nil {
			return fmt.Errorf("insert payment failed: %w", err)
		}

		update := bson.M{"$set": bson.M{
			"paid":           true,
			"transaction_id": payment.TransactionID,
		}}
		res, err := r.coll.UpdateOne(sc, bson.M{"id": bookingID}, update)
		if err != nil {
			return fmt.Errorf("mark booking paid failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return fmt.Errorf("booking with id %s not found", bookingID)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return fmt.Errorf("payment transaction failed: %w", err)
	}

	return nil
}
