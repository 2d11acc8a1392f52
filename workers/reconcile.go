package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"docportal/config"
	bookingRepo "docportal/database/repository/booking"
	paymentRepo "docportal/database/repository/payment"
	"docportal/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TypePaymentCheck tags the task that verifies a paid booking actually
// carries its paid flag.
const TypePaymentCheck = "payment:reconcile"

// paymentCheckDelay leaves the transactional write time to settle before the
// sweep looks at it.
const paymentCheckDelay = 30 * time.Second

// PaymentCheckPayload links a payment to the booking it should have marked paid.
type PaymentCheckPayload struct {
	BookingID     string `json:"bookingId"`
	TransactionID string `json:"transactionId"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// Enqueuer schedules payment reconciliation checks.
type Enqueuer struct {
	client *asynq.Client
}

// NewEnqueuer creates an Enqueuer backed by the configured Redis queue.
func NewEnqueuer() *Enqueuer {
	return &Enqueuer{client: asynq.NewClient(redisOpts())}
}

// EnqueuePaymentCheck schedules a check that the booking carries the paid
// flag for this transaction.
func (e *Enqueuer) EnqueuePaymentCheck(bookingID, transactionID string) error {
	b, err := json.Marshal(PaymentCheckPayload{BookingID: bookingID, TransactionID: transactionID})
	if err != nil {
		return err
	}
	task := asynq.NewTask(TypePaymentCheck, b)
	if _, err := e.client.Enqueue(task, asynq.ProcessIn(paymentCheckDelay)); err != nil {
		return fmt.Errorf("enqueue payment check: %w", err)
	}
	return nil
}

// Close releases the underlying queue client.
func (e *Enqueuer) Close() error {
	return e.client.Close()
}

// InitReconcileWorker runs the async reconciliation worker in background.
func InitReconcileWorker(bookings bookingRepo.BookingRepository, payments paymentRepo.PaymentRepository) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypePaymentCheck, handlePaymentCheck(bookings, payments))

	go func() {
		log.Println("[ReconcileWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Printf("[ReconcileWorker] worker stopped: %v", err)
		}
	}()
}

// handlePaymentCheck repairs a booking whose paid flag was lost after its
// payment record landed. With the transactional write in place this should
// only ever fire for historical gaps.
func handlePaymentCheck(bookings bookingRepo.BookingRepository, payments paymentRepo.PaymentRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p PaymentCheckPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("reconcile: invalid payload", zap.Error(err))
			return err
		}

		// Only repair against a payment record that actually landed.
		payment, err := payments.GetByBookingID(p.BookingID)
		if err != nil {
			return err
		}
		if payment == nil {
			logger.Warn("reconcile: no payment record for booking",
				zap.String("bookingId", p.BookingID),
				zap.String("transactionId", p.TransactionID))
			return nil
		}

		booking, err := bookings.GetByID(p.BookingID)
		if err != nil {
			return err
		}
		if booking == nil {
			logger.Warn("reconcile: booking missing for payment",
				zap.String("bookingId", p.BookingID),
				zap.String("transactionId", p.TransactionID))
			return nil
		}

		if booking.Paid && booking.TransactionID == p.TransactionID {
			return nil
		}

		if err := bookings.SetPaid(p.BookingID, p.TransactionID); err != nil {
			return fmt.Errorf("reconcile booking %s: %w", p.BookingID, err)
		}
		logger.Info("reconcile: repaired unpaid booking",
			zap.String("bookingId", p.BookingID),
			zap.String("transactionId", p.TransactionID))
		return nil
	}
}
