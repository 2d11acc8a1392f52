package booking

import (
	"context"
	"errors"
	"fmt"
	"math"

	bookingRepo "docportal/database/repository/booking"
	serviceRepo "docportal/database/repository/service"
	"docportal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService is the production BookingService.
type DefaultBookingService struct {
	Services   serviceRepo.ServiceRepository
	Bookings   bookingRepo.BookingRepository
	Gateway    PaymentGateway
	Reconciler ReconcileEnqueuer
	Logger     *zap.Logger
}

// ListServices returns all services projected to their names.
func (s *DefaultBookingService) ListServices() ([]models.Service, error) {
	return s.Services.GetAllNames()
}

// GetBooking fetches one booking by id.
func (s *DefaultBookingService) GetBooking(id string) (*models.Booking, error) {
	booking, err := s.Bookings.GetByID(id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}

// PatientBookings lists the bookings owned by a patient email.
func (s *DefaultBookingService) PatientBookings(patientEmail string) ([]models.Booking, error) {
	return s.Bookings.GetByPatient(patientEmail)
}

// CreateBooking inserts a booking guarded by the unique natural-key index.
// The index, not a pre-insert read, decides conflicts, so two concurrent
// identical requests cannot both land.
func (s *DefaultBookingService) CreateBooking(b *models.Booking) (*models.BookingResult, error) {
	if b.Treatment == "" || b.Date == "" || b.Slot == "" || b.PatientEmail == "" {
		return nil, ErrInvalidBooking
	}
	if b.ID == "" {
		b.ID = uuid.New().String()
	}

	err := s.Bookings.Create(b)
	if err == nil {
		s.Logger.Info("booking created",
			zap.String("id", b.ID),
			zap.String("treatment", b.Treatment),
			zap.String("date", b.Date))
		return &models.BookingResult{Success: true, Booking: b}, nil
	}

	if !errors.Is(err, bookingRepo.ErrDuplicateBooking) {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	existing, lookupErr := s.Bookings.GetByNaturalKey(b.Treatment, b.Date, b.PatientEmail)
	if lookupErr != nil {
		return nil, fmt.Errorf("fetch conflicting booking: %w", lookupErr)
	}
	if existing == nil {
		// The conflicting record vanished between the insert and the
		// re-read; treat it as a plain conflict without a payload.
		return &models.BookingResult{Success: false}, nil
	}
	return &models.BookingResult{Success: false, Booking: existing}, nil
}

// PayBooking records the payment and marks the booking paid transactionally,
// then schedules the reconciliation check.
func (s *DefaultBookingService) PayBooking(ctx context.Context, bookingID string, req PayBookingRequest) (*models.Booking, error) {
	booking, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	amount := req.Amount
	if amount == 0 {
		amount = booking.Price
	}
	payment := &models.Payment{
		ID:            uuid.New().String(),
		TransactionID: req.TransactionID,
		BookingID:     booking.ID,
		PatientEmail:  booking.PatientEmail,
		Treatment:     booking.Treatment,
		Amount:        amount,
	}

	if err := s.Bookings.MarkPaidWithPayment(ctx, booking.ID, payment); err != nil {
		return nil, err
	}

	if s.Reconciler != nil {
		if err := s.Reconciler.EnqueuePaymentCheck(booking.ID, req.TransactionID); err != nil {
			s.Logger.Warn("failed to enqueue payment reconciliation",
				zap.String("bookingId", booking.ID), zap.Error(err))
		}
	}

	booking.Paid = true
	booking.TransactionID = req.TransactionID
	s.Logger.Info("booking paid",
		zap.String("id", booking.ID),
		zap.String("transactionId", req.TransactionID))
	return booking, nil
}

// CreatePaymentIntent converts the price to minor units and asks the payment
// gateway for an intent.
func (s *DefaultBookingService) CreatePaymentIntent(price float64) (*models.PaymentIntentResponse, error) {
	if price <= 0 {
		return nil, ErrInvalidPrice
	}

	// Minor-unit conversion; currency is fixed at USD. Rounded so prices
	// like 19.99 do not truncate to 1998 cents.
	amount := int64(math.Round(price * 100))
	secret, err := s.Gateway.CreateIntent(amount)
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}
	return &models.PaymentIntentResponse{ClientSecret: secret}, nil
}
