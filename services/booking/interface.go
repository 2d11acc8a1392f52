package booking

import (
	"context"

	"docportal/models"
)

// PayBookingRequest carries the payment details recorded when a booking is
// marked paid.
type PayBookingRequest struct {
	TransactionID string  `json:"transactionId" binding:"required"`
	Amount        float64 `json:"amount"`
}

// BookingService drives the booking and availability workflow.
type BookingService interface {
	// Availability returns every service with its slot list reduced to the
	// slots still open on the given date.
	Availability(date string) ([]models.Service, error)
	// ListServices returns all services projected to their names.
	ListServices() ([]models.Service, error)
	// CreateBooking inserts a booking. A duplicate natural key yields
	// Success=false with the conflicting record, never a second insert.
	CreateBooking(b *models.Booking) (*models.BookingResult, error)
	// GetBooking fetches one booking by id.
	GetBooking(id string) (*models.Booking, error)
	// PatientBookings lists the bookings owned by a patient email.
	PatientBookings(patientEmail string) ([]models.Booking, error)
	// PayBooking records the payment and flags the booking paid in one
	// transaction, then schedules a reconciliation check.
	PayBooking(ctx context.Context, bookingID string, req PayBookingRequest) (*models.Booking, error)
	// CreatePaymentIntent asks Stripe for a payment intent over the price
	// converted to minor units and returns the client secret verbatim.
	CreatePaymentIntent(price float64) (*models.PaymentIntentResponse, error)
}

// ReconcileEnqueuer schedules the compensating check that repairs bookings
// whose paid flag went missing.
type ReconcileEnqueuer interface {
	EnqueuePaymentCheck(bookingID, transactionID string) error
}
