package bookingRepo

import (
	"context"
	"errors"

	"docportal/models"
)

// ErrDuplicateBooking signals the unique (treatment, date, patient_email)
// index rejected an insert.
var ErrDuplicateBooking = errors.New("booking already exists for this treatment, date and patient")

// BookingRepository defines persistence access for bookings.
type BookingRepository interface {
	// Create inserts a new booking. Returns ErrDuplicateBooking when a
	// booking with the same natural key already exists.
	Create(booking *models.Booking) error
	// GetByID retrieves a booking by its ID, or (nil, nil) when missing.
	GetByID(id string) (*models.Booking, error)
	// GetByNaturalKey retrieves the booking holding (treatment, date, patient
	// email), or (nil, nil) when missing.
	GetByNaturalKey(treatment, date, patientEmail string) (*models.Booking, error)
	// GetByPatient retrieves all bookings made by the given patient email.
	GetByPatient(patientEmail string) ([]models.Booking, error)
	// GetByDate retrieves all bookings for the given calendar day.
	GetByDate(date string) ([]models.Booking, error)
	// MarkPaidWithPayment records the payment document and flags the booking
	// paid inside a single transaction.
	MarkPaidWithPayment(ctx context.Context, bookingID string, payment *models.Payment) error
	// SetPaid flags a booking paid with the given transaction id. Used by the
	// reconciliation worker to repair bookings whose paid flag was lost.
	SetPaid(bookingID, transactionID string) error
}
