package paymentRepo

import "docportal/models"

// PaymentRepository defines read access to the append-only payment records.
// Writes happen inside the booking repository's payment transaction.
type PaymentRepository interface {
	// GetByID retrieves a payment by its ID, or (nil, nil) when missing.
	GetByID(id string) (*models.Payment, error)
	// GetByBookingID retrieves the payment linked to a booking, or (nil, nil).
	GetByBookingID(bookingID string) (*models.Payment, error)
}
