package booking

import "errors"

var (
	// ErrBookingNotFound signals a lookup by id or key found nothing.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrInvalidBooking signals a create payload missing required fields.
	ErrInvalidBooking = errors.New("treatment, date, slot and patient email are required")
	// ErrInvalidPrice signals a non-positive payment-intent price.
	ErrInvalidPrice = errors.New("price must be greater than zero")
)
