package models

import "time"

// Payment is an append-only record of a completed charge against a booking.
type Payment struct {
	ID            string    `bson:"id" json:"id"`
	TransactionID string    `bson:"transaction_id" json:"transactionId"`
	BookingID     string    `bson:"booking_id" json:"bookingId"`
	PatientEmail  string    `bson:"patient_email" json:"patientEmail"`
	Treatment     string    `bson:"treatment,omitempty" json:"treatment,omitempty"`
	Amount        float64   `bson:"amount" json:"amount"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
}

// PaymentIntentRequest carries the price for a Stripe payment intent.
type PaymentIntentRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

// PaymentIntentResponse returns the Stripe client secret verbatim.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
