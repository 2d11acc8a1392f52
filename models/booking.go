package models

import "time"

// Booking represents a patient's appointment for one treatment slot.
// At most one booking may exist per (treatment, date, patient email);
// the booking repository enforces this with a unique compound index.
type Booking struct {
	ID            string    `bson:"id" json:"id"`
	Treatment     string    `bson:"treatment" json:"treatment"`
	Date          string    `bson:"date" json:"date"` // Calendar day in "YYYY-MM-DD" format
	Slot          string    `bson:"slot" json:"slot"`
	PatientName   string    `bson:"patient_name" json:"patientName"`
	PatientEmail  string    `bson:"patient_email" json:"patientEmail"`
	Phone         string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Price         float64   `bson:"price" json:"price"`
	Paid          bool      `bson:"paid" json:"paid"`
	TransactionID string    `bson:"transaction_id,omitempty" json:"transactionId,omitempty"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
}

// BookingResult is the structured response for booking creation. A duplicate
// request is not an HTTP error; it returns Success=false with the record that
// already holds the slot.
type BookingResult struct {
	Success bool     `json:"success"`
	Booking *Booking `json:"booking"`
}
