package models

// Service represents a bookable treatment with its full set of time slots.
// Services are seeded out of band and read-only through the API.
type Service struct {
	ID    string   `bson:"id" json:"id"`
	Name  string   `bson:"name" json:"name"`
	Slots []string `bson:"slots" json:"slots"` // Ordered slot labels, e.g. "08.00 AM - 08.30 AM"
}
