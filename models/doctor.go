package models

import "time"

// Doctor represents a clinic doctor profile, managed by admins only.
type Doctor struct {
	ID        string    `bson:"id" json:"id"`
	Email     string    `bson:"email" json:"email"`
	Name      string    `bson:"name" json:"name"`
	Specialty string    `bson:"specialty,omitempty" json:"specialty,omitempty"`
	ImageURL  string    `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
