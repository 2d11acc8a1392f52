package userRepo

import "docportal/models"

// UserRepository defines persistence access for portal accounts.
type UserRepository interface {
	// Upsert inserts or updates the user keyed by email and returns the
	// stored record. The role field is never touched by an upsert.
	Upsert(user *models.User) (*models.User, error)
	// GetByEmail retrieves a user by email, or (nil, nil) when missing.
	GetByEmail(email string) (*models.User, error)
	// GetAll retrieves all users.
	GetAll() ([]models.User, error)
	// SetRole sets the role for the user with the given email.
	SetRole(email, role string) error
}
