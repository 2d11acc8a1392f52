package user

import "docportal/models"

// LoginResponse carries the upserted account and its freshly issued bearer token.
type LoginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// UserService manages portal accounts and roles.
type UserService interface {
	// Login upserts the account keyed by email and issues a bearer token.
	Login(email, name string) (*LoginResponse, error)
	// GetAllUsers lists every account.
	GetAllUsers() ([]models.User, error)
	// IsAdmin reports whether the account with the given email holds the
	// admin role. A missing account is simply not an admin.
	IsAdmin(email string) (bool, error)
	// PromoteToAdmin grants the admin role via an upsert-style update.
	// There is no demotion path.
	PromoteToAdmin(email string) error
}
