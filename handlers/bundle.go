package handlers

import (
	userRepo "docportal/database/repository/user"
)

// HandlerBundle groups the wired handlers and the repositories the route
// middleware needs. Assembled once in main and passed to route registration.
type HandlerBundle struct {
	// UserRepo backs the admin-role middleware lookup.
	UserRepo userRepo.UserRepository

	Booking *BookingHandler
	User    *UserHandler
	Doctor  *DoctorHandler
}
