package handlers

import (
	"context"

	"docportal/models"
	"docportal/services/booking"
	"docportal/services/user"
)

// Compile-time checks that the mocks satisfy the service interfaces.
var (
	_ booking.BookingService = (*MockBookingService)(nil)
	_ user.UserService       = (*MockUserService)(nil)
)

// MockBookingService is a mock implementation of booking.BookingService.
type MockBookingService struct {
	AvailabilityFunc        func(date string) ([]models.Service, error)
	ListServicesFunc        func() ([]models.Service, error)
	CreateBookingFunc       func(b *models.Booking) (*models.BookingResult, error)
	GetBookingFunc          func(id string) (*models.Booking, error)
	PatientBookingsFunc     func(email string) ([]models.Booking, error)
	PayBookingFunc          func(ctx context.Context, id string, req booking.PayBookingRequest) (*models.Booking, error)
	CreatePaymentIntentFunc func(price float64) (*models.PaymentIntentResponse, error)
}

func (m *MockBookingService) Availability(date string) ([]models.Service, error) {
	if m.AvailabilityFunc != nil {
		return m.AvailabilityFunc(date)
	}
	return nil, nil
}

func (m *MockBookingService) ListServices() ([]models.Service, error) {
	if m.ListServicesFunc != nil {
		return m.ListServicesFunc()
	}
	return nil, nil
}

func (m *MockBookingService) CreateBooking(b *models.Booking) (*models.BookingResult, error) {
	if m.CreateBookingFunc != nil {
		return m.CreateBookingFunc(b)
	}
	return &models.BookingResult{Success: true, Booking: b}, nil
}

func (m *MockBookingService) GetBooking(id string) (*models.Booking, error) {
	if m.GetBookingFunc != nil {
		return m.GetBookingFunc(id)
	}
	return nil, booking.ErrBookingNotFound
}

func (m *MockBookingService) PatientBookings(email string) ([]models.Booking, error) {
	if m.PatientBookingsFunc != nil {
		return m.PatientBookingsFunc(email)
	}
	return nil, nil
}

func (m *MockBookingService) PayBooking(ctx context.Context, id string, req booking.PayBookingRequest) (*models.Booking, error) {
	if m.PayBookingFunc != nil {
		return m.PayBookingFunc(ctx, id, req)
	}
	return nil, booking.ErrBookingNotFound
}

func (m *MockBookingService) CreatePaymentIntent(price float64) (*models.PaymentIntentResponse, error) {
	if m.CreatePaymentIntentFunc != nil {
		return m.CreatePaymentIntentFunc(price)
	}
	return &models.PaymentIntentResponse{ClientSecret: "secret_test"}, nil
}

// MockUserService is a mock implementation of user.UserService.
type MockUserService struct {
	LoginFunc          func(email, name string) (*user.LoginResponse, error)
	GetAllUsersFunc    func() ([]models.User, error)
	IsAdminFunc        func(email string) (bool, error)
	PromoteToAdminFunc func(email string) error
}

func (m *MockUserService) Login(email, name string) (*user.LoginResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(email, name)
	}
	return &user.LoginResponse{Token: "token", User: models.User{Email: email, Name: name}}, nil
}

func (m *MockUserService) GetAllUsers() ([]models.User, error) {
	if m.GetAllUsersFunc != nil {
		return m.GetAllUsersFunc()
	}
	return nil, nil
}

func (m *MockUserService) IsAdmin(email string) (bool, error) {
	if m.IsAdminFunc != nil {
		return m.IsAdminFunc(email)
	}
	return false, nil
}

func (m *MockUserService) PromoteToAdmin(email string) error {
	if m.PromoteToAdminFunc != nil {
		return m.PromoteToAdminFunc(email)
	}
	return nil
}
