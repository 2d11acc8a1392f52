package booking

import (
	"context"
	"errors"

	"docportal/models"
)

// MockServiceRepo is a mock implementation of serviceRepo.ServiceRepository.
type MockServiceRepo struct {
	GetAllFunc      func() ([]models.Service, error)
	GetAllNamesFunc func() ([]models.Service, error)
}

func (m *MockServiceRepo) GetAll() ([]models.Service, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc()
	}
	return nil, nil
}

func (m *MockServiceRepo) GetAllNames() ([]models.Service, error) {
	if m.GetAllNamesFunc != nil {
		return m.GetAllNamesFunc()
	}
	return nil, nil
}

// MockBookingRepo is a mock implementation of bookingRepo.BookingRepository.
type MockBookingRepo struct {
	CreateFunc              func(b *models.Booking) error
	GetByIDFunc             func(id string) (*models.Booking, error)
	GetByNaturalKeyFunc     func(treatment, date, email string) (*models.Booking, error)
	GetByPatientFunc        func(email string) ([]models.Booking, error)
	GetByDateFunc           func(date string) ([]models.Booking, error)
	MarkPaidWithPaymentFunc func(ctx context.Context, bookingID string, payment *models.Payment) error
	SetPaidFunc             func(bookingID, transactionID string) error
}

func (m *MockBookingRepo) Create(b *models.Booking) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(b)
	}
	return nil
}

func (m *MockBookingRepo) GetByID(id string) (*models.Booking, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(id)
	}
	return nil, nil
}

func (m *MockBookingRepo) GetByNaturalKey(treatment, date, email string) (*models.Booking, error) {
	if m.GetByNaturalKeyFunc != nil {
		return m.GetByNaturalKeyFunc(treatment, date, email)
	}
	return nil, nil
}

func (m *MockBookingRepo) GetByPatient(email string) ([]models.Booking, error) {
	if m.GetByPatientFunc != nil {
		return m.GetByPatientFunc(email)
	}
	return nil, nil
}

func (m *MockBookingRepo) GetByDate(date string) ([]models.Booking, error) {
	if m.GetByDateFunc != nil {
		return m.GetByDateFunc(date)
	}
	return nil, nil
}

func (m *MockBookingRepo) MarkPaidWithPayment(ctx context.Context, bookingID string, payment *models.Payment) error {
	if m.MarkPaidWithPaymentFunc != nil {
		return m.MarkPaidWithPaymentFunc(ctx, bookingID, payment)
	}
	return nil
}

func (m *MockBookingRepo) SetPaid(bookingID, transactionID string) error {
	if m.SetPaidFunc != nil {
		return m.SetPaidFunc(bookingID, transactionID)
	}
	return nil
}

// MockGateway is a mock PaymentGateway capturing the requested amount.
type MockGateway struct {
	CreateIntentFunc func(amount int64) (string, error)
	LastAmount       int64
}

func (m *MockGateway) CreateIntent(amount int64) (string, error) {
	m.LastAmount = amount
	if m.CreateIntentFunc != nil {
		return m.CreateIntentFunc(amount)
	}
	return "secret_test", nil
}

// MockEnqueuer is a mock ReconcileEnqueuer recording scheduled checks.
type MockEnqueuer struct {
	Calls []string
	Err   error
}

func (m *MockEnqueuer) EnqueuePaymentCheck(bookingID, transactionID string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Calls = append(m.Calls, bookingID+":"+transactionID)
	return nil
}

var errRepoDown = errors.New("repository unavailable")
