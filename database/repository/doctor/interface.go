package doctorRepo

import (
	"errors"

	"docportal/models"
)

// ErrDoctorNotFound signals a delete or lookup by email found nothing.
var ErrDoctorNotFound = errors.New("doctor not found")

// DoctorRepository defines persistence access for doctor profiles.
type DoctorRepository interface {
	// Create inserts a new doctor profile.
	Create(doctor *models.Doctor) error
	// GetAll retrieves all doctors.
	GetAll() ([]models.Doctor, error)
	// GetByEmail retrieves a doctor by email, or (nil, nil) when missing.
	GetByEmail(email string) (*models.Doctor, error)
	// DeleteByEmail removes the doctor with the given email.
	DeleteByEmail(email string) error
}
