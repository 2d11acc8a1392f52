package doctor

import (
	"errors"
	"fmt"

	doctorRepo "docportal/database/repository/doctor"
	"docportal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrInvalidDoctor signals a create payload missing name or email.
var ErrInvalidDoctor = errors.New("doctor name and email are required")

// DoctorService manages doctor profiles. All operations are admin-gated at
// the route level.
type DoctorService interface {
	ListDoctors() ([]models.Doctor, error)
	AddDoctor(d *models.Doctor) (*models.Doctor, error)
	RemoveDoctor(email string) error
}

// DefaultDoctorService is the production DoctorService.
type DefaultDoctorService struct {
	Repo   doctorRepo.DoctorRepository
	Logger *zap.Logger
}

// ListDoctors lists every doctor profile.
func (s *DefaultDoctorService) ListDoctors() ([]models.Doctor, error) {
	return s.Repo.GetAll()
}

// AddDoctor inserts a new doctor profile.
func (s *DefaultDoctorService) AddDoctor(d *models.Doctor) (*models.Doctor, error) {
	if d.Name == "" || d.Email == "" {
		return nil, ErrInvalidDoctor
	}
	if d.ID == "" {
		d.ID = uuid.New().String()
	}

	if err := s.Repo.Create(d); err != nil {
		return nil, fmt.Errorf("add doctor: %w", err)
	}
	s.Logger.Info("doctor added", zap.String("email", d.Email))
	return d, nil
}

// RemoveDoctor deletes the doctor with the given email.
func (s *DefaultDoctorService) RemoveDoctor(email string) error {
	if err := s.Repo.DeleteByEmail(email); err != nil {
		return err
	}
	s.Logger.Info("doctor removed", zap.String("email", email))
	return nil
}
