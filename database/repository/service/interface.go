package serviceRepo

import "docportal/models"

// ServiceRepository defines persistence access for treatment services.
type ServiceRepository interface {
	// GetAll retrieves every service with its full slot list.
	GetAll() ([]models.Service, error)
	// GetAllNames retrieves every service with only the name field populated.
	GetAllNames() ([]models.Service, error)
}
