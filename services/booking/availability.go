package booking

import (
	"fmt"

	"docportal/models"
)

// Availability returns every service with its slot list reduced to the open
// slots for the given date. Booked slots are the slots of bookings whose
// treatment matches the service name; the remaining slots keep the service's
// original order. Linear filtering is fine at clinic scale.
func (s *DefaultBookingService) Availability(date string) ([]models.Service, error) {
	services, err := s.Services.GetAll()
	if err != nil {
		return nil, fmt.Errorf("availability: %w", err)
	}

	bookings, err := s.Bookings.GetByDate(date)
	if err != nil {
		return nil, fmt.Errorf("availability: %w", err)
	}

	result := make([]models.Service, 0, len(services))
	for _, svc := range services {
		booked := make(map[string]struct{})
		for _, b := range bookings {
			if b.Treatment == svc.Name {
				booked[b.Slot] = struct{}{}
			}
		}

		available := make([]string, 0, len(svc.Slots))
		for _, slot := range svc.Slots {
			if _, taken := booked[slot]; !taken {
				available = append(available, slot)
			}
		}

		svc.Slots = available
		result = append(result, svc)
	}
	return result, nil
}
