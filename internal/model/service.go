package model

import "time"

// Service is an entry in the care service catalog (grooming, checkup,
// vaccination, ...). The IsVaccine flag marks the designated vaccine
// service: completing a booking for such a service appends a
// vaccination history record.
type Service struct {
	ID          uint64    // services.id
	Name        string    // services.name
	Description string    // services.description
	PriceCents  uint32    // services.price_cents
	IsVaccine   bool      // services.is_vaccine
	IsActive    bool      // services.is_active
	CreatedAt   time.Time // services.created_at
	UpdatedAt   time.Time // services.updated_at
}
