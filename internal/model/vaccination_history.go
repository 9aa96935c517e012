package model

import "time"

// VaccinationHistory is an append-only audit record created exactly
// once when a booking for a vaccine service reaches Completed. It is
// not the source of truth for Pet.Vaccinated, which owners maintain
// independently.
type VaccinationHistory struct {
	ID             uint64    // vaccination_history.id
	UserID         uint64    // vaccination_history.user_id
	PetID          uint64    // vaccination_history.pet_id
	BookingID      uint64    // vaccination_history.booking_id
	ServiceID      uint64    // vaccination_history.service_id
	AdministeredOn time.Time // vaccination_history.administered_on
	Notes          string    // vaccination_history.notes
	CreatedAt      time.Time // vaccination_history.created_at
}
