package model

import "time"

// Timeslot is a bookable hour-of-day bucket with a finite capacity.
// AvailableSlots counts the remaining capacity and never goes below
// zero: it is decremented exactly once per active booking referencing
// the slot and incremented exactly once when such a booking is
// cancelled, deleted or moved away. Only the booking lifecycle mutates
// it, and always through a conditional single-statement update.
//
// Fields:
//  ID             – primary key identifier.
//  Hour           – hour of day (0–23) the slot represents.
//  Capacity       – total concurrent bookings the slot can take.
//  AvailableSlots – capacity remaining; 0 <= AvailableSlots <= Capacity.
type Timeslot struct {
	ID             uint64    // timeslots.id
	Hour           uint8     // timeslots.hour
	Capacity       uint32    // timeslots.capacity
	AvailableSlots uint32    // timeslots.available_slots
	CreatedAt      time.Time // timeslots.created_at
	UpdatedAt      time.Time // timeslots.updated_at
}
