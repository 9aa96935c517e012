package model

import "time"

// BookingStatus enumerates the booking state machine. Pending is the
// initial state; Completed and Cancel are terminal and have no outgoing
// transitions.
type BookingStatus string

const (
	StatusPending    BookingStatus = "Pending"
	StatusProcessing BookingStatus = "Processing"
	StatusCompleted  BookingStatus = "Completed"
	StatusCancel     BookingStatus = "Cancel"
)

// Valid reports whether s is one of the four known statuses.
func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusCancel:
		return true
	}
	return false
}

// Terminal reports whether s permits no further transitions.
func (s BookingStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancel
}

// PetInfo is the denormalized pet snapshot captured at booking time.
// It is decoupled from the live pet record so later pet edits do not
// retroactively change historical bookings.
type PetInfo struct {
	PetName string  `json:"pet_name"`
	Species string  `json:"species"`
	Breed   string  `json:"breed"`
	Age     uint32  `json:"age"`
	Weight  float64 `json:"weight"`
	Notes   string  `json:"notes"`
}

// Booking is a user's appointment request for a service at a timeslot.
// Exactly one timeslot is referenced at any time. CapacityReleased
// pairs the slot reserve taken at creation with at most one release:
// cancel, delete and status updates flip it before touching the
// counter, so a cancelled-then-deleted booking never releases twice.
//
// Fields:
//  ID               – primary key identifier.
//  UserID           – booking owner.
//  PetID            – live pet reference when booked from a profile
//                     (nullable; inline snapshots have none).
//  ServiceID        – booked catalog service.
//  TimeslotID       – currently bound timeslot.
//  AppointmentDate  – appointment day (date only).
//  Status           – state machine position, Pending initially.
//  CancelReason     – required when Status is Cancel.
//  CapacityReleased – whether the slot reserve was already returned.
//  CustomerName     – contact snapshot fields follow.
type Booking struct {
	ID               uint64        // bookings.id
	UserID           uint64        // bookings.user_id
	PetID            *uint64       // bookings.pet_id (nullable)
	ServiceID        uint64        // bookings.service_id
	TimeslotID       uint64        // bookings.timeslot_id
	AppointmentDate  time.Time     // bookings.appointment_date (date only)
	Status           BookingStatus // bookings.status
	CancelReason     string        // bookings.cancel_reason
	CapacityReleased bool          // bookings.capacity_released
	CustomerName     string        // bookings.customer_name
	Phone            string        // bookings.phone
	Email            string        // bookings.email
	Address          string        // bookings.address
	PetInfo          PetInfo       // bookings.pet_* snapshot columns
	CreatedAt        time.Time     // bookings.created_at
	UpdatedAt        time.Time     // bookings.updated_at
}
