// Package queue defines the booking event payloads exchanged over the
// message broker and the background consumer that records them.
package queue

import (
	"time"

	"github.com/google/uuid"
)

// Actions carried in BookingEvent.Action.
const (
	ActionCreated         = "created"
	ActionCancelled       = "cancelled"
	ActionStatusChanged   = "status_changed"
	ActionTimeslotChanged = "timeslot_changed"
	ActionDeleted         = "deleted"
)

// BookingEvent is published on every booking lifecycle transition. It
// carries enough context for downstream consumers to log or notify
// without querying the primary database. EventID deduplicates
// redeliveries.
type BookingEvent struct {
	EventID         string `json:"event_id"`
	Action          string `json:"action"`
	BookingID       uint64 `json:"booking_id"`
	UserID          uint64 `json:"user_id"`
	ServiceName     string `json:"service_name"`
	TimeslotHour    uint8  `json:"timeslot_hour"`
	AppointmentDate string `json:"appointment_date"`
	Status          string `json:"status"`
	PetName         string `json:"pet_name"`
	OccurredAt      string `json:"occurred_at"`
}

// NewBookingEvent stamps a fresh event with a unique ID and the current
// UTC time.
func NewBookingEvent(action string, bookingID, userID uint64) BookingEvent {
	return BookingEvent{
		EventID:    uuid.NewString(),
		Action:     action,
		BookingID:  bookingID,
		UserID:     userID,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
}
