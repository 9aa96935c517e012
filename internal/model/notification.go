package model

import "time"

// Notification types written by the booking lifecycle. A nil UserID
// addresses the admin audience.
const (
	NotificationBooking       = "booking"        // new booking, admin-targeted
	NotificationBookingCancel = "booking_cancel" // user cancelled, admin-targeted
	NotificationCompletion    = "completion"     // booking completed, user-targeted
	NotificationCancellation  = "cancellation"   // booking cancelled by staff, user-targeted
)

// Notification is an append-only event record consumed by polling
// clients. Notifications are created as a side effect of booking
// transitions, marked read via the notification endpoints and never
// deleted.
type Notification struct {
	ID        uint64    // notifications.id
	Type      string    // notifications.type
	Message   string    // notifications.message
	BookingID uint64    // notifications.booking_id
	UserID    *uint64   // notifications.user_id (NULL = admin audience)
	IsRead    bool      // notifications.is_read
	CreatedAt time.Time // notifications.created_at
}
