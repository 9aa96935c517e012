package model

import "testing"

func TestBookingStatusValid(t *testing.T) {
	for _, s := range []BookingStatus{StatusPending, StatusProcessing, StatusCompleted, StatusCancel} {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	for _, s := range []BookingStatus{"", "pending", "Done", "CANCEL"} {
		if s.Valid() {
			t.Errorf("%q should not be valid", s)
		}
	}
}

func TestBookingStatusTerminal(t *testing.T) {
	if StatusPending.Terminal() || StatusProcessing.Terminal() {
		t.Error("Pending/Processing must not be terminal")
	}
	if !StatusCompleted.Terminal() || !StatusCancel.Terminal() {
		t.Error("Completed/Cancel must be terminal")
	}
}
