// Package repository implements the data access layer over MySQL. This
// file defines sentinel errors shared across repositories so handlers
// and the booking lifecycle can branch with errors.Is instead of
// inspecting driver errors.
package repository

import "errors"

// ErrNoCapacity is returned by TimeslotRepo.Reserve when the slot has
// no remaining capacity. Handlers translate it into HTTP 400.
var ErrNoCapacity = errors.New("timeslot has no available slots")

// ErrTimeslotNotFound is returned when a referenced timeslot does not exist.
var ErrTimeslotNotFound = errors.New("timeslot not found")

// ErrBookingNotFound is returned when a booking lookup matches no row.
var ErrBookingNotFound = errors.New("booking not found")

// ErrPetNotFound is returned when a pet does not exist or does not
// belong to the requesting user. Ownership is checked in SQL, so the
// two cases are deliberately indistinguishable.
var ErrPetNotFound = errors.New("pet not found")

// ErrServiceNotFound is returned when a catalog service lookup matches no row.
var ErrServiceNotFound = errors.New("service not found")

// ErrForbidden is returned when the caller attempts an operation on a
// resource they do not own. Handlers translate it into HTTP 403.
var ErrForbidden = errors.New("forbidden")

// ErrConflict is returned when an update cannot proceed because the
// row changed underneath it, such as two concurrent status updates on
// the same booking. Handlers translate it into HTTP 409.
var ErrConflict = errors.New("conflict")

// ErrUserNotFound is returned when a user lookup matches no row.
var ErrUserNotFound = errors.New("user not found")

// ErrEmailExists is returned by UserRepo.Create when the email is
// already registered.
var ErrEmailExists = errors.New("email already registered")
