package model

import "time"

// Pet is a pet profile owned by exactly one user. Pets are created and
// edited by their owning user only; bookings copy the relevant fields
// into a snapshot at creation time, so later edits here never change
// historical bookings.
//
// Fields:
//  ID         – primary key identifier.
//  UserID     – owning user; ownership is enforced in every query.
//  Name       – pet name.
//  Species    – species (dog, cat, ...).
//  Breed      – breed, free text.
//  Age        – age in years.
//  Weight     – weight in kilograms.
//  Gender     – "male" or "female".
//  Vaccinated – owner-maintained flag, not derived from history.
//  Notes      – free-form notes for the clinic.
//  ImageURL   – optional profile image reference.
type Pet struct {
	ID         uint64    // pets.id
	UserID     uint64    // pets.user_id
	Name       string    // pets.name
	Species    string    // pets.species
	Breed      string    // pets.breed
	Age        uint32    // pets.age
	Weight     float64   // pets.weight
	Gender     string    // pets.gender
	Vaccinated bool      // pets.vaccinated
	Notes      string    // pets.notes
	ImageURL   string    // pets.image_url
	CreatedAt  time.Time // pets.created_at
	UpdatedAt  time.Time // pets.updated_at
}
