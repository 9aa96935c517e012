package repository

import (
	"context"

	"github.com/pawcare/pet-care-booking/internal/model"
)

// Statistics queries backing the admin dashboard. These are read-only
// aggregates over the bookings table; none of them participate in the
// lifecycle itself.

// CountActive returns the number of bookings not in Cancel state.
func (r *BookingRepo) CountActive(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM bookings WHERE status <> ?`, model.StatusCancel).Scan(&n)
	return n, err
}

// RevenueCompleted sums the service price over all completed bookings.
func (r *BookingRepo) RevenueCompleted(ctx context.Context) (uint64, error) {
	var cents uint64
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(s.price_cents), 0)
		 FROM bookings b JOIN services s ON s.id = b.service_id
		 WHERE b.status = ?`, model.StatusCompleted).Scan(&cents)
	return cents, err
}

// RevenueByService groups completed revenue by service name.
func (r *BookingRepo) RevenueByService(ctx context.Context) (map[string]uint64, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT s.name, SUM(s.price_cents)
		 FROM bookings b JOIN services s ON s.id = b.service_id
		 WHERE b.status = ?
		 GROUP BY s.name`, model.StatusCompleted)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make(map[string]uint64)
	for rows.Next() {
		var name string
		var cents uint64
		if err := rows.Scan(&name, &cents); err != nil {
			return nil, err
		}
		out[name] = cents
	}
	return out, rows.Err()
}

// CountByStatus returns booking counts per status. Every status is
// present in the result, zero-valued when no bookings carry it, plus a
// "total" entry over all bookings.
func (r *BookingRepo) CountByStatus(ctx context.Context) (map[string]int64, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT status, COUNT(*) FROM bookings GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := map[string]int64{
		string(model.StatusPending):    0,
		string(model.StatusProcessing): 0,
		string(model.StatusCompleted):  0,
		string(model.StatusCancel):     0,
	}
	var total int64
	for rows.Next() {
		var status string
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		out[status] = n
		total += n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	out["total"] = total
	return out, nil
}

// PetGenderCounts counts bookings by the booked pet's gender, joining
// through the live pet reference. Bookings created from an inline
// snapshot carry no pet reference and are not counted.
func (r *BookingRepo) PetGenderCounts(ctx context.Context) (male, female int64, err error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT p.gender, COUNT(*)
		 FROM bookings b JOIN pets p ON p.id = b.pet_id
		 WHERE p.gender IS NOT NULL
		 GROUP BY p.gender`)
	if err != nil {
		return 0, 0, err
	}
	defer rows.Close()
	for rows.Next() {
		var gender string
		var n int64
		if err := rows.Scan(&gender, &n); err != nil {
			return 0, 0, err
		}
		switch gender {
		case "male":
			male = n
		case "female":
			female = n
		}
	}
	return male, female, rows.Err()
}
