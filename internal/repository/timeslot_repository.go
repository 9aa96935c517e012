package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/pawcare/pet-care-booking/internal/model"
)

// TimeslotRepo provides access to the timeslots table. The capacity
// counter is only ever mutated through Reserve and Release, both of
// which are single conditional UPDATE statements: two concurrent
// reserves against a slot with one place left cannot both succeed,
// because the decrement and the availability check happen in one
// atomic statement instead of a read-then-save cycle.
type TimeslotRepo struct {
	db *sql.DB
}

// NewTimeslotRepo returns a TimeslotRepo bound to the given database.
func NewTimeslotRepo(db *sql.DB) *TimeslotRepo { return &TimeslotRepo{db: db} }

// GetByID loads one timeslot. Returns ErrTimeslotNotFound when absent.
func (r *TimeslotRepo) GetByID(ctx context.Context, id uint64) (*model.Timeslot, error) {
	const q = `SELECT id, hour, capacity, available_slots, created_at, updated_at
	           FROM timeslots WHERE id = ?`
	var t model.Timeslot
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&t.ID, &t.Hour, &t.Capacity, &t.AvailableSlots, &t.CreatedAt, &t.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTimeslotNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// List returns all timeslots ordered by hour.
func (r *TimeslotRepo) List(ctx context.Context) ([]model.Timeslot, error) {
	const q = `SELECT id, hour, capacity, available_slots, created_at, updated_at
	           FROM timeslots ORDER BY hour`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	slots := make([]model.Timeslot, 0)
	for rows.Next() {
		var t model.Timeslot
		if err := rows.Scan(&t.ID, &t.Hour, &t.Capacity, &t.AvailableSlots, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		slots = append(slots, t)
	}
	return slots, rows.Err()
}

// Create inserts a new slot with available_slots seeded to capacity and
// populates the generated ID.
func (r *TimeslotRepo) Create(ctx context.Context, t *model.Timeslot) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO timeslots (hour, capacity, available_slots) VALUES (?, ?, ?)`,
		t.Hour, t.Capacity, t.Capacity)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = uint64(id)
	t.AvailableSlots = t.Capacity
	return nil
}

// UpdateCapacity changes a slot's total capacity, shifting the free
// counter by the same delta and clamping it into [0, capacity]. The
// available_slots assignment runs first and still sees the old
// capacity value.
func (r *TimeslotRepo) UpdateCapacity(ctx context.Context, id uint64, capacity uint32) error {
	const q = `UPDATE timeslots
	           SET available_slots = GREATEST(0, LEAST(?, CAST(available_slots AS SIGNED) + (? - CAST(capacity AS SIGNED)))),
	               capacity = ?
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, capacity, capacity, capacity, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// RowsAffected is 0 both for a missing row and for a no-op
		// update; distinguish by existence.
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// Reserve claims one place on the slot: a conditional decrement that
// fails with ErrNoCapacity when nothing is left, leaving the counter
// untouched. The caller owns the 1:1 pairing with a later Release.
func (r *TimeslotRepo) Reserve(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE timeslots SET available_slots = available_slots - 1
		 WHERE id = ? AND available_slots > 0`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return ErrNoCapacity
	}
	return nil
}

// Release returns one place to the slot, never exceeding capacity. The
// cap guard is a safety net only; callers pair releases with prior
// reserves via the booking's capacity_released flag.
func (r *TimeslotRepo) Release(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE timeslots SET available_slots = available_slots + 1
		 WHERE id = ? AND available_slots < capacity`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
	}
	return nil
}
