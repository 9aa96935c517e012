package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/pawcare/pet-care-booking/internal/model"
)

// BookingRepo provides CRUD and query operations for bookings. Status
// mutations are compare-and-swap updates keyed on the previously
// observed status, and the capacity_released flag flip is its own
// conditional update, so concurrent writers lose cleanly instead of
// silently overwriting each other. All timestamps are stored in UTC.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

const bookingColumns = `id, user_id, pet_id, service_id, timeslot_id, appointment_date,
	status, cancel_reason, capacity_released, customer_name, phone, email, address,
	pet_name, pet_species, pet_breed, pet_age, pet_weight, pet_notes, created_at, updated_at`

func scanBooking(row interface{ Scan(...any) error }) (*model.Booking, error) {
	var (
		b      model.Booking
		petID  sql.NullInt64
		reason sql.NullString
		notes  sql.NullString
	)
	err := row.Scan(&b.ID, &b.UserID, &petID, &b.ServiceID, &b.TimeslotID, &b.AppointmentDate,
		&b.Status, &reason, &b.CapacityReleased, &b.CustomerName, &b.Phone, &b.Email, &b.Address,
		&b.PetInfo.PetName, &b.PetInfo.Species, &b.PetInfo.Breed, &b.PetInfo.Age, &b.PetInfo.Weight,
		&notes, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if petID.Valid {
		id := uint64(petID.Int64)
		b.PetID = &id
	}
	b.CancelReason = reason.String
	b.PetInfo.Notes = notes.String
	return &b, nil
}

// Create inserts a booking in Pending state with capacity_released = 0
// and populates the generated ID and timestamps.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	const q = `INSERT INTO bookings
		(user_id, pet_id, service_id, timeslot_id, appointment_date, status,
		 customer_name, phone, email, address,
		 pet_name, pet_species, pet_breed, pet_age, pet_weight, pet_notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	var petID any
	if b.PetID != nil {
		petID = *b.PetID
	}
	res, err := r.db.ExecContext(ctx, q,
		b.UserID, petID, b.ServiceID, b.TimeslotID,
		b.AppointmentDate.Format("2006-01-02"), model.StatusPending,
		b.CustomerName, b.Phone, b.Email, b.Address,
		b.PetInfo.PetName, b.PetInfo.Species, b.PetInfo.Breed, b.PetInfo.Age,
		b.PetInfo.Weight, b.PetInfo.Notes)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	b.Status = model.StatusPending
	// Read back DB-assigned timestamps.
	return r.db.QueryRowContext(ctx,
		`SELECT created_at, updated_at FROM bookings WHERE id = ?`, b.ID).
		Scan(&b.CreatedAt, &b.UpdatedAt)
}

// GetByID loads one booking. Returns ErrBookingNotFound when absent.
func (r *BookingRepo) GetByID(ctx context.Context, id uint64) (*model.Booking, error) {
	b, err := scanBooking(r.db.QueryRowContext(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	return b, err
}

// UpdateStatusCAS transitions a booking from one observed status to a
// new one. It reports false without error when the row has moved on
// since the caller read it, which the lifecycle treats as a lost race.
// The cancel reason is only written when non-empty.
func (r *BookingRepo) UpdateStatusCAS(ctx context.Context, id uint64, from, to model.BookingStatus, cancelReason string) (bool, error) {
	const q = `UPDATE bookings
	           SET status = ?, cancel_reason = COALESCE(NULLIF(?, ''), cancel_reason)
	           WHERE id = ? AND status = ?`
	res, err := r.db.ExecContext(ctx, q, to, cancelReason, id, from)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// MarkCapacityReleased flips capacity_released from 0 to 1 and reports
// whether this call won the flip. Exactly one winner exists per
// booking, which keeps timeslot releases paired 1:1 with the reserve
// taken at creation, whatever mix of cancel and delete follows.
func (r *BookingRepo) MarkCapacityReleased(ctx context.Context, id uint64) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE bookings SET capacity_released = 1 WHERE id = ? AND capacity_released = 0`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// RebindTimeslot points a still-held booking at a different timeslot.
// The capacity_released guard refuses the move once a concurrent cancel
// or delete has returned the booking's place, so the mover never frees
// a slot the booking no longer holds. Reports false on a lost race and
// ErrBookingNotFound when the row is gone.
func (r *BookingRepo) RebindTimeslot(ctx context.Context, id, timeslotID uint64) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE bookings SET timeslot_id = ? WHERE id = ? AND capacity_released = 0`,
		timeslotID, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if n == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return false, err
		}
		return false, nil
	}
	return true, nil
}

// Delete removes a booking row. Returns ErrBookingNotFound when absent.
func (r *BookingRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// BookingDetail is a booking joined with its service and timeslot for
// display. It is returned by the list and detail queries.
type BookingDetail struct {
	ID              uint64              `json:"id"`
	UserID          uint64              `json:"user_id"`
	PetID           *uint64             `json:"pet_id,omitempty"`
	ServiceID       uint64              `json:"service_id"`
	ServiceName     string              `json:"service_name"`
	ServicePrice    uint32              `json:"service_price_cents"`
	TimeslotID      uint64              `json:"timeslot_id"`
	TimeslotHour    uint8               `json:"timeslot_hour"`
	AppointmentDate string              `json:"appointment_date"`
	Status          model.BookingStatus `json:"status"`
	CancelReason    string              `json:"cancel_reason,omitempty"`
	CustomerName    string              `json:"customer_name"`
	Phone           string              `json:"phone"`
	Email           string              `json:"email"`
	Address         string              `json:"address"`
	PetInfo         model.PetInfo       `json:"pet_info"`
	CreatedAt       time.Time           `json:"created_at"`
}

const detailQuery = `SELECT b.id, b.user_id, b.pet_id, b.service_id, s.name, s.price_cents,
	b.timeslot_id, t.hour, b.appointment_date, b.status, b.cancel_reason,
	b.customer_name, b.phone, b.email, b.address,
	b.pet_name, b.pet_species, b.pet_breed, b.pet_age, b.pet_weight, b.pet_notes,
	b.created_at
	FROM bookings b
	JOIN services s ON s.id = b.service_id
	JOIN timeslots t ON t.id = b.timeslot_id`

func scanDetail(row interface{ Scan(...any) error }) (*BookingDetail, error) {
	var (
		d      BookingDetail
		petID  sql.NullInt64
		reason sql.NullString
		notes  sql.NullString
		date   time.Time
	)
	err := row.Scan(&d.ID, &d.UserID, &petID, &d.ServiceID, &d.ServiceName, &d.ServicePrice,
		&d.TimeslotID, &d.TimeslotHour, &date, &d.Status, &reason,
		&d.CustomerName, &d.Phone, &d.Email, &d.Address,
		&d.PetInfo.PetName, &d.PetInfo.Species, &d.PetInfo.Breed, &d.PetInfo.Age,
		&d.PetInfo.Weight, &notes, &d.CreatedAt)
	if err != nil {
		return nil, err
	}
	if petID.Valid {
		id := uint64(petID.Int64)
		d.PetID = &id
	}
	d.CancelReason = reason.String
	d.PetInfo.Notes = notes.String
	d.AppointmentDate = date.Format("2006-01-02")
	return &d, nil
}

// GetDetailByID returns one booking with service and timeslot info.
func (r *BookingRepo) GetDetailByID(ctx context.Context, id uint64) (*BookingDetail, error) {
	d, err := scanDetail(r.db.QueryRowContext(ctx, detailQuery+` WHERE b.id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	return d, err
}

func (r *BookingRepo) queryDetails(ctx context.Context, q string, args ...any) ([]BookingDetail, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	details := make([]BookingDetail, 0)
	for rows.Next() {
		d, err := scanDetail(rows)
		if err != nil {
			return nil, err
		}
		details = append(details, *d)
	}
	return details, rows.Err()
}

// ListByUser returns all of a user's bookings, newest first.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]BookingDetail, error) {
	return r.queryDetails(ctx, detailQuery+` WHERE b.user_id = ? ORDER BY b.created_at DESC`, userID)
}

// ListByUserAndStatus filters a user's bookings by status.
func (r *BookingRepo) ListByUserAndStatus(ctx context.Context, userID uint64, status model.BookingStatus) ([]BookingDetail, error) {
	return r.queryDetails(ctx,
		detailQuery+` WHERE b.user_id = ? AND b.status = ? ORDER BY b.created_at DESC`,
		userID, status)
}

// ListAll returns every booking, newest first. Admin view.
func (r *BookingRepo) ListAll(ctx context.Context) ([]BookingDetail, error) {
	return r.queryDetails(ctx, detailQuery+` ORDER BY b.created_at DESC`)
}
