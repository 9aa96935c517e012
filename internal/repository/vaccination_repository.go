package repository

import (
	"context"
	"database/sql"

	"github.com/pawcare/pet-care-booking/internal/model"
)

// VaccinationHistoryRepo provides access to the append-only
// vaccination_history table. There is no update or delete path; the
// unique key on booking_id makes the once-per-booking guarantee hold
// even if a completion transition is replayed.
type VaccinationHistoryRepo struct {
	db *sql.DB
}

// NewVaccinationHistoryRepo returns a repo bound to the given database.
func NewVaccinationHistoryRepo(db *sql.DB) *VaccinationHistoryRepo {
	return &VaccinationHistoryRepo{db: db}
}

// Create appends one history record and populates the generated ID.
func (r *VaccinationHistoryRepo) Create(ctx context.Context, h *model.VaccinationHistory) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO vaccination_history (user_id, pet_id, booking_id, service_id, administered_on, notes)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		h.UserID, h.PetID, h.BookingID, h.ServiceID,
		h.AdministeredOn.Format("2006-01-02"), h.Notes)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	h.ID = uint64(id)
	return nil
}

const historyColumns = `id, user_id, pet_id, booking_id, service_id, administered_on, notes, created_at`

func (r *VaccinationHistoryRepo) list(ctx context.Context, q string, args ...any) ([]model.VaccinationHistory, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.VaccinationHistory, 0)
	for rows.Next() {
		var h model.VaccinationHistory
		if err := rows.Scan(&h.ID, &h.UserID, &h.PetID, &h.BookingID, &h.ServiceID,
			&h.AdministeredOn, &h.Notes, &h.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// ListByUser returns a user's vaccination records, newest first.
func (r *VaccinationHistoryRepo) ListByUser(ctx context.Context, userID uint64) ([]model.VaccinationHistory, error) {
	return r.list(ctx,
		`SELECT `+historyColumns+` FROM vaccination_history WHERE user_id = ? ORDER BY administered_on DESC`,
		userID)
}

// ListByPet returns one pet's vaccination records, newest first.
func (r *VaccinationHistoryRepo) ListByPet(ctx context.Context, petID uint64) ([]model.VaccinationHistory, error) {
	return r.list(ctx,
		`SELECT `+historyColumns+` FROM vaccination_history WHERE pet_id = ? ORDER BY administered_on DESC`,
		petID)
}
