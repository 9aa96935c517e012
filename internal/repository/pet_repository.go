package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/pawcare/pet-care-booking/internal/model"
)

// PetRepo provides access to the pets table. Every query is scoped by
// the owning user so a pet can never be read or modified by anyone
// else; a wrong owner surfaces as ErrPetNotFound.
type PetRepo struct {
	db *sql.DB
}

// NewPetRepo returns a PetRepo bound to the given database.
func NewPetRepo(db *sql.DB) *PetRepo { return &PetRepo{db: db} }

const petColumns = `id, user_id, name, species, breed, age, weight, gender, vaccinated, notes, image_url, created_at, updated_at`

func scanPet(row interface{ Scan(...any) error }) (*model.Pet, error) {
	var (
		p      model.Pet
		gender sql.NullString
		notes  sql.NullString
	)
	err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Species, &p.Breed, &p.Age, &p.Weight,
		&gender, &p.Vaccinated, &notes, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.Gender = gender.String
	p.Notes = notes.String
	return &p, nil
}

// GetByIDForUser loads a pet by id, restricted to its owner.
func (r *PetRepo) GetByIDForUser(ctx context.Context, petID, userID uint64) (*model.Pet, error) {
	p, err := scanPet(r.db.QueryRowContext(ctx,
		`SELECT `+petColumns+` FROM pets WHERE id = ? AND user_id = ?`, petID, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPetNotFound
	}
	return p, err
}

// FindByOwnerAndName returns the owner's first pet with the given name.
// It exists for vaccination history on legacy bookings that carried no
// pet reference, where only the snapshot name is available.
func (r *PetRepo) FindByOwnerAndName(ctx context.Context, userID uint64, name string) (*model.Pet, error) {
	p, err := scanPet(r.db.QueryRowContext(ctx,
		`SELECT `+petColumns+` FROM pets WHERE user_id = ? AND name = ? ORDER BY id LIMIT 1`,
		userID, name))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPetNotFound
	}
	return p, err
}

// ListByUser returns all pets owned by the user, newest first.
func (r *PetRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Pet, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+petColumns+` FROM pets WHERE user_id = ? ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	pets := make([]model.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		pets = append(pets, *p)
	}
	return pets, rows.Err()
}

// Create inserts a pet and populates the generated ID.
func (r *PetRepo) Create(ctx context.Context, p *model.Pet) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO pets (user_id, name, species, breed, age, weight, gender, vaccinated, notes, image_url)
		 VALUES (?, ?, ?, ?, ?, ?, NULLIF(?, ''), ?, ?, ?)`,
		p.UserID, p.Name, p.Species, p.Breed, p.Age, p.Weight, p.Gender, p.Vaccinated, p.Notes, p.ImageURL)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	return nil
}

// Update rewrites the editable fields of an owned pet. Returns
// ErrPetNotFound when the pet is absent or owned by someone else.
func (r *PetRepo) Update(ctx context.Context, p *model.Pet) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE pets SET name = ?, species = ?, breed = ?, age = ?, weight = ?,
		        gender = NULLIF(?, ''), vaccinated = ?, notes = ?, image_url = ?
		 WHERE id = ? AND user_id = ?`,
		p.Name, p.Species, p.Breed, p.Age, p.Weight, p.Gender, p.Vaccinated, p.Notes, p.ImageURL,
		p.ID, p.UserID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		if _, err := r.GetByIDForUser(ctx, p.ID, p.UserID); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes an owned pet. Returns ErrPetNotFound when nothing matched.
func (r *PetRepo) Delete(ctx context.Context, petID, userID uint64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM pets WHERE id = ? AND user_id = ?`, petID, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrPetNotFound
	}
	return nil
}
