package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/pawcare/pet-care-booking/internal/model"
)

// ServiceRepo provides access to the care service catalog.
type ServiceRepo struct {
	db *sql.DB
}

// NewServiceRepo returns a ServiceRepo bound to the given database.
func NewServiceRepo(db *sql.DB) *ServiceRepo { return &ServiceRepo{db: db} }

const serviceColumns = `id, name, description, price_cents, is_vaccine, is_active, created_at, updated_at`

// GetByID loads one service. Returns ErrServiceNotFound when absent.
func (r *ServiceRepo) GetByID(ctx context.Context, id uint64) (*model.Service, error) {
	var s model.Service
	err := r.db.QueryRowContext(ctx,
		`SELECT `+serviceColumns+` FROM services WHERE id = ?`, id).Scan(
		&s.ID, &s.Name, &s.Description, &s.PriceCents, &s.IsVaccine, &s.IsActive,
		&s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// List returns catalog services ordered by name. When activeOnly is
// set, deactivated services are filtered out (the public view).
func (r *ServiceRepo) List(ctx context.Context, activeOnly bool) ([]model.Service, error) {
	q := `SELECT ` + serviceColumns + ` FROM services`
	if activeOnly {
		q += ` WHERE is_active = 1`
	}
	q += ` ORDER BY name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	services := make([]model.Service, 0)
	for rows.Next() {
		var s model.Service
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.PriceCents, &s.IsVaccine,
			&s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		services = append(services, s)
	}
	return services, rows.Err()
}

// Create inserts a service and populates the generated ID.
func (r *ServiceRepo) Create(ctx context.Context, s *model.Service) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO services (name, description, price_cents, is_vaccine, is_active)
		 VALUES (?, ?, ?, ?, ?)`,
		s.Name, s.Description, s.PriceCents, s.IsVaccine, s.IsActive)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return nil
}

// Update rewrites the editable fields of a service.
func (r *ServiceRepo) Update(ctx context.Context, s *model.Service) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE services SET name = ?, description = ?, price_cents = ?, is_vaccine = ?, is_active = ?
		 WHERE id = ?`,
		s.Name, s.Description, s.PriceCents, s.IsVaccine, s.IsActive, s.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		if _, err := r.GetByID(ctx, s.ID); err != nil {
			return err
		}
	}
	return nil
}
