package facility

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrGymInfoNotSet = errors.New("gym info has not been set")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateFacility(ctx context.Context, req CreateFacilityRequest) (*Facility, error) {
	query := `
		INSERT INTO facilities (name, description, image_url)
		VALUES ($1, $2, $3)
		RETURNING id, name, description, image_url, created_at
	`

	var f Facility
	err := r.db.GetContext(ctx, &f, query, req.Name, req.Description, req.ImageURL)
	if err != nil {
		return nil, err
	}

	return &f, nil
}

func (r *repository) ListFacilities(ctx context.Context) ([]Facility, error) {
	query := `
		SELECT id, name, description, image_url, created_at
		FROM facilities
		ORDER BY name ASC
	`

	var facilities []Facility
	err := r.db.SelectContext(ctx, &facilities, query)
	if err != nil {
		return nil, err
	}

	return facilities, nil
}

func (r *repository) GetGymInfo(ctx context.Context) (*GymInfo, error) {
	query := `
		SELECT id, name, address, phone, email, opening_hours, created_at, updated_at
		FROM gym_info
		WHERE id = 1
	`

	var info GymInfo
	err := r.db.GetContext(ctx, &info, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGymInfoNotSet
	}
	if err != nil {
		return nil, err
	}

	return &info, nil
}

// UpsertGymInfo keeps gym_info a single row keyed on id 1.
func (r *repository) UpsertGymInfo(ctx context.Context, req UpdateGymInfoRequest) (*GymInfo, error) {
	query := `
		INSERT INTO gym_info (id, name, address, phone, email, opening_hours)
		VALUES (1, $1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
			address = EXCLUDED.address,
			phone = EXCLUDED.phone,
			email = EXCLUDED.email,
			opening_hours = EXCLUDED.opening_hours,
			updated_at = NOW()
		RETURNING id, name, address, phone, email, opening_hours, created_at, updated_at
	`

	var info GymInfo
	err := r.db.GetContext(ctx, &info, query, req.Name, req.Address, req.Phone, req.Email, req.OpeningHours)
	if err != nil {
		return nil, err
	}

	return &info, nil
}
