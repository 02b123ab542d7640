package trainer

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrTrainerNotFound = errors.New("trainer not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, req CreateTrainerRequest) (*Trainer, error) {
	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	query := `
		INSERT INTO trainers (name, email, phone, specialization, bio, hourly_rate, is_available, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, name, email, phone, specialization, bio, hourly_rate, is_available, image_url, created_at
	`

	var tr Trainer
	err := r.db.GetContext(ctx, &tr, query, req.Name, req.Email, req.Phone, req.Specialization, req.Bio, req.HourlyRate, isAvailable, req.ImageURL)
	if err != nil {
		return nil, err
	}

	return &tr, nil
}

func (r *repository) FindByID(ctx context.Context, id int) (*Trainer, error) {
	query := `
		SELECT id, name, email, phone, specialization, bio, hourly_rate, is_available, image_url, created_at
		FROM trainers
		WHERE id = $1
	`

	var tr Trainer
	err := r.db.GetContext(ctx, &tr, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTrainerNotFound
	}
	if err != nil {
		return nil, err
	}

	return &tr, nil
}

func (r *repository) List(ctx context.Context, onlyAvailable bool) ([]Trainer, error) {
	query := `
		SELECT id, name, email, phone, specialization, bio, hourly_rate, is_available, image_url, created_at
		FROM trainers
	`
	if onlyAvailable {
		query += " WHERE is_available = TRUE"
	}
	query += " ORDER BY name ASC"

	var trainers []Trainer
	err := r.db.SelectContext(ctx, &trainers, query)
	if err != nil {
		return nil, err
	}

	return trainers, nil
}
