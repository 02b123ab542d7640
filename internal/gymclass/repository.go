package gymclass

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

var (
	ErrClassNotFound    = errors.New("gym class not found")
	ErrScheduleNotFound = errors.New("class schedule not found")
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateClass(ctx context.Context, req CreateClassRequest) (*GymClass, error) {
	query := `
		INSERT INTO gym_classes (name, description, trainer_id, duration_minutes, capacity, difficulty)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, description, trainer_id, duration_minutes, capacity, difficulty, created_at
	`

	var gc GymClass
	err := r.db.GetContext(ctx, &gc, query, req.Name, req.Description, req.TrainerID, req.DurationMinutes, req.Capacity, req.Difficulty)
	if err != nil {
		return nil, err
	}

	return &gc, nil
}

func (r *repository) GetClassByID(ctx context.Context, id int) (*GymClass, error) {
	query := `
		SELECT id, name, description, trainer_id, duration_minutes, capacity, difficulty, created_at
		FROM gym_classes
		WHERE id = $1
	`

	var gc GymClass
	err := r.db.GetContext(ctx, &gc, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrClassNotFound
	}
	if err != nil {
		return nil, err
	}

	return &gc, nil
}

func (r *repository) ListClasses(ctx context.Context) ([]GymClass, error) {
	query := `
		SELECT id, name, description, trainer_id, duration_minutes, capacity, difficulty, created_at
		FROM gym_classes
		ORDER BY name ASC
	`

	var classes []GymClass
	err := r.db.SelectContext(ctx, &classes, query)
	if err != nil {
		return nil, err
	}

	return classes, nil
}

func (r *repository) CreateSchedule(ctx context.Context, classID int, startTime, endTime time.Time, room string, spots int) (*ClassSchedule, error) {
	query := `
		INSERT INTO class_schedules (class_id, start_time, end_time, room, available_spots)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, class_id, start_time, end_time, room, available_spots, is_cancelled, created_at
	`

	var cs ClassSchedule
	err := r.db.GetContext(ctx, &cs, query, classID, startTime, endTime, room, spots)
	if err != nil {
		return nil, err
	}

	return &cs, nil
}

func (r *repository) GetScheduleByID(ctx context.Context, id int) (*ClassSchedule, error) {
	query := `
		SELECT id, class_id, start_time, end_time, room, available_spots, is_cancelled, created_at
		FROM class_schedules
		WHERE id = $1
	`

	var cs ClassSchedule
	err := r.db.GetContext(ctx, &cs, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, err
	}

	return &cs, nil
}

func (r *repository) ListSchedules(ctx context.Context, classID int, date string) ([]ScheduleWithClass, error) {
	query := `
		SELECT s.id, s.class_id, s.start_time, s.end_time, s.room, s.available_spots, s.is_cancelled, s.created_at,
		       c.name AS class_name
		FROM class_schedules s
		JOIN gym_classes c ON c.id = s.class_id
	`
	conditions := []string{}
	args := []interface{}{}

	if classID > 0 {
		args = append(args, classID)
		conditions = append(conditions, fmt.Sprintf("s.class_id = $%d", len(args)))
	}
	if date != "" {
		args = append(args, date)
		conditions = append(conditions, fmt.Sprintf("DATE(s.start_time) = $%d", len(args)))
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY s.start_time ASC"

	var schedules []ScheduleWithClass
	err := r.db.SelectContext(ctx, &schedules, query, args...)
	if err != nil {
		return nil, err
	}

	return schedules, nil
}

func (r *repository) CancelSchedule(ctx context.Context, id int) (*ClassSchedule, error) {
	query := `
		UPDATE class_schedules
		SET is_cancelled = TRUE
		WHERE id = $1
		RETURNING id, class_id, start_time, end_time, room, available_spots, is_cancelled, created_at
	`

	var cs ClassSchedule
	err := r.db.GetContext(ctx, &cs, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, err
	}

	return &cs, nil
}
