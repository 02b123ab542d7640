package training

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/appdotbuilder/gym-website/internal/trainer"
)

var (
	ErrSessionNotFound = errors.New("training session not found")
	ErrSessionConflict = errors.New("session overlaps an existing session for this trainer")
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// BookSession serializes on the trainer row so two overlapping requests for
// the same trainer cannot both pass the conflict check. Back-to-back sessions
// sharing a boundary do not conflict; the overlap test is half-open.
func (r *repository) BookSession(ctx context.Context, userID, trainerID int, sessionDate, startTime, endTime string, notes *string, price float64, now time.Time) (*Session, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var lockedID int
	err = tx.GetContext(ctx, &lockedID,
		`SELECT id FROM trainers WHERE id = $1 FOR UPDATE`,
		trainerID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, trainer.ErrTrainerNotFound
		}
		return nil, err
	}

	var conflict bool
	err = tx.GetContext(ctx, &conflict,
		`SELECT EXISTS(
			SELECT 1 FROM personal_training_sessions
			WHERE trainer_id = $1 AND session_date = $2 AND status = 'scheduled'
			AND start_time < $3 AND end_time > $4
		)`,
		trainerID, sessionDate, endTime, startTime,
	)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, ErrSessionConflict
	}

	var session Session
	err = tx.QueryRowxContext(ctx,
		`INSERT INTO personal_training_sessions (user_id, trainer_id, session_date, start_time, end_time, status, notes, price, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, 'scheduled', $6, $7, $8, $8)
		 RETURNING id, user_id, trainer_id, session_date, start_time, end_time, status, notes, price, created_at, updated_at`,
		userID, trainerID, sessionDate, startTime, endTime, notes, price, now,
	).StructScan(&session)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &session, nil
}

func (r *repository) GetSessionByID(ctx context.Context, id int) (*Session, error) {
	query := `
		SELECT id, user_id, trainer_id, session_date, start_time, end_time, status, notes, price, created_at, updated_at
		FROM personal_training_sessions
		WHERE id = $1
	`

	var session Session
	err := r.db.GetContext(ctx, &session, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	return &session, nil
}

// UpdateSession scopes the lookup by owner, so another user's session reads
// as not found.
func (r *repository) UpdateSession(ctx context.Context, id int, req UpdateSessionRequest, now time.Time) (*Session, error) {
	sets := []string{"updated_at = $1"}
	args := []interface{}{now}
	n := 2

	add := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, n))
		args = append(args, value)
		n++
	}

	if req.Status != nil {
		add("status", *req.Status)
	}
	if req.Notes.Set {
		add("notes", req.Notes.Value)
	}

	query := fmt.Sprintf(`
		UPDATE personal_training_sessions
		SET %s
		WHERE id = $%d AND user_id = $%d
		RETURNING id, user_id, trainer_id, session_date, start_time, end_time, status, notes, price, created_at, updated_at
	`, strings.Join(sets, ", "), n, n+1)
	args = append(args, id, req.UserID)

	var session Session
	err := r.db.GetContext(ctx, &session, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	return &session, nil
}

func (r *repository) ListUserSessions(ctx context.Context, userID int) ([]Session, error) {
	query := `
		SELECT id, user_id, trainer_id, session_date, start_time, end_time, status, notes, price, created_at, updated_at
		FROM personal_training_sessions
		WHERE user_id = $1
		ORDER BY session_date DESC, start_time DESC
	`

	var sessions []Session
	err := r.db.SelectContext(ctx, &sessions, query, userID)
	if err != nil {
		return nil, err
	}

	return sessions, nil
}

func (r *repository) ListTrainerSessions(ctx context.Context, trainerID int, date string) ([]Session, error) {
	query := `
		SELECT id, user_id, trainer_id, session_date, start_time, end_time, status, notes, price, created_at, updated_at
		FROM personal_training_sessions
		WHERE trainer_id = $1
	`
	args := []interface{}{trainerID}

	if date != "" {
		query += " AND session_date = $2"
		args = append(args, date)
	}
	query += " ORDER BY session_date ASC, start_time ASC"

	var sessions []Session
	err := r.db.SelectContext(ctx, &sessions, query, args...)
	if err != nil {
		return nil, err
	}

	return sessions, nil
}
