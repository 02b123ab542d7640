package booking

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

var (
	ErrScheduleNotFound = errors.New("class schedule not found")
	ErrAlreadyBooked    = errors.New("user already has a confirmed booking for this schedule")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrAlreadyCancelled = errors.New("booking already cancelled")
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// Book locks the schedule row, then either takes a spot or joins the
// waitlist. Cancelled schedules are treated the same as missing ones.
func (r *repository) Book(ctx context.Context, userID, scheduleID int, bookedAt time.Time) (*ClassBooking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var schedule struct {
		ID             int  `db:"id"`
		AvailableSpots int  `db:"available_spots"`
		IsCancelled    bool `db:"is_cancelled"`
	}
	err = tx.QueryRowxContext(ctx,
		`SELECT id, available_spots, is_cancelled
		 FROM class_schedules
		 WHERE id = $1
		 FOR UPDATE`,
		scheduleID,
	).StructScan(&schedule)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}
	if schedule.IsCancelled {
		return nil, ErrScheduleNotFound
	}

	var exists bool
	err = tx.GetContext(ctx, &exists,
		`SELECT EXISTS(
			SELECT 1 FROM class_bookings
			WHERE user_id = $1 AND schedule_id = $2 AND status = 'confirmed'
		)`,
		userID, scheduleID,
	)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyBooked
	}

	status := StatusWaitlist
	if schedule.AvailableSpots > 0 {
		status = StatusConfirmed
		_, err = tx.ExecContext(ctx,
			`UPDATE class_schedules
			 SET available_spots = available_spots - 1
			 WHERE id = $1`,
			scheduleID,
		)
		if err != nil {
			return nil, err
		}
	}

	var booking ClassBooking
	err = tx.QueryRowxContext(ctx,
		`INSERT INTO class_bookings (user_id, schedule_id, status, booked_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, user_id, schedule_id, status, booked_at, cancelled_at`,
		userID, scheduleID, status, bookedAt,
	).StructScan(&booking)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &booking, nil
}

// Cancel marks the booking cancelled. The user scope in the lookup means
// someone else's booking reads as not found. Spots are not released and
// the waitlist is not promoted.
func (r *repository) Cancel(ctx context.Context, bookingID, userID int, cancelledAt time.Time) (*ClassBooking, error) {
	var current ClassBooking
	err := r.db.GetContext(ctx, &current,
		`SELECT id, user_id, schedule_id, status, booked_at, cancelled_at
		 FROM class_bookings
		 WHERE id = $1 AND user_id = $2`,
		bookingID, userID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if current.Status == StatusCancelled {
		return nil, ErrAlreadyCancelled
	}

	var booking ClassBooking
	err = r.db.QueryRowxContext(ctx,
		`UPDATE class_bookings
		 SET status = 'cancelled', cancelled_at = $1
		 WHERE id = $2
		 RETURNING id, user_id, schedule_id, status, booked_at, cancelled_at`,
		cancelledAt, bookingID,
	).StructScan(&booking)
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

func (r *repository) GetBookingByID(ctx context.Context, id int) (*ClassBooking, error) {
	query := `
		SELECT id, user_id, schedule_id, status, booked_at, cancelled_at
		FROM class_bookings
		WHERE id = $1
	`

	var booking ClassBooking
	err := r.db.GetContext(ctx, &booking, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	return &booking, nil
}

func (r *repository) GetUserBookings(ctx context.Context, userID int) ([]BookingWithDetails, error) {
	query := `
		SELECT
			b.id,
			b.user_id,
			b.schedule_id,
			b.status,
			b.booked_at,
			b.cancelled_at,
			c.name AS class_name,
			s.start_time,
			s.end_time,
			s.room
		FROM class_bookings b
		JOIN class_schedules s ON b.schedule_id = s.id
		JOIN gym_classes c ON s.class_id = c.id
		WHERE b.user_id = $1
		ORDER BY b.booked_at DESC
	`

	var bookings []BookingWithDetails
	err := r.db.SelectContext(ctx, &bookings, query, userID)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *repository) GetScheduleBookings(ctx context.Context, scheduleID int) ([]ClassBooking, error) {
	query := `
		SELECT id, user_id, schedule_id, status, booked_at, cancelled_at
		FROM class_bookings
		WHERE schedule_id = $1
		ORDER BY booked_at ASC
	`

	var bookings []ClassBooking
	err := r.db.SelectContext(ctx, &bookings, query, scheduleID)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}
