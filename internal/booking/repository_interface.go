package booking

import (
	"context"
	"time"
)

type Repository interface {
	Book(ctx context.Context, userID, scheduleID int, bookedAt time.Time) (*ClassBooking, error)
	Cancel(ctx context.Context, bookingID, userID int, cancelledAt time.Time) (*ClassBooking, error)
	GetBookingByID(ctx context.Context, id int) (*ClassBooking, error)
	GetUserBookings(ctx context.Context, userID int) ([]BookingWithDetails, error)
	GetScheduleBookings(ctx context.Context, scheduleID int) ([]ClassBooking, error)
}
