package booking

import "time"

type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusWaitlist  BookingStatus = "waitlist"
	StatusCancelled BookingStatus = "cancelled"
)

type ClassBooking struct {
	ID          int           `db:"id" json:"id"`
	UserID      int           `db:"user_id" json:"user_id"`
	ScheduleID  int           `db:"schedule_id" json:"schedule_id"`
	Status      BookingStatus `db:"status" json:"status"`
	BookedAt    time.Time     `db:"booked_at" json:"booked_at"`
	CancelledAt *time.Time    `db:"cancelled_at" json:"cancelled_at,omitempty"`
}

type BookingWithDetails struct {
	ClassBooking
	ClassName string    `db:"class_name" json:"class_name"`
	StartTime time.Time `db:"start_time" json:"start_time"`
	EndTime   time.Time `db:"end_time" json:"end_time"`
	Room      string    `db:"room" json:"room"`
}

type BookClassRequest struct {
	UserID     int `json:"user_id" binding:"required" example:"1"`
	ScheduleID int `json:"schedule_id" binding:"required" example:"1"`
}

type CancelBookingRequest struct {
	UserID int `json:"user_id" binding:"required" example:"1"`
}

type CancelBookingResponse struct {
	Booking *ClassBooking `json:"booking"`
	Message string        `json:"message" example:"Booking cancelled successfully"`
}
