package training

import (
	"time"

	"github.com/appdotbuilder/gym-website/internal/api"
)

type SessionStatus string

const (
	StatusScheduled SessionStatus = "scheduled"
	StatusCompleted SessionStatus = "completed"
	StatusCancelled SessionStatus = "cancelled"
)

// Session start and end times are zero-padded 24-hour "HH:MM" strings, so
// lexicographic comparison matches wall-clock order within a day.
type Session struct {
	ID          int           `db:"id" json:"id"`
	UserID      int           `db:"user_id" json:"user_id"`
	TrainerID   int           `db:"trainer_id" json:"trainer_id"`
	SessionDate time.Time     `db:"session_date" json:"session_date"`
	StartTime   string        `db:"start_time" json:"start_time" example:"09:00"`
	EndTime     string        `db:"end_time" json:"end_time" example:"10:30"`
	Status      SessionStatus `db:"status" json:"status"`
	Notes       *string       `db:"notes" json:"notes,omitempty"`
	Price       float64       `db:"price" json:"price"`
	CreatedAt   time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at" json:"updated_at"`
}

type BookSessionRequest struct {
	UserID      int     `json:"user_id" binding:"required" example:"1"`
	TrainerID   int     `json:"trainer_id" binding:"required" example:"1"`
	SessionDate string  `json:"session_date" binding:"required,datetime=2006-01-02" example:"2024-06-15"`
	StartTime   string  `json:"start_time" binding:"required,datetime=15:04" example:"09:00"`
	EndTime     string  `json:"end_time" binding:"required,datetime=15:04" example:"10:30"`
	Notes       *string `json:"notes,omitempty"`
}

// UpdateSessionRequest carries a partial update. A missing notes field keeps
// the stored value; an explicit null clears it.
type UpdateSessionRequest struct {
	UserID int                `json:"user_id" binding:"required" example:"1"`
	Status *SessionStatus     `json:"status,omitempty" binding:"omitempty,oneof=scheduled completed cancelled"`
	Notes  api.OptionalString `json:"notes" swaggertype:"string"`
}

type AvailabilityResponse struct {
	TrainerID      int      `json:"trainer_id"`
	Date           string   `json:"date" example:"2024-06-15"`
	AvailableSlots []string `json:"available_slots" example:"09:00,10:00"`
}
