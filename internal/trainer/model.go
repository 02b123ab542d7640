package trainer

import "time"

type Trainer struct {
	ID             int       `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Email          string    `db:"email" json:"email"`
	Phone          *string   `db:"phone" json:"phone,omitempty"`
	Specialization string    `db:"specialization" json:"specialization"`
	Bio            string    `db:"bio" json:"bio"`
	HourlyRate     float64   `db:"hourly_rate" json:"hourly_rate"`
	IsAvailable    bool      `db:"is_available" json:"is_available"`
	ImageURL       *string   `db:"image_url" json:"image_url,omitempty"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

type CreateTrainerRequest struct {
	Name           string  `json:"name" binding:"required"`
	Email          string  `json:"email" binding:"required,email"`
	Phone          *string `json:"phone,omitempty"`
	Specialization string  `json:"specialization" binding:"required"`
	Bio            string  `json:"bio"`
	HourlyRate     float64 `json:"hourly_rate" binding:"gte=0"`
	IsAvailable    *bool   `json:"is_available"`
	ImageURL       *string `json:"image_url,omitempty"`
}
