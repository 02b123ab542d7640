package facility

import "time"

type Facility struct {
	ID          int       `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	ImageURL    *string   `db:"image_url" json:"image_url,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// GymInfo is the single descriptive record shown on the public site.
type GymInfo struct {
	ID           int       `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Address      string    `db:"address" json:"address"`
	Phone        string    `db:"phone" json:"phone"`
	Email        string    `db:"email" json:"email"`
	OpeningHours string    `db:"opening_hours" json:"opening_hours"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

type CreateFacilityRequest struct {
	Name        string  `json:"name" binding:"required" example:"Lap Pool"`
	Description string  `json:"description" example:"25m heated indoor pool"`
	ImageURL    *string `json:"image_url,omitempty"`
}

type UpdateGymInfoRequest struct {
	Name         string `json:"name" binding:"required" example:"Iron Works Gym"`
	Address      string `json:"address" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	OpeningHours string `json:"opening_hours" binding:"required" example:"Mon-Fri 06:00-22:00, Sat-Sun 08:00-20:00"`
}
