package gymclass

import "time"

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

type GymClass struct {
	ID              int        `db:"id" json:"id"`
	Name            string     `db:"name" json:"name"`
	Description     string     `db:"description" json:"description"`
	TrainerID       int        `db:"trainer_id" json:"trainer_id"`
	DurationMinutes int        `db:"duration_minutes" json:"duration_minutes"`
	Capacity        int        `db:"capacity" json:"capacity"`
	Difficulty      Difficulty `db:"difficulty" json:"difficulty"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
}

type ClassSchedule struct {
	ID             int       `db:"id" json:"id"`
	ClassID        int       `db:"class_id" json:"class_id"`
	StartTime      time.Time `db:"start_time" json:"start_time"`
	EndTime        time.Time `db:"end_time" json:"end_time"`
	Room           string    `db:"room" json:"room"`
	AvailableSpots int       `db:"available_spots" json:"available_spots"`
	IsCancelled    bool      `db:"is_cancelled" json:"is_cancelled"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// ScheduleWithClass decorates a schedule with its class name for listings.
type ScheduleWithClass struct {
	ClassSchedule
	ClassName string `db:"class_name" json:"class_name"`
}

type CreateClassRequest struct {
	Name            string     `json:"name" binding:"required"`
	Description     string     `json:"description"`
	TrainerID       int        `json:"trainer_id" binding:"required"`
	DurationMinutes int        `json:"duration_minutes" binding:"required,gt=0"`
	Capacity        int        `json:"capacity" binding:"required,gt=0"`
	Difficulty      Difficulty `json:"difficulty" binding:"required,oneof=beginner intermediate advanced"`
}

type CreateScheduleRequest struct {
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
	Room      string    `json:"room" binding:"required"`
}
