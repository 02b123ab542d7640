package gymclass

import (
	"context"
	"time"
)

type Repository interface {
	CreateClass(ctx context.Context, req CreateClassRequest) (*GymClass, error)
	GetClassByID(ctx context.Context, id int) (*GymClass, error)
	ListClasses(ctx context.Context) ([]GymClass, error)
	CreateSchedule(ctx context.Context, classID int, startTime, endTime time.Time, room string, spots int) (*ClassSchedule, error)
	GetScheduleByID(ctx context.Context, id int) (*ClassSchedule, error)
	ListSchedules(ctx context.Context, classID int, date string) ([]ScheduleWithClass, error)
	CancelSchedule(ctx context.Context, id int) (*ClassSchedule, error)
}
