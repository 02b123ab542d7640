package gymclass

import (
	"context"
	"errors"

	"github.com/appdotbuilder/gym-website/internal/trainer"
)

var ErrScheduleInvalid = errors.New("schedule end time must be after start time")

type Service interface {
	CreateClass(ctx context.Context, req CreateClassRequest) (*GymClass, error)
	GetClassByID(ctx context.Context, id int) (*GymClass, error)
	ListClasses(ctx context.Context) ([]GymClass, error)
	CreateSchedule(ctx context.Context, classID int, req CreateScheduleRequest) (*ClassSchedule, error)
	ListSchedules(ctx context.Context, classID int, date string) ([]ScheduleWithClass, error)
	CancelSchedule(ctx context.Context, id int) (*ClassSchedule, error)
}

type service struct {
	repo        Repository
	trainerRepo trainer.Repository
}

func NewService(repo Repository, trainerRepo trainer.Repository) Service {
	return &service{
		repo:        repo,
		trainerRepo: trainerRepo,
	}
}

func (s *service) CreateClass(ctx context.Context, req CreateClassRequest) (*GymClass, error) {
	if _, err := s.trainerRepo.FindByID(ctx, req.TrainerID); err != nil {
		return nil, err
	}

	return s.repo.CreateClass(ctx, req)
}

func (s *service) GetClassByID(ctx context.Context, id int) (*GymClass, error) {
	return s.repo.GetClassByID(ctx, id)
}

func (s *service) ListClasses(ctx context.Context) ([]GymClass, error) {
	return s.repo.ListClasses(ctx)
}

// CreateSchedule seeds available_spots from the class capacity.
func (s *service) CreateSchedule(ctx context.Context, classID int, req CreateScheduleRequest) (*ClassSchedule, error) {
	gc, err := s.repo.GetClassByID(ctx, classID)
	if err != nil {
		return nil, err
	}

	if !req.EndTime.After(req.StartTime) {
		return nil, ErrScheduleInvalid
	}

	return s.repo.CreateSchedule(ctx, classID, req.StartTime, req.EndTime, req.Room, gc.Capacity)
}

func (s *service) ListSchedules(ctx context.Context, classID int, date string) ([]ScheduleWithClass, error) {
	return s.repo.ListSchedules(ctx, classID, date)
}

// CancelSchedule flags the schedule; existing bookings are left untouched.
func (s *service) CancelSchedule(ctx context.Context, id int) (*ClassSchedule, error) {
	return s.repo.CancelSchedule(ctx, id)
}
