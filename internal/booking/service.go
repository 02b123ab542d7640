package booking

import (
	"context"
	"time"

	"github.com/appdotbuilder/gym-website/internal/email"
	"github.com/appdotbuilder/gym-website/internal/gymclass"
	"github.com/appdotbuilder/gym-website/internal/user"
)

var timeNow = time.Now

type Service interface {
	Book(ctx context.Context, req BookClassRequest) (*ClassBooking, error)
	CancelBooking(ctx context.Context, bookingID, userID int) (*ClassBooking, error)
	GetUserBookings(ctx context.Context, userID int) ([]BookingWithDetails, error)
	GetScheduleBookings(ctx context.Context, scheduleID int) ([]ClassBooking, error)
}

type service struct {
	repo         Repository
	userRepo     user.Repository
	scheduleRepo gymclass.Repository
	emailService *email.Service
}

func NewService(
	repo Repository,
	userRepo user.Repository,
	scheduleRepo gymclass.Repository,
	emailService *email.Service,
) Service {
	return &service{
		repo:         repo,
		userRepo:     userRepo,
		scheduleRepo: scheduleRepo,
		emailService: emailService,
	}
}

func (s *service) Book(ctx context.Context, req BookClassRequest) (*ClassBooking, error) {
	u, err := s.userRepo.FindByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	booking, err := s.repo.Book(ctx, req.UserID, req.ScheduleID, timeNow())
	if err != nil {
		return nil, err
	}

	// Notification email is best effort; a queue failure never fails the booking.
	if schedule, serr := s.scheduleRepo.GetScheduleByID(ctx, req.ScheduleID); serr == nil {
		details := schedule.StartTime.Format("Jan 2, 2006 at 3:04 PM")
		switch booking.Status {
		case StatusConfirmed:
			s.emailService.SendBookingConfirmation(ctx, u.Email, u.FirstName, "Gym Class", details, schedule.StartTime)
		case StatusWaitlist:
			s.emailService.SendWaitlistNotice(ctx, u.Email, u.FirstName, "Gym Class", details, schedule.StartTime)
		}
	}

	return booking, nil
}

func (s *service) CancelBooking(ctx context.Context, bookingID, userID int) (*ClassBooking, error) {
	booking, err := s.repo.Cancel(ctx, bookingID, userID, timeNow())
	if err != nil {
		return nil, err
	}

	u, _ := s.userRepo.FindByID(ctx, userID)
	if u != nil {
		details := ""
		if schedule, serr := s.scheduleRepo.GetScheduleByID(ctx, booking.ScheduleID); serr == nil {
			details = schedule.StartTime.Format("Jan 2, 2006 at 3:04 PM")
		}
		s.emailService.SendCancellation(ctx, u.Email, u.FirstName, "Gym Class", details)
	}

	return booking, nil
}

func (s *service) GetUserBookings(ctx context.Context, userID int) ([]BookingWithDetails, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	return s.repo.GetUserBookings(ctx, userID)
}

func (s *service) GetScheduleBookings(ctx context.Context, scheduleID int) ([]ClassBooking, error) {
	if _, err := s.scheduleRepo.GetScheduleByID(ctx, scheduleID); err != nil {
		return nil, err
	}

	return s.repo.GetScheduleBookings(ctx, scheduleID)
}
