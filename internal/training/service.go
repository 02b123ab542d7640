package training

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/appdotbuilder/gym-website/internal/email"
	"github.com/appdotbuilder/gym-website/internal/trainer"
	"github.com/appdotbuilder/gym-website/internal/user"
)

var (
	ErrTrainerUnavailable  = errors.New("trainer is not available for booking")
	ErrSessionTimesInvalid = errors.New("session end time must be after start time")
)

var timeNow = time.Now

type Service interface {
	BookSession(ctx context.Context, req BookSessionRequest) (*Session, error)
	UpdateSession(ctx context.Context, sessionID int, req UpdateSessionRequest) (*Session, error)
	GetSessionByID(ctx context.Context, id int) (*Session, error)
	ListUserSessions(ctx context.Context, userID int) ([]Session, error)
	ListTrainerSessions(ctx context.Context, trainerID int, date string) ([]Session, error)
	GetAvailability(ctx context.Context, trainerID int, date string) ([]string, error)
}

type service struct {
	repo         Repository
	userRepo     user.Repository
	trainerRepo  trainer.Repository
	emailService *email.Service
}

func NewService(
	repo Repository,
	userRepo user.Repository,
	trainerRepo trainer.Repository,
	emailService *email.Service,
) Service {
	return &service{
		repo:         repo,
		userRepo:     userRepo,
		trainerRepo:  trainerRepo,
		emailService: emailService,
	}
}

func (s *service) BookSession(ctx context.Context, req BookSessionRequest) (*Session, error) {
	u, err := s.userRepo.FindByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	t, err := s.trainerRepo.FindByID(ctx, req.TrainerID)
	if err != nil {
		return nil, err
	}
	if !t.IsAvailable {
		return nil, ErrTrainerUnavailable
	}

	// Zero-padded HH:MM strings order lexicographically, and no
	// cross-midnight session is representable.
	if req.EndTime <= req.StartTime {
		return nil, ErrSessionTimesInvalid
	}

	price := sessionPrice(t.HourlyRate, req.StartTime, req.EndTime)

	session, err := s.repo.BookSession(ctx, req.UserID, req.TrainerID, req.SessionDate, req.StartTime, req.EndTime, req.Notes, price, timeNow())
	if err != nil {
		return nil, err
	}

	// Confirmation email is best effort; a queue failure never fails the booking.
	when, _ := time.Parse("2006-01-02 15:04", req.SessionDate+" "+req.StartTime)
	s.emailService.SendBookingConfirmation(
		ctx,
		u.Email,
		u.FirstName,
		"Personal Training",
		fmt.Sprintf("Session with %s", t.Name),
		when,
	)

	return session, nil
}

func (s *service) UpdateSession(ctx context.Context, sessionID int, req UpdateSessionRequest) (*Session, error) {
	return s.repo.UpdateSession(ctx, sessionID, req, timeNow())
}

func (s *service) GetSessionByID(ctx context.Context, id int) (*Session, error) {
	return s.repo.GetSessionByID(ctx, id)
}

func (s *service) ListUserSessions(ctx context.Context, userID int) ([]Session, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	return s.repo.ListUserSessions(ctx, userID)
}

func (s *service) ListTrainerSessions(ctx context.Context, trainerID int, date string) ([]Session, error) {
	if _, err := s.trainerRepo.FindByID(ctx, trainerID); err != nil {
		return nil, err
	}

	return s.repo.ListTrainerSessions(ctx, trainerID, date)
}

// GetAvailability returns the hourly business-hour slots (09:00 through
// 20:00) not covered by a scheduled session on the given date.
func (s *service) GetAvailability(ctx context.Context, trainerID int, date string) ([]string, error) {
	t, err := s.trainerRepo.FindByID(ctx, trainerID)
	if err != nil {
		return nil, err
	}
	if !t.IsAvailable {
		return nil, ErrTrainerUnavailable
	}

	sessions, err := s.repo.ListTrainerSessions(ctx, trainerID, date)
	if err != nil {
		return nil, err
	}

	available := make([]string, 0, 12)
	for h := 9; h <= 20; h++ {
		slot := fmt.Sprintf("%02d:00", h)
		if !slotTaken(slot, sessions) {
			available = append(available, slot)
		}
	}

	return available, nil
}

// slotTaken reports whether the slot falls inside [start, end) of any
// scheduled session. Cancelled and completed sessions never block a slot.
func slotTaken(slot string, sessions []Session) bool {
	for _, sess := range sessions {
		if sess.Status != StatusScheduled {
			continue
		}
		if sess.StartTime <= slot && slot < sess.EndTime {
			return true
		}
	}
	return false
}

// sessionPrice charges the trainer's hourly rate pro-rated by the minute,
// rounded to cents.
func sessionPrice(hourlyRate float64, startTime, endTime string) float64 {
	minutes := minuteOfDay(endTime) - minuteOfDay(startTime)
	price := hourlyRate * float64(minutes) / 60
	return math.Round(price*100) / 100
}

func minuteOfDay(hhmm string) int {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return 0
	}
	return t.Hour()*60 + t.Minute()
}
