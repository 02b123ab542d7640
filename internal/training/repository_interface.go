package training

import (
	"context"
	"time"
)

type Repository interface {
	BookSession(ctx context.Context, userID, trainerID int, sessionDate, startTime, endTime string, notes *string, price float64, now time.Time) (*Session, error)
	GetSessionByID(ctx context.Context, id int) (*Session, error)
	UpdateSession(ctx context.Context, id int, req UpdateSessionRequest, now time.Time) (*Session, error)
	ListUserSessions(ctx context.Context, userID int) ([]Session, error)
	ListTrainerSessions(ctx context.Context, trainerID int, date string) ([]Session, error)
}
