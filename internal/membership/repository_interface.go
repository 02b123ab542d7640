package membership

import (
	"context"
	"time"
)

type Repository interface {
	CreateTier(ctx context.Context, name, description string, price float64, durationMonths int, features []string, isActive bool) (*MembershipTier, error)
	GetTierByID(ctx context.Context, id int) (*MembershipTier, error)
	ListTiers(ctx context.Context, onlyActive bool) ([]MembershipTier, error)
	CreateMembership(ctx context.Context, userID, tierID int, startDate, endDate time.Time) (*UserMembership, error)
	GetCurrentMembership(ctx context.Context, userID int) (*UserMembership, error)
}
