package membership

import (
	"context"
	"errors"

	"github.com/appdotbuilder/gym-website/internal/user"
)

var ErrTierInactive = errors.New("membership tier is not active")

type Service interface {
	CreateTier(ctx context.Context, req CreateTierRequest) (*MembershipTier, error)
	GetTierByID(ctx context.Context, id int) (*MembershipTier, error)
	ListTiers(ctx context.Context, onlyActive bool) ([]MembershipTier, error)
	CreateMembership(ctx context.Context, req CreateMembershipRequest) (*UserMembership, error)
	GetCurrentMembership(ctx context.Context, userID int) (*UserMembership, error)
}

type service struct {
	repo     Repository
	userRepo user.Repository
}

func NewService(repo Repository, userRepo user.Repository) Service {
	return &service{
		repo:     repo,
		userRepo: userRepo,
	}
}

func (s *service) CreateTier(ctx context.Context, req CreateTierRequest) (*MembershipTier, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	return s.repo.CreateTier(ctx, req.Name, req.Description, req.Price, req.DurationMonths, req.Features, isActive)
}

func (s *service) GetTierByID(ctx context.Context, id int) (*MembershipTier, error) {
	return s.repo.GetTierByID(ctx, id)
}

func (s *service) ListTiers(ctx context.Context, onlyActive bool) ([]MembershipTier, error) {
	return s.repo.ListTiers(ctx, onlyActive)
}

func (s *service) CreateMembership(ctx context.Context, req CreateMembershipRequest) (*UserMembership, error) {
	if _, err := s.userRepo.FindByID(ctx, req.UserID); err != nil {
		return nil, err
	}

	tier, err := s.repo.GetTierByID(ctx, req.MembershipTierID)
	if err != nil {
		return nil, err
	}
	if !tier.IsActive {
		return nil, ErrTierInactive
	}

	// AddDate applies calendar-month arithmetic; an overflowing day-of-month
	// rolls forward into the next month (Feb 29 + 12 months lands on Mar 1).
	endDate := req.StartDate.AddDate(0, tier.DurationMonths, 0)

	return s.repo.CreateMembership(ctx, req.UserID, tier.ID, req.StartDate, endDate)
}

func (s *service) GetCurrentMembership(ctx context.Context, userID int) (*UserMembership, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	return s.repo.GetCurrentMembership(ctx, userID)
}
