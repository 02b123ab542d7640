package membership

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var ErrTierNotFound = errors.New("membership tier not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateTier(ctx context.Context, name, description string, price float64, durationMonths int, features []string, isActive bool) (*MembershipTier, error) {
	query := `
		INSERT INTO membership_tiers (name, description, price, duration_months, features, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, description, price, duration_months, features, is_active, created_at
	`

	var tier MembershipTier
	err := r.db.GetContext(ctx, &tier, query, name, description, price, durationMonths, pq.StringArray(features), isActive)
	if err != nil {
		return nil, err
	}

	return &tier, nil
}

func (r *repository) GetTierByID(ctx context.Context, id int) (*MembershipTier, error) {
	query := `
		SELECT id, name, description, price, duration_months, features, is_active, created_at
		FROM membership_tiers
		WHERE id = $1
	`

	var tier MembershipTier
	err := r.db.GetContext(ctx, &tier, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTierNotFound
	}
	if err != nil {
		return nil, err
	}

	return &tier, nil
}

func (r *repository) ListTiers(ctx context.Context, onlyActive bool) ([]MembershipTier, error) {
	query := `
		SELECT id, name, description, price, duration_months, features, is_active, created_at
		FROM membership_tiers
	`
	if onlyActive {
		query += " WHERE is_active = TRUE"
	}
	query += " ORDER BY price ASC"

	var tiers []MembershipTier
	err := r.db.SelectContext(ctx, &tiers, query)
	if err != nil {
		return nil, err
	}

	return tiers, nil
}

func (r *repository) CreateMembership(ctx context.Context, userID, tierID int, startDate, endDate time.Time) (*UserMembership, error) {
	query := `
		INSERT INTO user_memberships (user_id, membership_tier_id, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, 'active')
		RETURNING id, user_id, membership_tier_id, start_date, end_date, status, created_at
	`

	var m UserMembership
	err := r.db.GetContext(ctx, &m, query, userID, tierID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	return &m, nil
}

// GetCurrentMembership returns the newest active membership, or nil when the
// user has none. The stored status decides, not a date comparison.
func (r *repository) GetCurrentMembership(ctx context.Context, userID int) (*UserMembership, error) {
	query := `
		SELECT id, user_id, membership_tier_id, start_date, end_date, status, created_at
		FROM user_memberships
		WHERE user_id = $1 AND status = 'active'
		ORDER BY created_at DESC
		LIMIT 1
	`

	var m UserMembership
	err := r.db.GetContext(ctx, &m, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &m, nil
}
