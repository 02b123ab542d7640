package membership

import (
	"time"

	"github.com/lib/pq"
)

type MembershipStatus string

const (
	StatusActive    MembershipStatus = "active"
	StatusExpired   MembershipStatus = "expired"
	StatusCancelled MembershipStatus = "cancelled"
)

type MembershipTier struct {
	ID             int            `db:"id" json:"id"`
	Name           string         `db:"name" json:"name"`
	Description    string         `db:"description" json:"description"`
	Price          float64        `db:"price" json:"price"`
	DurationMonths int            `db:"duration_months" json:"duration_months"`
	Features       pq.StringArray `db:"features" json:"features" swaggertype:"array,string"`
	IsActive       bool           `db:"is_active" json:"is_active"`
	CreatedAt      time.Time      `db:"created_at" json:"created_at"`
}

type UserMembership struct {
	ID               int              `db:"id" json:"id"`
	UserID           int              `db:"user_id" json:"user_id"`
	MembershipTierID int              `db:"membership_tier_id" json:"membership_tier_id"`
	StartDate        time.Time        `db:"start_date" json:"start_date"`
	EndDate          time.Time        `db:"end_date" json:"end_date"`
	Status           MembershipStatus `db:"status" json:"status"`
	CreatedAt        time.Time        `db:"created_at" json:"created_at"`
}

type CreateTierRequest struct {
	Name           string   `json:"name" binding:"required"`
	Description    string   `json:"description"`
	Price          float64  `json:"price" binding:"required,gt=0"`
	DurationMonths int      `json:"duration_months" binding:"required,gt=0"`
	Features       []string `json:"features"`
	IsActive       *bool    `json:"is_active"`
}

type CreateMembershipRequest struct {
	UserID           int       `json:"user_id" binding:"required"`
	MembershipTierID int       `json:"membership_tier_id" binding:"required"`
	StartDate        time.Time `json:"start_date" binding:"required"`
}

// CurrentMembershipResponse wraps the lookup result so "no active membership"
// serializes as {"membership": null} rather than a 404.
type CurrentMembershipResponse struct {
	Membership *UserMembership `json:"membership"`
}
