package membership

import (
	"net/http"
	"strconv"

	"github.com/appdotbuilder/gym-website/internal/api"
	"github.com/appdotbuilder/gym-website/internal/logger"
	"github.com/appdotbuilder/gym-website/internal/metrics"
	"github.com/appdotbuilder/gym-website/internal/user"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

// @Summary      Create a membership tier
// @Description  Admin-only: add a tier to the catalog
// @Tags         memberships
// @Accept       json
// @Produce      json
// @Param        request body membership.CreateTierRequest true "Tier payload"
// @Success      201 {object} membership.MembershipTier
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /membership-tiers [post]
func (h *Handler) CreateTier(c *gin.Context) {
	var req CreateTierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	tier, err := h.service.CreateTier(ctx, req)
	if err != nil {
		logger.WithError(err).Error("Failed to create membership tier")
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create membership tier"})
		return
	}

	c.JSON(http.StatusCreated, tier)
}

// @Summary      List membership tiers
// @Description  Pass active=true to hide retired tiers
// @Tags         memberships
// @Produce      json
// @Param        active query bool false "Only active tiers"
// @Success      200 {array} membership.MembershipTier
// @Failure      500 {object} api.ErrorResponse
// @Router       /membership-tiers [get]
func (h *Handler) ListTiers(c *gin.Context) {
	onlyActive := c.Query("active") == "true"

	ctx := c.Request.Context()
	tiers, err := h.service.ListTiers(ctx, onlyActive)
	if err != nil {
		logger.WithError(err).Error("Failed to list membership tiers")
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch membership tiers"})
		return
	}

	c.JSON(http.StatusOK, tiers)
}

// @Summary      Get a membership tier
// @Tags         memberships
// @Produce      json
// @Param        tierID path int true "Tier ID"
// @Success      200 {object} membership.MembershipTier
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /membership-tiers/{tierID} [get]
func (h *Handler) GetTier(c *gin.Context) {
	tierID, err := strconv.Atoi(c.Param("tierID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid tier ID"})
		return
	}

	ctx := c.Request.Context()
	tier, err := h.service.GetTierByID(ctx, tierID)
	if err != nil {
		switch err {
		case ErrTierNotFound:
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Membership tier not found"})
		default:
			logger.WithError(err).Error("Failed to fetch membership tier")
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch membership tier"})
		}
		return
	}

	c.JSON(http.StatusOK, tier)
}

// @Summary      Purchase a membership
// @Description  Creates an active membership; the end date is the start date advanced by the tier duration in calendar months
// @Tags         memberships
// @Accept       json
// @Produce      json
// @Param        request body membership.CreateMembershipRequest true "Membership payload"
// @Success      201 {object} membership.UserMembership
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /memberships [post]
func (h *Handler) CreateMembership(c *gin.Context) {
	var req CreateMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	m, err := h.service.CreateMembership(ctx, req)
	if err != nil {
		switch err {
		case user.ErrUserNotFound:
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "User not found"})
		case ErrTierNotFound:
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Membership tier not found"})
		case ErrTierInactive:
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Membership tier is not active"})
		default:
			logger.WithError(err).Error("Failed to create membership")
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create membership"})
		}
		return
	}

	metrics.RecordMembership(strconv.Itoa(m.MembershipTierID))
	c.JSON(http.StatusCreated, m)
}

// @Summary      Get a user's current membership
// @Description  Returns the newest active membership, or membership=null when the user has none
// @Tags         memberships
// @Produce      json
// @Param        userID path int true "User ID"
// @Success      200 {object} membership.CurrentMembershipResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /users/{userID}/membership [get]
func (h *Handler) GetCurrentMembership(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid user ID"})
		return
	}

	ctx := c.Request.Context()
	m, err := h.service.GetCurrentMembership(ctx, userID)
	if err != nil {
		switch err {
		case user.ErrUserNotFound:
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "User not found"})
		default:
			logger.WithError(err).Error("Failed to fetch current membership")
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch membership"})
		}
		return
	}

	c.JSON(http.StatusOK, CurrentMembershipResponse{Membership: m})
}
