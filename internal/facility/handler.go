package facility

import (
	"net/http"

	"github.com/appdotbuilder/gym-website/internal/api"
	"github.com/appdotbuilder/gym-website/internal/logger"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{
		repo: repo,
	}
}

// @Summary      Create a facility
// @Description  Admin-only: add a facility to the public listing
// @Tags         facilities
// @Accept       json
// @Produce      json
// @Param        request body facility.CreateFacilityRequest true "Facility payload"
// @Success      201 {object} facility.Facility
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /facilities [post]
func (h *Handler) CreateFacility(c *gin.Context) {
	var req CreateFacilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	f, err := h.repo.CreateFacility(ctx, req)
	if err != nil {
		logger.WithError(err).Error("Failed to create facility")
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create facility"})
		return
	}

	c.JSON(http.StatusCreated, f)
}

// @Summary      List facilities
// @Description  Public listing of gym facilities
// @Tags         facilities
// @Produce      json
// @Success      200 {array} facility.Facility
// @Failure      500 {object} api.ErrorResponse
// @Router       /facilities [get]
func (h *Handler) ListFacilities(c *gin.Context) {
	ctx := c.Request.Context()
	facilities, err := h.repo.ListFacilities(ctx)
	if err != nil {
		logger.WithError(err).Error("Failed to list facilities")
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to list facilities"})
		return
	}

	c.JSON(http.StatusOK, facilities)
}

// @Summary      Get gym info
// @Description  The single descriptive record shown on the public site
// @Tags         facilities
// @Produce      json
// @Success      200 {object} facility.GymInfo
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /gym-info [get]
func (h *Handler) GetGymInfo(c *gin.Context) {
	ctx := c.Request.Context()
	info, err := h.repo.GetGymInfo(ctx)
	if err != nil {
		switch err {
		case ErrGymInfoNotSet:
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Gym info not set"})
		default:
			logger.WithError(err).Error("Failed to get gym info")
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to get gym info"})
		}
		return
	}

	c.JSON(http.StatusOK, info)
}

// @Summary      Update gym info
// @Description  Admin-only: create or replace the gym info record
// @Tags         facilities
// @Accept       json
// @Produce      json
// @Param        request body facility.UpdateGymInfoRequest true "Gym info payload"
// @Success      200 {object} facility.GymInfo
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /gym-info [put]
func (h *Handler) UpdateGymInfo(c *gin.Context) {
	var req UpdateGymInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	info, err := h.repo.UpsertGymInfo(ctx, req)
	if err != nil {
		logger.WithError(err).Error("Failed to update gym info")
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update gym info"})
		return
	}

	c.JSON(http.StatusOK, info)
}
