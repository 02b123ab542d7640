package training

import (
	"net/http"
	"strconv"
	"time"

	"github.com/appdotbuilder/gym-website/internal/api"
	"github.com/appdotbuilder/gym-website/internal/logger"
	"github.com/appdotbuilder/gym-website/internal/metrics"
	"github.com/appdotbuilder/gym-website/internal/trainer"
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

// @Summary      Book a personal training session
// @Description  Price is the trainer's hourly rate pro-rated by session length; back-to-back sessions do not conflict
// @Tags         training
// @Accept       json
// @Produce      json
// @Param        request body training.BookSessionRequest true "Session payload"
// @Success      201 {object} training.Session
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /training-sessions [post]
func (h *Handler) BookSession(c *gin.Context) {
	var req BookSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	session, err := h.service.BookSession(ctx, req)
	if err != nil {
		switch err {
		case user.ErrUserNotFound:
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "User not found"})
		case trainer.ErrTrainerNotFound:
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Trainer not found"})
		case ErrTrainerUnavailable:
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Trainer is not available for booking"})
		case ErrSessionTimesInvalid:
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "End time must be after start time"})
		case ErrSessionConflict:
			metrics.RecordTrainingConflict()
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Trainer already has a session in this time range"})
		default:
			logger.WithError(err).Error("Failed to book training session")
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to book training session"})
		}
		return
	}

	metrics.RecordTrainingSession()

	c.JSON(http.StatusCreated, session)
}

// @Summary      Update a personal training session
// @Description  Owner-scoped partial update of status and notes; a null notes value clears it
// @Tags         training
// @Accept       json
// @Produce      json
// @Param        sessionID path int true "Session ID"
// @Param        request body training.UpdateSessionRequest true "Update payload"
// @Success      200 {object} training.Session
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /training-sessions/{sessionID} [patch]
func (h *Handler) UpdateSession(c *gin.Context) {
	sessionID, err := strconv.Atoi(c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid session ID"})
		return
	}

	var req UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	session, err := h.service.UpdateSession(ctx, sessionID, req)
	if err != nil {
		switch err {
		case ErrSessionNotFound:
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Training session not found"})
		default:
			logger.WithError(err).Error("Failed to update training session")
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update training session"})
		}
		return
	}

	c.JSON(http.StatusOK, session)
}

// @Summary      Get a personal training session
// @Tags         training
// @Produce      json
// @Param        sessionID path int true "Session ID"
// @Success      200 {object} training.Session
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /training-sessions/{sessionID} [get]
func (h *Handler) GetSession(c *gin.Context) {
	sessionID, err := strconv.Atoi(c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid session ID"})
		return
	}

	ctx := c.Request.Context()
	session, err := h.service.GetSessionByID(ctx, sessionID)
	if err != nil {
		switch err {
		case ErrSessionNotFound:
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Training session not found"})
		default:
			logger.WithError(err).Error("Failed to fetch training session")
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch training session"})
		}
		return
	}

	c.JSON(http.StatusOK, session)
}

// @Summary      List a user's training sessions
// @Tags         training
// @Produce      json
// @Param        userID path int true "User ID"
// @Success      200 {array} training.Session
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /users/{userID}/training-sessions [get]
func (h *Handler) GetUserSessions(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid user ID"})
		return
	}

	ctx := c.Request.Context()
	sessions, err := h.service.ListUserSessions(ctx, userID)
	if err != nil {
		switch err {
		case user.ErrUserNotFound:
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "User not found"})
		default:
			logger.WithError(err).Error("Failed to fetch training sessions")
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch training sessions"})
		}
		return
	}

	c.JSON(http.StatusOK, sessions)
}

// @Summary      List a trainer's sessions
// @Tags         training
// @Produce      json
// @Param        trainerID path int true "Trainer ID"
// @Param        date query string false "Filter by date (YYYY-MM-DD)"
// @Success      200 {array} training.Session
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /trainers/{trainerID}/sessions [get]
func (h *Handler) GetTrainerSessions(c *gin.Context) {
	trainerID, err := strconv.Atoi(c.Param("trainerID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid trainer ID"})
		return
	}

	date := c.Query("date")
	if date != "" {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid date, expected YYYY-MM-DD"})
			return
		}
	}

	ctx := c.Request.Context()
	sessions, err := h.service.ListTrainerSessions(ctx, trainerID, date)
	if err != nil {
		switch err {
		case trainer.ErrTrainerNotFound:
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Trainer not found"})
		default:
			logger.WithError(err).Error("Failed to fetch trainer sessions")
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch trainer sessions"})
		}
		return
	}

	c.JSON(http.StatusOK, sessions)
}

// @Summary      Get a trainer's availability for a date
// @Description  Hourly slots from 09:00 through 20:00 not covered by a scheduled session
// @Tags         training
// @Produce      json
// @Param        trainerID path int true "Trainer ID"
// @Param        date query string true "Date (YYYY-MM-DD)"
// @Success      200 {object} training.AvailabilityResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /trainers/{trainerID}/availability [get]
func (h *Handler) GetAvailability(c *gin.Context) {
	trainerID, err := strconv.Atoi(c.Param("trainerID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid trainer ID"})
		return
	}

	date := c.Query("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid date, expected YYYY-MM-DD"})
		return
	}

	ctx := c.Request.Context()
	slots, err := h.service.GetAvailability(ctx, trainerID, date)
	if err != nil {
		switch err {
		case trainer.ErrTrainerNotFound:
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Trainer not found"})
		case ErrTrainerUnavailable:
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Trainer is not available for booking"})
		default:
			logger.WithError(err).Error("Failed to compute trainer availability")
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to compute trainer availability"})
		}
		return
	}

	c.JSON(http.StatusOK, AvailabilityResponse{
		TrainerID:      trainerID,
		Date:           date,
		AvailableSlots: slots,
	})
}
