package gymclass

import (
	"net/http"
	"strconv"

	"github.com/appdotbuilder/gym-website/internal/api"
	"github.com/appdotbuilder/gym-website/internal/logger"
	"github.com/appdotbuilder/gym-website/internal/trainer"

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

// @Summary      Create a gym class
// @Description  Admin-only: add a class template
// @Tags         classes
// @Accept       json
// @Produce      json
// @Param        request body gymclass.CreateClassRequest true "Class payload"
// @Success      201 {object} gymclass.GymClass
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /classes [post]
func (h *Handler) CreateClass(c *gin.Context) {
	var req CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	gc, err := h.service.CreateClass(ctx, req)
	if err != nil {
		switch err {
		case trainer.ErrTrainerNotFound:
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Trainer not found"})
		default:
			logger.WithError(err).Error("Failed to create class")
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create class"})
		}
		return
	}

	c.JSON(http.StatusCreated, gc)
}

// @Summary      List gym classes
// @Tags         classes
// @Produce      json
// @Success      200 {array} gymclass.GymClass
// @Failure      500 {object} api.ErrorResponse
// @Router       /classes [get]
func (h *Handler) ListClasses(c *gin.Context) {
	ctx := c.Request.Context()
	classes, err := h.service.ListClasses(ctx)
	if err != nil {
		logger.WithError(err).Error("Failed to list classes")
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch classes"})
		return
	}

	c.JSON(http.StatusOK, classes)
}

// @Summary      Get a gym class
// @Tags         classes
// @Produce      json
// @Param        classID path int true "Class ID"
// @Success      200 {object} gymclass.GymClass
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /classes/{classID} [get]
func (h *Handler) GetClass(c *gin.Context) {
	classID, err := strconv.Atoi(c.Param("classID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid class ID"})
		return
	}

	ctx := c.Request.Context()
	gc, err := h.service.GetClassByID(ctx, classID)
	if err != nil {
		switch err {
		case ErrClassNotFound:
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Class not found"})
		default:
			logger.WithError(err).Error("Failed to fetch class")
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch class"})
		}
		return
	}

	c.JSON(http.StatusOK, gc)
}

// @Summary      Schedule a class instance
// @Description  Admin-only: creates a schedule with available_spots seeded from the class capacity
// @Tags         classes
// @Accept       json
// @Produce      json
// @Param        classID path int true "Class ID"
// @Param        request body gymclass.CreateScheduleRequest true "Schedule payload"
// @Success      201 {object} gymclass.ClassSchedule
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /classes/{classID}/schedules [post]
func (h *Handler) CreateSchedule(c *gin.Context) {
	classID, err := strconv.Atoi(c.Param("classID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid class ID"})
		return
	}

	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	cs, err := h.service.CreateSchedule(ctx, classID, req)
	if err != nil {
		switch err {
		case ErrClassNotFound:
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Class not found"})
		case ErrScheduleInvalid:
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Schedule end time must be after start time"})
		default:
			logger.WithError(err).Error("Failed to create schedule")
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create schedule"})
		}
		return
	}

	c.JSON(http.StatusCreated, cs)
}

// @Summary      List class schedules
// @Description  Optional filters: class_id and date (YYYY-MM-DD)
// @Tags         classes
// @Produce      json
// @Param        class_id query int false "Class ID"
// @Param        date query string false "Date (YYYY-MM-DD)"
// @Success      200 {array} gymclass.ScheduleWithClass
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /schedules [get]
func (h *Handler) ListSchedules(c *gin.Context) {
	classID := 0
	if raw := c.Query("class_id"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid class ID"})
			return
		}
		classID = parsed
	}
	date := c.Query("date")

	ctx := c.Request.Context()
	schedules, err := h.service.ListSchedules(ctx, classID, date)
	if err != nil {
		logger.WithError(err).Error("Failed to list schedules")
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch schedules"})
		return
	}

	c.JSON(http.StatusOK, schedules)
}

// @Summary      Cancel a class schedule
// @Description  Admin-only: marks the schedule cancelled; existing bookings are not modified
// @Tags         classes
// @Produce      json
// @Param        scheduleID path int true "Schedule ID"
// @Success      200 {object} gymclass.ClassSchedule
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /schedules/{scheduleID}/cancel [post]
func (h *Handler) CancelSchedule(c *gin.Context) {
	scheduleID, err := strconv.Atoi(c.Param("scheduleID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid schedule ID"})
		return
	}

	ctx := c.Request.Context()
	cs, err := h.service.CancelSchedule(ctx, scheduleID)
	if err != nil {
		switch err {
		case ErrScheduleNotFound:
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Schedule not found"})
		default:
			logger.WithError(err).Error("Failed to cancel schedule")
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to cancel schedule"})
		}
		return
	}

	c.JSON(http.StatusOK, cs)
}
