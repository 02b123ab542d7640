package booking

import (
	"net/http"
	"strconv"

	"github.com/appdotbuilder/gym-website/internal/api"
	"github.com/appdotbuilder/gym-website/internal/gymclass"
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

// @Summary      Book a class
// @Description  Takes a confirmed spot when one is free, otherwise joins the waitlist
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        request body booking.BookClassRequest true "Booking payload"
// @Success      201 {object} booking.ClassBooking
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /bookings [post]
func (h *Handler) BookClass(c *gin.Context) {
	var req BookClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	booking, err := h.service.Book(ctx, req)
	if err != nil {
		switch err {
		case user.ErrUserNotFound:
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "User not found"})
		case ErrScheduleNotFound:
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Class schedule not found"})
		case ErrAlreadyBooked:
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "You already have a confirmed booking for this class"})
		default:
			logger.WithError(err).Error("Failed to book class")
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to book class"})
		}
		return
	}

	metrics.RecordClassBooking(string(booking.Status))

	c.JSON(http.StatusCreated, booking)
}

// @Summary      Cancel a class booking
// @Description  Only the owner can cancel; the spot is not released back to the schedule
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        bookingID path int true "Booking ID"
// @Param        request body booking.CancelBookingRequest true "Cancellation payload"
// @Success      200 {object} booking.CancelBookingResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /bookings/{bookingID}/cancel [post]
func (h *Handler) CancelBooking(c *gin.Context) {
	bookingID, err := strconv.Atoi(c.Param("bookingID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid booking ID"})
		return
	}

	var req CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	booking, err := h.service.CancelBooking(ctx, bookingID, req.UserID)
	if err != nil {
		switch err {
		case ErrBookingNotFound:
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Booking not found"})
		case ErrAlreadyCancelled:
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Booking already cancelled"})
		default:
			logger.WithError(err).Error("Failed to cancel booking")
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to cancel booking"})
		}
		return
	}

	metrics.RecordBookingCancellation()

	c.JSON(http.StatusOK, CancelBookingResponse{
		Booking: booking,
		Message: "Booking cancelled successfully",
	})
}

// @Summary      List a user's bookings
// @Tags         bookings
// @Produce      json
// @Param        userID path int true "User ID"
// @Success      200 {array} booking.BookingWithDetails
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /users/{userID}/bookings [get]
func (h *Handler) GetUserBookings(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid user ID"})
		return
	}

	ctx := c.Request.Context()
	bookings, err := h.service.GetUserBookings(ctx, userID)
	if err != nil {
		switch err {
		case user.ErrUserNotFound:
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "User not found"})
		default:
			logger.WithError(err).Error("Failed to fetch user bookings")
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch bookings"})
		}
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// @Summary      List bookings for a schedule
// @Tags         bookings
// @Produce      json
// @Param        scheduleID path int true "Schedule ID"
// @Success      200 {array} booking.ClassBooking
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /schedules/{scheduleID}/bookings [get]
func (h *Handler) GetScheduleBookings(c *gin.Context) {
	scheduleID, err := strconv.Atoi(c.Param("scheduleID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid schedule ID"})
		return
	}

	ctx := c.Request.Context()
	bookings, err := h.service.GetScheduleBookings(ctx, scheduleID)
	if err != nil {
		switch err {
		case gymclass.ErrScheduleNotFound:
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Class schedule not found"})
		default:
			logger.WithError(err).Error("Failed to fetch schedule bookings")
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch bookings"})
		}
		return
	}

	c.JSON(http.StatusOK, bookings)
}
