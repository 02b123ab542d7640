package user

import (
	"net/http"
	"strconv"

	"github.com/appdotbuilder/gym-website/internal/api"
	"github.com/appdotbuilder/gym-website/internal/logger"

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

// @Summary      Register a user
// @Description  Creates a new member account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body user.CreateUserRequest true "User payload"
// @Success      201 {object} user.User
// @Failure      400 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /users [post]
func (h *Handler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	u, err := h.service.Create(ctx, req)
	if err != nil {
		switch err {
		case ErrEmailExists:
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Email already registered"})
		default:
			logger.WithError(err).Error("Failed to create user")
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create user"})
		}
		return
	}

	c.JSON(http.StatusCreated, u)
}

// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Param        userID path int true "User ID"
// @Success      200 {object} user.User
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /users/{userID} [get]
func (h *Handler) GetUser(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid user ID"})
		return
	}

	ctx := c.Request.Context()
	u, err := h.service.GetByID(ctx, userID)
	if err != nil {
		switch err {
		case ErrUserNotFound:
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "User not found"})
		default:
			logger.WithError(err).Error("Failed to fetch user")
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch user"})
		}
		return
	}

	c.JSON(http.StatusOK, u)
}

// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200 {array} user.User
// @Failure      500 {object} api.ErrorResponse
// @Router       /users [get]
func (h *Handler) ListUsers(c *gin.Context) {
	ctx := c.Request.Context()
	users, err := h.service.List(ctx)
	if err != nil {
		logger.WithError(err).Error("Failed to list users")
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch users"})
		return
	}

	c.JSON(http.StatusOK, users)
}

// @Summary      Update a user
// @Description  Partial update; omitted fields keep their current value
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        userID path int true "User ID"
// @Param        request body user.UpdateUserRequest true "Fields to update"
// @Success      200 {object} user.User
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /users/{userID} [patch]
func (h *Handler) UpdateUser(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid user ID"})
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	u, err := h.service.Update(ctx, userID, req)
	if err != nil {
		switch err {
		case ErrUserNotFound:
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "User not found"})
		case ErrEmailExists:
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Email already registered"})
		default:
			logger.WithError(err).Error("Failed to update user")
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update user"})
		}
		return
	}

	c.JSON(http.StatusOK, u)
}
