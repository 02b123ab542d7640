package trainer

import (
	"net/http"
	"strconv"

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

// @Summary      Create a trainer
// @Description  Admin-only: add a trainer profile
// @Tags         trainers
// @Accept       json
// @Produce      json
// @Param        request body trainer.CreateTrainerRequest true "Trainer payload"
// @Success      201 {object} trainer.Trainer
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /trainers [post]
func (h *Handler) CreateTrainer(c *gin.Context) {
	var req CreateTrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	tr, err := h.repo.Create(ctx, req)
	if err != nil {
		logger.WithError(err).Error("Failed to create trainer")
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create trainer"})
		return
	}

	c.JSON(http.StatusCreated, tr)
}

// @Summary      List trainers
// @Description  Pass available=true to list only trainers open for personal training
// @Tags         trainers
// @Produce      json
// @Param        available query bool false "Only available trainers"
// @Success      200 {array} trainer.Trainer
// @Failure      500 {object} api.ErrorResponse
// @Router       /trainers [get]
func (h *Handler) ListTrainers(c *gin.Context) {
	onlyAvailable := c.Query("available") == "true"

	ctx := c.Request.Context()
	trainers, err := h.repo.List(ctx, onlyAvailable)
	if err != nil {
		logger.WithError(err).Error("Failed to list trainers")
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch trainers"})
		return
	}

	c.JSON(http.StatusOK, trainers)
}

// @Summary      Get a trainer
// @Tags         trainers
// @Produce      json
// @Param        trainerID path int true "Trainer ID"
// @Success      200 {object} trainer.Trainer
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /trainers/{trainerID} [get]
func (h *Handler) GetTrainer(c *gin.Context) {
	trainerID, err := strconv.Atoi(c.Param("trainerID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid trainer ID"})
		return
	}

	ctx := c.Request.Context()
	tr, err := h.repo.FindByID(ctx, trainerID)
	if err != nil {
		switch err {
		case ErrTrainerNotFound:
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Trainer not found"})
		default:
			logger.WithError(err).Error("Failed to fetch trainer")
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch trainer"})
		}
		return
	}

	c.JSON(http.StatusOK, tr)
}
