package trainer_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/appdotbuilder/gym-website/internal/trainer"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, req trainer.CreateTrainerRequest) (*trainer.Trainer, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trainer.Trainer), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id int) (*trainer.Trainer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trainer.Trainer), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context, onlyAvailable bool) ([]trainer.Trainer, error) {
	args := m.Called(ctx, onlyAvailable)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trainer.Trainer), args.Error(1)
}

func setupTrainerRouter(repo trainer.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handler := trainer.NewHandler(repo)
	router.GET("/trainers", handler.ListTrainers)
	router.GET("/trainers/:trainerID", handler.GetTrainer)

	return router
}

func TestGetTrainer_Handler_NotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("FindByID", mock.Anything, 404).Return(nil, trainer.ErrTrainerNotFound)

	router := setupTrainerRouter(mockRepo)

	req, err := http.NewRequest("GET", "/trainers/404", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockRepo.AssertExpectations(t)
}

func TestGetTrainer_Handler_InvalidID(t *testing.T) {
	router := setupTrainerRouter(new(MockRepository))

	req, err := http.NewRequest("GET", "/trainers/abc", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListTrainers_Handler_AvailableFilter(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("List", mock.Anything, true).Return([]trainer.Trainer{
		{ID: 1, Name: "Dana Cole", IsAvailable: true},
	}, nil)

	router := setupTrainerRouter(mockRepo)

	req, err := http.NewRequest("GET", "/trainers?available=true", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Dana Cole")
	mockRepo.AssertExpectations(t)
}
