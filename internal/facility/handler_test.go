package facility_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/appdotbuilder/gym-website/internal/facility"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateFacility(ctx context.Context, req facility.CreateFacilityRequest) (*facility.Facility, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*facility.Facility), args.Error(1)
}

func (m *MockRepository) ListFacilities(ctx context.Context) ([]facility.Facility, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]facility.Facility), args.Error(1)
}

func (m *MockRepository) GetGymInfo(ctx context.Context) (*facility.GymInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*facility.GymInfo), args.Error(1)
}

func (m *MockRepository) UpsertGymInfo(ctx context.Context, req facility.UpdateGymInfoRequest) (*facility.GymInfo, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*facility.GymInfo), args.Error(1)
}

func setupFacilityRouter(repo facility.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handler := facility.NewHandler(repo)
	router.POST("/facilities", handler.CreateFacility)
	router.GET("/facilities", handler.ListFacilities)
	router.GET("/gym-info", handler.GetGymInfo)
	router.PUT("/gym-info", handler.UpdateGymInfo)

	return router
}

func TestCreateFacility_Handler(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("CreateFacility", mock.Anything, facility.CreateFacilityRequest{
		Name:        "Lap Pool",
		Description: "25m heated indoor pool",
	}).Return(&facility.Facility{
		ID:          1,
		Name:        "Lap Pool",
		Description: "25m heated indoor pool",
		CreatedAt:   time.Now(),
	}, nil)

	router := setupFacilityRouter(mockRepo)

	body := bytes.NewBufferString(`{"name": "Lap Pool", "description": "25m heated indoor pool"}`)
	req, err := http.NewRequest("POST", "/facilities", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Lap Pool")
	mockRepo.AssertExpectations(t)
}

func TestCreateFacility_Handler_MissingName(t *testing.T) {
	router := setupFacilityRouter(new(MockRepository))

	body := bytes.NewBufferString(`{"description": "no name"}`)
	req, err := http.NewRequest("POST", "/facilities", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListFacilities_Handler(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("ListFacilities", mock.Anything).Return([]facility.Facility{
		{ID: 1, Name: "Lap Pool"},
		{ID: 2, Name: "Sauna"},
	}, nil)

	router := setupFacilityRouter(mockRepo)

	req, err := http.NewRequest("GET", "/facilities", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Sauna")
	mockRepo.AssertExpectations(t)
}

func TestGetGymInfo_Handler_NotSet(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("GetGymInfo", mock.Anything).Return(nil, facility.ErrGymInfoNotSet)

	router := setupFacilityRouter(mockRepo)

	req, err := http.NewRequest("GET", "/gym-info", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Gym info not set")
	mockRepo.AssertExpectations(t)
}

func TestUpdateGymInfo_Handler(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("UpsertGymInfo", mock.Anything, facility.UpdateGymInfoRequest{
		Name:         "Iron Works Gym",
		Address:      "12 Forge St",
		Phone:        "555-0101",
		Email:        "hello@ironworks.example",
		OpeningHours: "Mon-Fri 06:00-22:00",
	}).Return(&facility.GymInfo{
		ID:           1,
		Name:         "Iron Works Gym",
		Address:      "12 Forge St",
		Phone:        "555-0101",
		Email:        "hello@ironworks.example",
		OpeningHours: "Mon-Fri 06:00-22:00",
	}, nil)

	router := setupFacilityRouter(mockRepo)

	body := bytes.NewBufferString(`{"name": "Iron Works Gym", "address": "12 Forge St", "phone": "555-0101", "email": "hello@ironworks.example", "opening_hours": "Mon-Fri 06:00-22:00"}`)
	req, err := http.NewRequest("PUT", "/gym-info", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Iron Works Gym")
	mockRepo.AssertExpectations(t)
}

func TestUpdateGymInfo_Handler_BadEmail(t *testing.T) {
	router := setupFacilityRouter(new(MockRepository))

	body := bytes.NewBufferString(`{"name": "Iron Works Gym", "address": "12 Forge St", "phone": "555-0101", "email": "not-an-email", "opening_hours": "Mon-Fri 06:00-22:00"}`)
	req, err := http.NewRequest("PUT", "/gym-info", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
