package training

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/appdotbuilder/gym-website/internal/email"
	"github.com/appdotbuilder/gym-website/internal/trainer"
	"github.com/appdotbuilder/gym-website/internal/user"
)

// MockRepository is a mock implementation of Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) BookSession(ctx context.Context, userID, trainerID int, sessionDate, startTime, endTime string, notes *string, price float64, now time.Time) (*Session, error) {
	args := m.Called(ctx, userID, trainerID, sessionDate, startTime, endTime, notes, price, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Session), args.Error(1)
}

func (m *MockRepository) GetSessionByID(ctx context.Context, id int) (*Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Session), args.Error(1)
}

func (m *MockRepository) UpdateSession(ctx context.Context, id int, req UpdateSessionRequest, now time.Time) (*Session, error) {
	args := m.Called(ctx, id, req, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Session), args.Error(1)
}

func (m *MockRepository) ListUserSessions(ctx context.Context, userID int) ([]Session, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Session), args.Error(1)
}

func (m *MockRepository) ListTrainerSessions(ctx context.Context, trainerID int, date string) ([]Session, error) {
	args := m.Called(ctx, trainerID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Session), args.Error(1)
}

// MockUserRepository is a mock implementation of user.Repository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, email, firstName, lastName string, phone *string) (*user.User, error) {
	args := m.Called(ctx, email, firstName, lastName, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]user.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]user.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, id int, req user.UpdateUserRequest) (*user.User, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

// MockTrainerRepository is a mock implementation of trainer.Repository
type MockTrainerRepository struct {
	mock.Mock
}

func (m *MockTrainerRepository) Create(ctx context.Context, req trainer.CreateTrainerRequest) (*trainer.Trainer, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trainer.Trainer), args.Error(1)
}

func (m *MockTrainerRepository) FindByID(ctx context.Context, id int) (*trainer.Trainer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trainer.Trainer), args.Error(1)
}

func (m *MockTrainerRepository) List(ctx context.Context, onlyAvailable bool) ([]trainer.Trainer, error) {
	args := m.Called(ctx, onlyAvailable)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trainer.Trainer), args.Error(1)
}

func newTestEmailService() *email.Service {
	return email.New("from@test.com", "Test", "localhost", "1025", "", "", "localhost:6379")
}

func TestSessionPrice(t *testing.T) {
	tests := []struct {
		name       string
		hourlyRate float64
		start, end string
		expected   float64
	}{
		{"ninety minutes at 75", 75.00, "09:00", "10:30", 112.50},
		{"one hour at 60", 60.00, "10:00", "11:00", 60.00},
		{"half hour at 45", 45.00, "14:00", "14:30", 22.50},
		{"45 minutes at 80", 80.00, "09:15", "10:00", 60.00},
		{"odd rate rounds to cents", 33.33, "09:00", "10:00", 33.33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sessionPrice(tt.hourlyRate, tt.start, tt.end))
		})
	}
}

func TestService_BookSession(t *testing.T) {
	fixed := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return fixed }
	defer func() { timeNow = time.Now }()

	testUser := &user.User{ID: 1, Email: "jane@example.com", FirstName: "Jane"}
	availableTrainer := &trainer.Trainer{ID: 2, Name: "Alex Kim", HourlyRate: 75.00, IsAvailable: true}

	t.Run("books and prices the session", func(t *testing.T) {
		tr := new(MockRepository)
		ur := new(MockUserRepository)
		trr := new(MockTrainerRepository)

		ur.On("FindByID", mock.Anything, 1).Return(testUser, nil)
		trr.On("FindByID", mock.Anything, 2).Return(availableTrainer, nil)
		tr.On("BookSession", mock.Anything, 1, 2, "2024-06-15", "09:00", "10:30", (*string)(nil), 112.50, fixed).
			Return(&Session{ID: 5, UserID: 1, TrainerID: 2, StartTime: "09:00", EndTime: "10:30", Status: StatusScheduled, Price: 112.50}, nil)

		service := NewService(tr, ur, trr, newTestEmailService())
		session, err := service.BookSession(context.Background(), BookSessionRequest{
			UserID: 1, TrainerID: 2, SessionDate: "2024-06-15", StartTime: "09:00", EndTime: "10:30",
		})

		assert.NoError(t, err)
		assert.Equal(t, 112.50, session.Price)
		assert.Equal(t, StatusScheduled, session.Status)
		tr.AssertExpectations(t)
	})

	t.Run("rejects end before start", func(t *testing.T) {
		tr := new(MockRepository)
		ur := new(MockUserRepository)
		trr := new(MockTrainerRepository)

		ur.On("FindByID", mock.Anything, 1).Return(testUser, nil)
		trr.On("FindByID", mock.Anything, 2).Return(availableTrainer, nil)

		service := NewService(tr, ur, trr, newTestEmailService())
		_, err := service.BookSession(context.Background(), BookSessionRequest{
			UserID: 1, TrainerID: 2, SessionDate: "2024-06-15", StartTime: "10:30", EndTime: "09:00",
		})

		assert.ErrorIs(t, err, ErrSessionTimesInvalid)
		tr.AssertNotCalled(t, "BookSession")
	})

	t.Run("rejects zero length", func(t *testing.T) {
		tr := new(MockRepository)
		ur := new(MockUserRepository)
		trr := new(MockTrainerRepository)

		ur.On("FindByID", mock.Anything, 1).Return(testUser, nil)
		trr.On("FindByID", mock.Anything, 2).Return(availableTrainer, nil)

		service := NewService(tr, ur, trr, newTestEmailService())
		_, err := service.BookSession(context.Background(), BookSessionRequest{
			UserID: 1, TrainerID: 2, SessionDate: "2024-06-15", StartTime: "09:00", EndTime: "09:00",
		})

		assert.ErrorIs(t, err, ErrSessionTimesInvalid)
	})

	t.Run("rejects unavailable trainer", func(t *testing.T) {
		tr := new(MockRepository)
		ur := new(MockUserRepository)
		trr := new(MockTrainerRepository)

		ur.On("FindByID", mock.Anything, 1).Return(testUser, nil)
		trr.On("FindByID", mock.Anything, 3).Return(&trainer.Trainer{ID: 3, HourlyRate: 50, IsAvailable: false}, nil)

		service := NewService(tr, ur, trr, newTestEmailService())
		_, err := service.BookSession(context.Background(), BookSessionRequest{
			UserID: 1, TrainerID: 3, SessionDate: "2024-06-15", StartTime: "09:00", EndTime: "10:00",
		})

		assert.ErrorIs(t, err, ErrTrainerUnavailable)
	})

	t.Run("unknown user", func(t *testing.T) {
		tr := new(MockRepository)
		ur := new(MockUserRepository)
		trr := new(MockTrainerRepository)

		ur.On("FindByID", mock.Anything, 99).Return(nil, user.ErrUserNotFound)

		service := NewService(tr, ur, trr, newTestEmailService())
		_, err := service.BookSession(context.Background(), BookSessionRequest{
			UserID: 99, TrainerID: 2, SessionDate: "2024-06-15", StartTime: "09:00", EndTime: "10:00",
		})

		assert.ErrorIs(t, err, user.ErrUserNotFound)
	})

	t.Run("unknown trainer", func(t *testing.T) {
		tr := new(MockRepository)
		ur := new(MockUserRepository)
		trr := new(MockTrainerRepository)

		ur.On("FindByID", mock.Anything, 1).Return(testUser, nil)
		trr.On("FindByID", mock.Anything, 99).Return(nil, trainer.ErrTrainerNotFound)

		service := NewService(tr, ur, trr, newTestEmailService())
		_, err := service.BookSession(context.Background(), BookSessionRequest{
			UserID: 1, TrainerID: 99, SessionDate: "2024-06-15", StartTime: "09:00", EndTime: "10:00",
		})

		assert.ErrorIs(t, err, trainer.ErrTrainerNotFound)
	})

	t.Run("overlap surfaces as conflict", func(t *testing.T) {
		tr := new(MockRepository)
		ur := new(MockUserRepository)
		trr := new(MockTrainerRepository)

		ur.On("FindByID", mock.Anything, 1).Return(testUser, nil)
		trr.On("FindByID", mock.Anything, 2).Return(availableTrainer, nil)
		tr.On("BookSession", mock.Anything, 1, 2, "2024-06-15", "10:00", "11:00", (*string)(nil), 75.00, fixed).
			Return(nil, ErrSessionConflict)

		service := NewService(tr, ur, trr, newTestEmailService())
		_, err := service.BookSession(context.Background(), BookSessionRequest{
			UserID: 1, TrainerID: 2, SessionDate: "2024-06-15", StartTime: "10:00", EndTime: "11:00",
		})

		assert.ErrorIs(t, err, ErrSessionConflict)
	})
}

func TestService_UpdateSession(t *testing.T) {
	fixed := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return fixed }
	defer func() { timeNow = time.Now }()

	t.Run("passes the clock through", func(t *testing.T) {
		tr := new(MockRepository)
		ur := new(MockUserRepository)
		trr := new(MockTrainerRepository)

		status := StatusCompleted
		req := UpdateSessionRequest{UserID: 1, Status: &status}
		tr.On("UpdateSession", mock.Anything, 5, req, fixed).
			Return(&Session{ID: 5, UserID: 1, Status: StatusCompleted, UpdatedAt: fixed}, nil)

		service := NewService(tr, ur, trr, newTestEmailService())
		session, err := service.UpdateSession(context.Background(), 5, req)

		assert.NoError(t, err)
		assert.Equal(t, StatusCompleted, session.Status)
		assert.Equal(t, fixed, session.UpdatedAt)
		tr.AssertExpectations(t)
	})

	t.Run("not found for another owner", func(t *testing.T) {
		tr := new(MockRepository)
		ur := new(MockUserRepository)
		trr := new(MockTrainerRepository)

		req := UpdateSessionRequest{UserID: 2}
		tr.On("UpdateSession", mock.Anything, 5, req, fixed).Return(nil, ErrSessionNotFound)

		service := NewService(tr, ur, trr, newTestEmailService())
		_, err := service.UpdateSession(context.Background(), 5, req)

		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}

func TestService_GetAvailability(t *testing.T) {
	availableTrainer := &trainer.Trainer{ID: 2, Name: "Alex Kim", HourlyRate: 75.00, IsAvailable: true}

	allSlots := []string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00", "18:00", "19:00", "20:00"}

	t.Run("free day returns all twelve slots", func(t *testing.T) {
		tr := new(MockRepository)
		ur := new(MockUserRepository)
		trr := new(MockTrainerRepository)

		trr.On("FindByID", mock.Anything, 2).Return(availableTrainer, nil)
		tr.On("ListTrainerSessions", mock.Anything, 2, "2024-06-15").Return([]Session{}, nil)

		service := NewService(tr, ur, trr, newTestEmailService())
		slots, err := service.GetAvailability(context.Background(), 2, "2024-06-15")

		assert.NoError(t, err)
		assert.Equal(t, allSlots, slots)
	})

	t.Run("one hour session removes exactly its slot", func(t *testing.T) {
		tr := new(MockRepository)
		ur := new(MockUserRepository)
		trr := new(MockTrainerRepository)

		trr.On("FindByID", mock.Anything, 2).Return(availableTrainer, nil)
		tr.On("ListTrainerSessions", mock.Anything, 2, "2024-06-15").Return([]Session{
			{TrainerID: 2, StartTime: "10:00", EndTime: "11:00", Status: StatusScheduled},
		}, nil)

		service := NewService(tr, ur, trr, newTestEmailService())
		slots, err := service.GetAvailability(context.Background(), 2, "2024-06-15")

		assert.NoError(t, err)
		assert.NotContains(t, slots, "10:00")
		assert.Contains(t, slots, "09:00")
		assert.Contains(t, slots, "11:00")
		assert.Len(t, slots, 11)
	})

	t.Run("session straddling two slots blocks both", func(t *testing.T) {
		tr := new(MockRepository)
		ur := new(MockUserRepository)
		trr := new(MockTrainerRepository)

		trr.On("FindByID", mock.Anything, 2).Return(availableTrainer, nil)
		tr.On("ListTrainerSessions", mock.Anything, 2, "2024-06-15").Return([]Session{
			{TrainerID: 2, StartTime: "09:30", EndTime: "11:30", Status: StatusScheduled},
		}, nil)

		service := NewService(tr, ur, trr, newTestEmailService())
		slots, err := service.GetAvailability(context.Background(), 2, "2024-06-15")

		assert.NoError(t, err)
		assert.Contains(t, slots, "09:00")
		assert.NotContains(t, slots, "10:00")
		assert.NotContains(t, slots, "11:00")
		assert.Contains(t, slots, "12:00")
	})

	t.Run("session ending on the hour frees that slot", func(t *testing.T) {
		tr := new(MockRepository)
		ur := new(MockUserRepository)
		trr := new(MockTrainerRepository)

		trr.On("FindByID", mock.Anything, 2).Return(availableTrainer, nil)
		tr.On("ListTrainerSessions", mock.Anything, 2, "2024-06-15").Return([]Session{
			{TrainerID: 2, StartTime: "09:00", EndTime: "10:00", Status: StatusScheduled},
		}, nil)

		service := NewService(tr, ur, trr, newTestEmailService())
		slots, err := service.GetAvailability(context.Background(), 2, "2024-06-15")

		assert.NoError(t, err)
		assert.NotContains(t, slots, "09:00")
		assert.Contains(t, slots, "10:00")
	})

	t.Run("cancelled and completed sessions never block", func(t *testing.T) {
		tr := new(MockRepository)
		ur := new(MockUserRepository)
		trr := new(MockTrainerRepository)

		trr.On("FindByID", mock.Anything, 2).Return(availableTrainer, nil)
		tr.On("ListTrainerSessions", mock.Anything, 2, "2024-06-15").Return([]Session{
			{TrainerID: 2, StartTime: "10:00", EndTime: "11:00", Status: StatusCancelled},
			{TrainerID: 2, StartTime: "14:00", EndTime: "15:00", Status: StatusCompleted},
		}, nil)

		service := NewService(tr, ur, trr, newTestEmailService())
		slots, err := service.GetAvailability(context.Background(), 2, "2024-06-15")

		assert.NoError(t, err)
		assert.Equal(t, allSlots, slots)
	})

	t.Run("unavailable trainer", func(t *testing.T) {
		tr := new(MockRepository)
		ur := new(MockUserRepository)
		trr := new(MockTrainerRepository)

		trr.On("FindByID", mock.Anything, 3).Return(&trainer.Trainer{ID: 3, IsAvailable: false}, nil)

		service := NewService(tr, ur, trr, newTestEmailService())
		_, err := service.GetAvailability(context.Background(), 3, "2024-06-15")

		assert.ErrorIs(t, err, ErrTrainerUnavailable)
	})
}

func TestService_ListUserSessions(t *testing.T) {
	t.Run("unknown user", func(t *testing.T) {
		tr := new(MockRepository)
		ur := new(MockUserRepository)
		trr := new(MockTrainerRepository)

		ur.On("FindByID", mock.Anything, 9).Return(nil, user.ErrUserNotFound)

		service := NewService(tr, ur, trr, newTestEmailService())
		_, err := service.ListUserSessions(context.Background(), 9)

		assert.ErrorIs(t, err, user.ErrUserNotFound)
	})
}
