package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"noteshare/internal/utils/logger"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) FindByPasscode(ctx context.Context, passcode string) (User, error) {
	args := m.Called(ctx, passcode)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) CountCreatedSince(ctx context.Context, since time.Time) (int, error) {
	args := m.Called(ctx, since)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, passcode string) (User, error) {
	args := m.Called(ctx, passcode)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) UpdatePasscode(ctx context.Context, userID, passcode string) error {
	args := m.Called(ctx, userID, passcode)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

const testPasscode = "ABCDEF123456"

var fixedNow = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

func newTestService(repo Repository) *Service {
	s := NewService(repo, logger.Discard())
	s.now = func() time.Time { return fixedNow }
	return s
}

func TestService_Login_ExistingUser(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("FindByPasscode", mock.Anything, testPasscode).
		Return(User{ID: "u-1", Passcode: testPasscode}, nil)

	res := service.Login(context.Background(), testPasscode)

	assert.True(t, res.Success)
	assert.Equal(t, "u-1", res.UserID)
	assert.False(t, res.Created)
	mockRepo.AssertExpectations(t)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "CountCreatedSince", mock.Anything, mock.Anything)
}

func TestService_Login_CreatesUserUnderQuota(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("FindByPasscode", mock.Anything, testPasscode).Return(User{}, ErrNotFound)
	mockRepo.On("CountCreatedSince", mock.Anything, fixedNow.Add(-24*time.Hour)).Return(2, nil)
	mockRepo.On("Create", mock.Anything, testPasscode).Return(User{ID: "u-new", Passcode: testPasscode}, nil)

	res := service.Login(context.Background(), testPasscode)

	assert.True(t, res.Success)
	assert.Equal(t, "u-new", res.UserID)
	assert.True(t, res.Created)
	mockRepo.AssertExpectations(t)
}

func TestService_Login_QuotaExceeded(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("FindByPasscode", mock.Anything, testPasscode).Return(User{}, ErrNotFound)
	mockRepo.On("CountCreatedSince", mock.Anything, mock.AnythingOfType("time.Time")).Return(3, nil)

	res := service.Login(context.Background(), testPasscode)

	assert.False(t, res.Success)
	assert.Empty(t, res.UserID)
	assert.Contains(t, res.Message, "daily limit of 3")
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Login_CountFailureTreatedAsZero(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("FindByPasscode", mock.Anything, testPasscode).Return(User{}, ErrNotFound)
	mockRepo.On("CountCreatedSince", mock.Anything, mock.Anything).Return(0, errors.New("timeout"))
	mockRepo.On("Create", mock.Anything, testPasscode).Return(User{ID: "u-2"}, nil)

	res := service.Login(context.Background(), testPasscode)

	assert.True(t, res.Success)
	assert.Equal(t, "u-2", res.UserID)
}

func TestService_Login_Failures(t *testing.T) {
	tests := []struct {
		name        string
		passcode    string
		setup       func(m *MockRepository)
		expectedMsg string
	}{
		{
			name:        "invalid passcode",
			passcode:    "short",
			setup:       func(m *MockRepository) {},
			expectedMsg: "passcode must be exactly 12 characters",
		},
		{
			name:     "lookup error",
			passcode: testPasscode,
			setup: func(m *MockRepository) {
				m.On("FindByPasscode", mock.Anything, testPasscode).Return(User{}, errors.New("connection refused"))
			},
			expectedMsg: "find user: connection refused",
		},
		{
			name:     "create error",
			passcode: testPasscode,
			setup: func(m *MockRepository) {
				m.On("FindByPasscode", mock.Anything, testPasscode).Return(User{}, ErrNotFound)
				m.On("CountCreatedSince", mock.Anything, mock.Anything).Return(0, nil)
				m.On("Create", mock.Anything, testPasscode).Return(User{}, errors.New("duplicate key"))
			},
			expectedMsg: "create user: duplicate key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			tt.setup(mockRepo)
			service := newTestService(mockRepo)

			res := service.Login(context.Background(), tt.passcode)

			assert.False(t, res.Success)
			assert.Equal(t, tt.expectedMsg, res.Message)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestService_UpdatePasscode(t *testing.T) {
	const newPasscode = "ZYXWVU654321"

	tests := []struct {
		name        string
		setup       func(m *MockRepository)
		wantSuccess bool
		expectedMsg string
	}{
		{
			name: "free passcode",
			setup: func(m *MockRepository) {
				m.On("FindByPasscode", mock.Anything, newPasscode).Return(User{}, ErrNotFound)
				m.On("UpdatePasscode", mock.Anything, "u-1", newPasscode).Return(nil)
			},
			wantSuccess: true,
			expectedMsg: "passcode changed",
		},
		{
			name: "own passcode",
			setup: func(m *MockRepository) {
				m.On("FindByPasscode", mock.Anything, newPasscode).Return(User{ID: "u-1"}, nil)
				m.On("UpdatePasscode", mock.Anything, "u-1", newPasscode).Return(nil)
			},
			wantSuccess: true,
			expectedMsg: "passcode changed",
		},
		{
			name: "taken by another user",
			setup: func(m *MockRepository) {
				m.On("FindByPasscode", mock.Anything, newPasscode).Return(User{ID: "u-2"}, nil)
			},
			expectedMsg: "this passcode is already in use",
		},
		{
			name: "lookup fails",
			setup: func(m *MockRepository) {
				m.On("FindByPasscode", mock.Anything, newPasscode).Return(User{}, errors.New("503"))
			},
			expectedMsg: "check passcode: 503",
		},
		{
			name: "patch fails",
			setup: func(m *MockRepository) {
				m.On("FindByPasscode", mock.Anything, newPasscode).Return(User{}, ErrNotFound)
				m.On("UpdatePasscode", mock.Anything, "u-1", newPasscode).Return(errors.New("400"))
			},
			expectedMsg: "update passcode: 400",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			tt.setup(mockRepo)
			service := newTestService(mockRepo)

			res := service.UpdatePasscode(context.Background(), "u-1", newPasscode)

			assert.Equal(t, tt.wantSuccess, res.Success)
			assert.Equal(t, tt.expectedMsg, res.Message)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestService_UpdatePasscode_Invalid(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	res := service.UpdatePasscode(context.Background(), "u-1", "bad")

	assert.False(t, res.Success)
	mockRepo.AssertNotCalled(t, "FindByPasscode", mock.Anything, mock.Anything)
}

func TestService_DeleteAccount(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("Delete", mock.Anything, "u-1").Return(nil).Once()
	mockRepo.On("Delete", mock.Anything, "u-2").Return(errors.New("forbidden")).Once()

	assert.True(t, service.DeleteAccount(context.Background(), "u-1").Success)

	res := service.DeleteAccount(context.Background(), "u-2")
	assert.False(t, res.Success)
	assert.Equal(t, "delete account: forbidden", res.Message)
	mockRepo.AssertExpectations(t)
}
