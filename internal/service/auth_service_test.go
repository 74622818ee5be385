package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"taskapi/internal/api"
	"taskapi/internal/apperrors"
	"taskapi/internal/auth"
	"taskapi/internal/model"
	"taskapi/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateWithProfile(ctx context.Context, user *model.User, profile *model.UserProfile) error {
	args := m.Called(ctx, user, profile)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, filter repository.UserFilter, page, perPage int, currentURL string) ([]model.User, api.Meta, error) {
	args := m.Called(ctx, filter, page, perPage, currentURL)
	if args.Get(0) == nil {
		return nil, args.Get(1).(api.Meta), args.Error(2)
	}
	return args.Get(0).([]model.User), args.Get(1).(api.Meta), args.Error(2)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTokenStore is a mock implementation of TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID string, userID uint, username string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, userID, username, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (uint, string, error) {
	args := m.Called(ctx, tokenID)
	return args.Get(0).(uint), args.String(1), args.Error(2)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		input         RegisterInput
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name: "successful registration",
			input: RegisterInput{
				Name:     "Test User",
				Username: "testuser",
				Email:    "test@example.com",
				Password: "password123",
			},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "testuser").Return(nil, gorm.ErrRecordNotFound)
				m.On("CreateWithProfile", mock.Anything, mock.AnythingOfType("*model.User"), mock.AnythingOfType("*model.UserProfile")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "username already taken",
			input: RegisterInput{
				Name:     "Existing User",
				Username: "existing",
				Email:    "existing@example.com",
				Password: "password123",
			},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "existing").Return(&model.User{Username: "existing"}, nil)
			},
			expectedError: apperrors.ErrUserAlreadyExists,
		},
		{
			name: "duplicate email surfaces as already exists",
			input: RegisterInput{
				Name:     "Dup Email",
				Username: "dupemail",
				Email:    "taken@example.com",
				Password: "password123",
			},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "dupemail").Return(nil, gorm.ErrRecordNotFound)
				m.On("CreateWithProfile", mock.Anything, mock.AnythingOfType("*model.User"), mock.AnythingOfType("*model.UserProfile")).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: apperrors.ErrUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			jwtService := auth.NewJWTService("test-secret")
			mockTokenStore := new(MockTokenStore)

			service := NewAuthService(mockRepo, jwtService, mockTokenStore)
			user, err := service.Register(context.Background(), tt.input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.input.Username, user.Username)
				assert.Equal(t, tt.input.Email, user.Email)
				// never store the plaintext
				assert.NotEqual(t, tt.input.Password, user.Password)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(tt.input.Password)))
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), 10)

	tests := []struct {
		name          string
		username      string
		password      string
		setupMock     func(*MockUserRepository, *MockTokenStore)
		expectedError error
	}{
		{
			name:     "successful login",
			username: "testuser",
			password: "password123",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				mRepo.On("FindByUsername", mock.Anything, "testuser").Return(&model.User{
					ID:       42,
					Username: "testuser",
					Password: string(hashedPassword),
				}, nil)
				mToken.On("StoreRefreshToken", mock.Anything, mock.Anything, uint(42), "testuser", mock.Anything).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "user not found",
			username: "nobody",
			password: "password123",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				mRepo.On("FindByUsername", mock.Anything, "nobody").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			username: "testuser",
			password: "wrong",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				mRepo.On("FindByUsername", mock.Anything, "testuser").Return(&model.User{
					ID:       42,
					Username: "testuser",
					Password: string(hashedPassword),
				}, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			mockTokenStore := new(MockTokenStore)
			tt.setupMock(mockRepo, mockTokenStore)

			jwtService := auth.NewJWTService("test-secret")
			service := NewAuthService(mockRepo, jwtService, mockTokenStore)

			accessToken, refreshToken, user, err := service.Login(context.Background(), tt.username, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, accessToken)
				assert.Empty(t, refreshToken)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, accessToken)
				assert.NotEmpty(t, refreshToken)
				assert.NotNil(t, user)
				assert.Equal(t, tt.username, user.Username)
			}

			mockRepo.AssertExpectations(t)
			mockTokenStore.AssertExpectations(t)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	tokenID, refreshToken, err := jwtService.GenerateRefreshToken(42, "testuser")
	assert.NoError(t, err)

	tests := []struct {
		name          string
		token         string
		setupMock     func(*MockTokenStore)
		expectedError error
	}{
		{
			name:  "valid refresh token",
			token: refreshToken,
			setupMock: func(m *MockTokenStore) {
				m.On("GetRefreshToken", mock.Anything, tokenID).Return(uint(42), "testuser", nil)
			},
			expectedError: nil,
		},
		{
			name:          "malformed token",
			token:         "not-a-jwt",
			setupMock:     func(m *MockTokenStore) {},
			expectedError: apperrors.ErrInvalidRefreshToken,
		},
		{
			name:  "token unknown to the store",
			token: refreshToken,
			setupMock: func(m *MockTokenStore) {
				m.On("GetRefreshToken", mock.Anything, tokenID).Return(uint(0), "", assert.AnError)
			},
			expectedError: apperrors.ErrInvalidRefreshToken,
		},
		{
			name:  "store identity mismatch",
			token: refreshToken,
			setupMock: func(m *MockTokenStore) {
				m.On("GetRefreshToken", mock.Anything, tokenID).Return(uint(7), "someoneelse", nil)
			},
			expectedError: apperrors.ErrInvalidRefreshToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTokenStore := new(MockTokenStore)
			tt.setupMock(mockTokenStore)

			service := NewAuthService(new(MockUserRepository), jwtService, mockTokenStore)
			accessToken, err := service.RefreshToken(context.Background(), tt.token)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, accessToken)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, accessToken)
			}

			mockTokenStore.AssertExpectations(t)
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	tokenID, refreshToken, err := jwtService.GenerateRefreshToken(42, "testuser")
	assert.NoError(t, err)

	mockTokenStore := new(MockTokenStore)
	mockTokenStore.On("DeleteRefreshToken", mock.Anything, tokenID).Return(nil)

	service := NewAuthService(new(MockUserRepository), jwtService, mockTokenStore)
	assert.NoError(t, service.Logout(context.Background(), refreshToken))
	mockTokenStore.AssertExpectations(t)

	assert.ErrorIs(t, service.Logout(context.Background(), "not-a-jwt"), apperrors.ErrInvalidRefreshToken)
}
