package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/OlegMusatov3000/BlitzMarket/internal/auth"
	"github.com/OlegMusatov3000/BlitzMarket/internal/model"
)

// MockTokenStore is a mock implementation of auth.TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID string, userID uint, email string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, userID, email, ttl)
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
	jwtService := auth.NewJWTService("test-secret")

	t.Run("new user gets default role", func(t *testing.T) {
		mUsers := new(MockUserRepository)
		mUsers.On("FindByEmail", mock.Anything, "anna@example.com").Return(nil, gorm.ErrRecordNotFound)
		mUsers.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		svc := NewAuthService(mUsers, jwtService, new(MockTokenStore))
		user, err := svc.Register(context.Background(), "anna@example.com", "secret123", "anna")

		assert.NoError(t, err)
		assert.Equal(t, model.RoleUser, user.Role)
		assert.True(t, user.IsActive)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")))
		mUsers.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		mUsers := new(MockUserRepository)
		mUsers.On("FindByEmail", mock.Anything, "anna@example.com").Return(&model.User{ID: 1}, nil)

		svc := NewAuthService(mUsers, jwtService, new(MockTokenStore))
		user, err := svc.Register(context.Background(), "anna@example.com", "secret123", "anna")

		assert.ErrorIs(t, err, ErrUserAlreadyExists)
		assert.Nil(t, user)
	})
}

func TestAuthService_Login(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	stored := &model.User{ID: 1, Email: "anna@example.com", PasswordHash: string(hash), Role: model.RoleUser, IsActive: true}

	t.Run("valid credentials", func(t *testing.T) {
		mUsers := new(MockUserRepository)
		mUsers.On("FindByEmail", mock.Anything, "anna@example.com").Return(stored, nil)
		mStore := new(MockTokenStore)
		mStore.On("StoreRefreshToken", mock.Anything, mock.AnythingOfType("string"), uint(1), "anna@example.com", auth.RefreshTokenExpiry).Return(nil)

		svc := NewAuthService(mUsers, jwtService, mStore)
		access, refresh, user, err := svc.Login(context.Background(), "anna@example.com", "secret123")

		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
		assert.Equal(t, uint(1), user.ID)
		mStore.AssertExpectations(t)

		claims, err := jwtService.ValidateToken(access)
		assert.NoError(t, err)
		assert.Equal(t, model.RoleUser, claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		mUsers := new(MockUserRepository)
		mUsers.On("FindByEmail", mock.Anything, "anna@example.com").Return(stored, nil)

		svc := NewAuthService(mUsers, jwtService, new(MockTokenStore))
		_, _, _, err := svc.Login(context.Background(), "anna@example.com", "nope")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		mUsers := new(MockUserRepository)
		mUsers.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

		svc := NewAuthService(mUsers, jwtService, new(MockTokenStore))
		_, _, _, err := svc.Login(context.Background(), "ghost@example.com", "secret123")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	user := &model.User{ID: 1, Email: "anna@example.com", Role: model.RoleUser, IsActive: true}

	t.Run("new access token carries the current role", func(t *testing.T) {
		tokenID, refresh, err := jwtService.GenerateRefreshToken(user)
		assert.NoError(t, err)

		// Role changed since login; the refreshed access token must reflect it.
		promoted := &model.User{ID: 1, Email: "anna@example.com", Role: model.RoleAdmin, IsActive: true}
		mUsers := new(MockUserRepository)
		mUsers.On("FindByID", mock.Anything, uint(1)).Return(promoted, nil)
		mStore := new(MockTokenStore)
		mStore.On("GetRefreshToken", mock.Anything, tokenID).Return(uint(1), "anna@example.com", nil)

		svc := NewAuthService(mUsers, jwtService, mStore)
		access, err := svc.RefreshToken(context.Background(), refresh)

		assert.NoError(t, err)
		claims, err := jwtService.ValidateToken(access)
		assert.NoError(t, err)
		assert.Equal(t, model.RoleAdmin, claims.Role)
	})

	t.Run("token missing from store", func(t *testing.T) {
		tokenID, refresh, err := jwtService.GenerateRefreshToken(user)
		assert.NoError(t, err)

		mStore := new(MockTokenStore)
		mStore.On("GetRefreshToken", mock.Anything, tokenID).Return(uint(0), "", assert.AnError)

		svc := NewAuthService(new(MockUserRepository), jwtService, mStore)
		_, err = svc.RefreshToken(context.Background(), refresh)

		assert.ErrorIs(t, err, ErrInvalidRefreshToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		svc := NewAuthService(new(MockUserRepository), jwtService, new(MockTokenStore))
		_, err := svc.RefreshToken(context.Background(), "not-a-token")
		assert.ErrorIs(t, err, ErrInvalidRefreshToken)
	})
}

func TestAuthService_Logout(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	user := &model.User{ID: 1, Email: "anna@example.com", Role: model.RoleUser, IsActive: true}
	tokenID, refresh, err := jwtService.GenerateRefreshToken(user)
	assert.NoError(t, err)

	mStore := new(MockTokenStore)
	mStore.On("DeleteRefreshToken", mock.Anything, tokenID).Return(nil)

	svc := NewAuthService(new(MockUserRepository), jwtService, mStore)
	assert.NoError(t, svc.Logout(context.Background(), refresh))
	mStore.AssertExpectations(t)
}
