package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"surveywallet/internal/auth"
	"surveywallet/internal/model"
)

// MockUserService is a mock implementation of UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Upsert(ctx context.Context, profile *model.User) (*model.User, error) {
	args := m.Called(ctx, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserService) UpdateRole(ctx context.Context, email, role string) error {
	args := m.Called(ctx, email, role)
	return args.Error(0)
}

// MockTokenStore is a mock implementation of auth.TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

func TestAuthService_Login(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")

	users := new(MockUserService)
	users.On("Upsert", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.Email == "user@example.com" && u.LastLoginIP == "203.0.113.7"
	})).Return(&model.User{Email: "user@example.com", Role: model.RoleMember}, nil)

	svc := NewAuthService(users, jwtService, new(MockTokenStore))
	token, user, err := svc.Login(context.Background(), LoginClaims{
		Email:    "user@example.com",
		Name:     "Test User",
		Verified: true,
	}, "203.0.113.7")

	assert.NoError(t, err)
	assert.Equal(t, "user@example.com", user.Email)

	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.True(t, claims.Verified)

	users.AssertExpectations(t)
}

func TestAuthService_Logout_RevokesValidToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	token, err := jwtService.IssueSessionToken("user@example.com", "", false)
	assert.NoError(t, err)
	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)

	store := new(MockTokenStore)
	store.On("RevokeToken", mock.Anything, claims.ID, mock.MatchedBy(func(ttl time.Duration) bool {
		return ttl > 23*time.Hour && ttl <= auth.SessionTokenExpiry
	})).Return(nil)

	svc := NewAuthService(new(MockUserService), jwtService, store)
	assert.NoError(t, svc.Logout(context.Background(), token))
	store.AssertExpectations(t)
}

func TestAuthService_Logout_InvalidTokenIsNoop(t *testing.T) {
	store := new(MockTokenStore)

	svc := NewAuthService(new(MockUserService), auth.NewJWTService("test-secret"), store)
	assert.NoError(t, svc.Logout(context.Background(), "not-a-token"))

	store.AssertNotCalled(t, "RevokeToken", mock.Anything, mock.Anything, mock.Anything)
}
