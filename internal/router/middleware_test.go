package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"surveywallet/internal/auth"
	"surveywallet/internal/model"
)

const (
	testSecret = "test-secret"
	testCookie = "swl_token"
)

type mockTokenStore struct {
	mock.Mock
}

func (m *mockTokenStore) RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *mockTokenStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

type mockUserDirectory struct {
	mock.Mock
}

func (m *mockUserDirectory) Upsert(ctx context.Context, profile *model.User) (*model.User, error) {
	args := m.Called(ctx, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockUserDirectory) Get(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockUserDirectory) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *mockUserDirectory) UpdateRole(ctx context.Context, email, role string) error {
	args := m.Called(ctx, email, role)
	return args.Error(0)
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func issueTestToken(t *testing.T) string {
	t.Helper()
	token, err := auth.NewJWTService(testSecret).IssueSessionToken("user@example.com", "User", true)
	assert.NoError(t, err)
	return token
}

// runGuarded runs a request through the session middleware plus any extra
// guards, returning the recorder.
func runGuarded(req *http.Request, extra ...echo.MiddlewareFunc) *httptest.ResponseRecorder {
	e := echo.New()
	rec := httptest.NewRecorder()

	handler := okHandler
	for i := len(extra) - 1; i >= 0; i-- {
		handler = extra[i](handler)
	}
	handler = NewSessionMiddleware(testSecret, testCookie)(handler)

	c := e.NewContext(req, rec)
	err := handler(c)
	if err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestSessionMiddleware(t *testing.T) {
	t.Run("missing cookie is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := runGuarded(req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage cookie is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: testCookie, Value: "not-a-token"})
		rec := runGuarded(req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		token, err := auth.NewJWTService("other-secret").IssueSessionToken("user@example.com", "User", true)
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: testCookie, Value: token})
		rec := runGuarded(req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid cookie reaches the handler with claims in context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: testCookie, Value: issueTestToken(t)})

		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := NewSessionMiddleware(testSecret, testCookie)(func(c echo.Context) error {
			claims, ok := auth.ClaimsFromContext(c)
			assert.True(t, ok)
			assert.Equal(t, "user@example.com", claims.Email)
			return c.NoContent(http.StatusOK)
		})
		assert.NoError(t, handler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRevocationMiddleware(t *testing.T) {
	tests := []struct {
		name         string
		revoked      bool
		storeErr     error
		expectedCode int
	}{
		{name: "live token passes", expectedCode: http.StatusOK},
		{name: "revoked token is rejected", revoked: true, expectedCode: http.StatusUnauthorized},
		{name: "unreachable store fails closed", storeErr: assert.AnError, expectedCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(mockTokenStore)
			store.On("IsRevoked", mock.Anything, mock.AnythingOfType("string")).Return(tt.revoked, tt.storeErr)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.AddCookie(&http.Cookie{Name: testCookie, Value: issueTestToken(t)})
			rec := runGuarded(req, NewRevocationMiddleware(store))

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestAdminMiddleware(t *testing.T) {
	tests := []struct {
		name         string
		user         *model.User
		lookupErr    error
		expectedCode int
	}{
		{
			name:         "admin passes",
			user:         &model.User{Email: "user@example.com", Role: model.RoleAdmin},
			expectedCode: http.StatusOK,
		},
		{
			name:         "member is forbidden",
			user:         &model.User{Email: "user@example.com", Role: model.RoleMember},
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "caller without a directory record is forbidden",
			lookupErr:    assert.AnError,
			expectedCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(mockUserDirectory)
			users.On("Get", mock.Anything, "user@example.com").Return(tt.user, tt.lookupErr)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.AddCookie(&http.Cookie{Name: testCookie, Value: issueTestToken(t)})
			rec := runGuarded(req, NewAdminMiddleware(users))

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}
