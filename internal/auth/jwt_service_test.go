package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestJWTService_IssueAndValidate(t *testing.T) {
	service := NewJWTService("test-secret")

	token, err := service.IssueSessionToken("user@example.com", "Test User", true)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "Test User", claims.Name)
	assert.True(t, claims.Verified)
	assert.NotEmpty(t, claims.ID, "session tokens must carry a JTI for revocation")

	remaining := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, remaining, 23*time.Hour)
	assert.LessOrEqual(t, remaining, SessionTokenExpiry)
}

func TestJWTService_ValidateToken_Errors(t *testing.T) {
	service := NewJWTService("test-secret")

	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{
			name: "garbage token",
			token: func(t *testing.T) string {
				return "not-a-token"
			},
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				other := NewJWTService("other-secret")
				token, err := other.IssueSessionToken("user@example.com", "", false)
				assert.NoError(t, err)
				return token
			},
		},
		{
			name: "expired token",
			token: func(t *testing.T) string {
				claims := &Claims{
					Email: "user@example.com",
					RegisteredClaims: jwt.RegisteredClaims{
						ID:        "expired",
						ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
						IssuedAt:  jwt.NewNumericDate(time.Now().Add(-25 * time.Hour)),
					},
				}
				token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
				assert.NoError(t, err)
				return token
			},
		},
		{
			name: "wrong signing method",
			token: func(t *testing.T) string {
				token, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{Email: "user@example.com"}).
					SignedString(jwt.UnsafeAllowNoneSignatureType)
				assert.NoError(t, err)
				return token
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token(t))
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestTokenStore_RevokeExpiredTokenIsNoop(t *testing.T) {
	// A nil cache client degrades to no-ops; revoking a token that already
	// expired must not error either way.
	store := NewTokenStore(nil)
	assert.NoError(t, store.RevokeToken(t.Context(), "some-id", -time.Minute))

	revoked, err := store.IsRevoked(t.Context(), "some-id")
	assert.NoError(t, err)
	assert.False(t, revoked)
}
