package service

import (
	"context"
	"fmt"
	"time"

	"surveywallet/internal/auth"
	"surveywallet/internal/model"
)

// LoginClaims are the already-verified identity claims presented at login.
// The identity provider vouched for them upstream; the core does not
// re-verify.
type LoginClaims struct {
	Email    string
	Name     string
	PhotoURL string
	Verified bool
}

// AuthService handles session issuance and revocation.
type AuthService interface {
	// Login upserts the user's directory record and issues a session token.
	Login(ctx context.Context, claims LoginClaims, remoteIP string) (token string, user *model.User, err error)
	// Logout revokes the presented token until its natural expiry. An
	// already-invalid token is a no-op: the client is discarding its copy
	// either way.
	Logout(ctx context.Context, token string) error
}

type authService struct {
	users      UserService
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
}

// NewAuthService creates a new authentication service.
func NewAuthService(users UserService, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface) AuthService {
	return &authService{
		users:      users,
		jwtService: jwtService,
		tokenStore: tokenStore,
	}
}

// Login records first or repeat contact and returns a signed session token.
func (s *authService) Login(ctx context.Context, claims LoginClaims, remoteIP string) (string, *model.User, error) {
	user, err := s.users.Upsert(ctx, &model.User{
		Email:       claims.Email,
		Name:        claims.Name,
		PhotoURL:    claims.PhotoURL,
		Verified:    claims.Verified,
		LastLoginIP: remoteIP,
	})
	if err != nil {
		return "", nil, fmt.Errorf("upsert user: %w", err)
	}

	token, err := s.jwtService.IssueSessionToken(claims.Email, claims.Name, claims.Verified)
	if err != nil {
		return "", nil, fmt.Errorf("issue session token: %w", err)
	}

	return token, user, nil
}

// Logout adds the token's ID to the revocation set for whatever validity the
// token has left.
func (s *authService) Logout(ctx context.Context, token string) error {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	return s.tokenStore.RevokeToken(ctx, claims.ID, ttl)
}
