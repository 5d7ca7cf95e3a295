package router

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"surveywallet/internal/auth"
	"surveywallet/internal/errors"
	"surveywallet/internal/service"
)

// NewSessionMiddleware validates the session cookie. Missing, malformed, or
// expired tokens are rejected with 401 before any handler runs.
func NewSessionMiddleware(secret, cookieName string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(secret),
		TokenLookup: "cookie:" + cookieName,
		ContextKey:  auth.ContextKey,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: errors.ErrUnauthenticated.Error(),
				Code:  "UNAUTHENTICATED",
			})
		},
	})
}

// NewRevocationMiddleware rejects tokens whose ID sits in the revocation set.
// Runs after signature and expiry validation; fails closed when the set
// cannot be consulted.
func NewRevocationMiddleware(store auth.TokenStoreInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := auth.ClaimsFromContext(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Error: errors.ErrUnauthenticated.Error(),
					Code:  "UNAUTHENTICATED",
				})
			}
			revoked, err := store.IsRevoked(c.Request().Context(), claims.ID)
			if err != nil || revoked {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Error: errors.ErrUnauthenticated.Error(),
					Code:  "TOKEN_REVOKED",
				})
			}
			return next(c)
		}
	}
}

// NewAdminMiddleware consults the user directory for the caller's role. It
// always runs after the session middleware, never standalone: a missing
// directory record or a non-admin role is 403, not 401.
func NewAdminMiddleware(users service.UserService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := auth.ClaimsFromContext(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Error: errors.ErrUnauthenticated.Error(),
					Code:  "UNAUTHENTICATED",
				})
			}
			user, err := users.Get(c.Request().Context(), claims.Email)
			if err != nil || !user.IsAdmin() {
				return echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{
					Error: errors.ErrForbidden.Error(),
					Code:  "FORBIDDEN",
				})
			}
			return next(c)
		}
	}
}
