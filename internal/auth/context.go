package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// ContextKey is where the JWT middleware stores the parsed token on the echo
// context.
const ContextKey = "session"

// ClaimsFromContext returns the authenticated caller's claims, or false when
// the request carried no valid session token.
func ClaimsFromContext(c echo.Context) (*Claims, bool) {
	token, ok := c.Get(ContextKey).(*jwt.Token)
	if !ok {
		return nil, false
	}
	claims, ok := token.Claims.(*Claims)
	return claims, ok
}
