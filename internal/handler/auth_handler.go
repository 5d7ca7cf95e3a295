package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"surveywallet/internal/auth"
	"surveywallet/internal/errors"
	"surveywallet/internal/service"
)

// AuthHandler handles session issuance and teardown.
type AuthHandler struct {
	authService  service.AuthService
	cookieName   string
	cookieSecure bool
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, cookieName string, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		cookieName:   cookieName,
		cookieSecure: cookieSecure,
	}
}

// LoginRequest carries identity claims already verified by the identity
// provider.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photo_url"`
	Verified bool   `json:"verified"`
}

// LoginResponse returns the caller's directory record; the session token
// travels only in the cookie.
type LoginResponse struct {
	User interface{} `json:"user"`
}

// Login godoc
// @Summary Issue a session cookie for verified identity claims
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Identity claims"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	token, user, err := h.authService.Login(c.Request().Context(), service.LoginClaims{
		Email:    req.Email,
		Name:     req.Name,
		PhotoURL: req.PhotoURL,
		Verified: req.Verified,
	}, c.RealIP())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(auth.SessionTokenExpiry.Seconds()),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, LoginResponse{User: user})
}

// Logout godoc
// @Summary Revoke the session token and clear the cookie
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]bool
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(h.cookieName); err == nil && cookie.Value != "" {
		if err := h.authService.Logout(c.Request().Context(), cookie.Value); err != nil {
			httpErr := errors.MapErrorToHTTP(err)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		}
	}

	// Expire the client's copy regardless of whether it was still valid.
	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
