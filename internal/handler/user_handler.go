package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"surveywallet/internal/auth"
	"surveywallet/internal/errors"
	"surveywallet/internal/model"
	"surveywallet/internal/service"
)

// UserHandler handles user directory endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UpsertUserRequest represents a profile upsert payload.
type UpsertUserRequest struct {
	Name     string `json:"name"`
	PhotoURL string `json:"photo_url"`
	Verified bool   `json:"verified"`
}

// RoleRequest represents a role change payload.
type RoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// UpsertProfile godoc
// @Summary Create or refresh the caller's profile
// @Tags users
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body UpsertUserRequest true "Profile fields"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /users [put]
func (h *UserHandler) UpsertProfile(c echo.Context) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: errors.ErrUnauthenticated.Error(),
			Code:  "UNAUTHENTICATED",
		})
	}

	var req UpsertUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	user, err := h.userService.Upsert(c.Request().Context(), &model.User{
		Email:       claims.Email,
		Name:        req.Name,
		PhotoURL:    req.PhotoURL,
		Verified:    req.Verified,
		LastLoginIP: c.RealIP(),
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, user)
}

// GetUser godoc
// @Summary Get a user by email (self or admin)
// @Tags users
// @Produce json
// @Security SessionCookie
// @Param email path string true "User email"
// @Success 200 {object} model.User
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{email} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: errors.ErrUnauthenticated.Error(),
			Code:  "UNAUTHENTICATED",
		})
	}

	email := c.Param("email")
	if email != claims.Email {
		caller, err := h.userService.Get(c.Request().Context(), claims.Email)
		if err != nil || !caller.IsAdmin() {
			httpErr := errors.MapErrorToHTTP(errors.ErrForbidden)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		}
	}

	user, err := h.userService.Get(c.Request().Context(), email)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, user)
}

// ListUsers godoc
// @Summary List all users (admin)
// @Tags users
// @Produce json
// @Security SessionCookie
// @Success 200 {array} model.User
// @Failure 403 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, users)
}

// UpdateRole godoc
// @Summary Change a user's role (admin)
// @Tags users
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param email path string true "User email"
// @Param request body RoleRequest true "New role"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{email}/role [patch]
func (h *UserHandler) UpdateRole(c echo.Context) error {
	var req RoleRequest
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

	email := c.Param("email")
	if err := h.userService.UpdateRole(c.Request().Context(), email, req.Role); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"email": email, "role": req.Role})
}
