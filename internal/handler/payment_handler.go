package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"surveywallet/internal/auth"
	"surveywallet/internal/errors"
	"surveywallet/internal/service"
)

// PaymentHandler handles payment endpoints.
type PaymentHandler struct {
	paymentService service.PaymentService
	userService    service.UserService
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(paymentService service.PaymentService, userService service.UserService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService, userService: userService}
}

// IntentRequest represents a payment intent request.
type IntentRequest struct {
	Amount   string `json:"amount" validate:"required"`
	Currency string `json:"currency" validate:"required,len=3"`
}

// IntentResponse returns the gateway's client secret to the browser.
type IntentResponse struct {
	ClientSecret string `json:"client_secret"`
}

// RecordPaymentRequest represents a completed transaction to persist.
type RecordPaymentRequest struct {
	Amount      string `json:"amount" validate:"required"`
	Currency    string `json:"currency" validate:"required,len=3"`
	ProviderRef string `json:"provider_ref" validate:"required"`
}

// CreateIntent godoc
// @Summary Create a payment intent with the gateway
// @Tags payments
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body IntentRequest true "Amount and currency"
// @Success 200 {object} IntentResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /payments/intent [post]
func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	var req IntentRequest
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

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid amount",
			Code:  "INVALID_AMOUNT",
		})
	}

	intent, err := h.paymentService.CreateIntent(c.Request().Context(), amount, req.Currency)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, IntentResponse{ClientSecret: intent.ClientSecret})
}

// RecordPayment godoc
// @Summary Persist a completed transaction
// @Tags payments
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body RecordPaymentRequest true "Transaction data"
// @Success 201 {object} model.Payment
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /payments [post]
func (h *PaymentHandler) RecordPayment(c echo.Context) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: errors.ErrUnauthenticated.Error(),
			Code:  "UNAUTHENTICATED",
		})
	}

	var req RecordPaymentRequest
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

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid amount",
			Code:  "INVALID_AMOUNT",
		})
	}

	payment, err := h.paymentService.Record(c.Request().Context(), claims.Email, amount, req.Currency, req.ProviderRef)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, payment)
}

// ListPayments godoc
// @Summary List transactions (own for members, all for admins)
// @Tags payments
// @Produce json
// @Security SessionCookie
// @Success 200 {array} model.Payment
// @Failure 401 {object} errors.ErrorResponse
// @Router /payments [get]
func (h *PaymentHandler) ListPayments(c echo.Context) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: errors.ErrUnauthenticated.Error(),
			Code:  "UNAUTHENTICATED",
		})
	}

	isAdmin := false
	if user, err := h.userService.Get(c.Request().Context(), claims.Email); err == nil {
		isAdmin = user.IsAdmin()
	}

	payments, err := h.paymentService.History(c.Request().Context(), claims.Email, isAdmin)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, payments)
}
