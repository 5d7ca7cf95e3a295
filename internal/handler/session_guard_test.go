package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"surveywallet/internal/errors"
)

// Handlers behind the session guard still check for claims themselves. That
// fallback must answer with the same structured error body as every other
// error path, not a bare string.
func TestMissingClaimsUseStructuredErrorBody(t *testing.T) {
	surveys := NewSurveyHandler(nil, nil)
	users := NewUserHandler(nil)
	reports := NewReportHandler(nil)
	payments := NewPaymentHandler(nil, nil)

	tests := []struct {
		name    string
		handler echo.HandlerFunc
	}{
		{name: "create survey", handler: surveys.CreateSurvey},
		{name: "participate", handler: surveys.Participate},
		{name: "react", handler: surveys.React},
		{name: "add comment", handler: surveys.AddComment},
		{name: "delete survey", handler: surveys.DeleteSurvey},
		{name: "upsert profile", handler: users.UpsertProfile},
		{name: "get user", handler: users.GetUser},
		{name: "create report", handler: reports.CreateReport},
		{name: "record payment", handler: payments.RecordPayment},
		{name: "list payments", handler: payments.ListPayments},
	}

	e := echo.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			c := e.NewContext(req, httptest.NewRecorder())
			c.SetParamNames("id")
			c.SetParamValues("5e0f5d57-6e74-4d1c-91b0-9f8d2c9a7c11")

			err := tt.handler(c)

			var httpErr *echo.HTTPError
			assert.ErrorAs(t, err, &httpErr)
			assert.Equal(t, http.StatusUnauthorized, httpErr.Code)

			body, ok := httpErr.Message.(errors.ErrorResponse)
			assert.True(t, ok, "401 body must be an ErrorResponse, got %T", httpErr.Message)
			assert.Equal(t, "UNAUTHENTICATED", body.Code)
			assert.Equal(t, errors.ErrUnauthenticated.Error(), body.Error)
		})
	}
}
