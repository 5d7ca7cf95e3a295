package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"surveywallet/internal/auth"
	"surveywallet/internal/config"
	"surveywallet/internal/handler"
	"surveywallet/internal/service"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	tokenStore auth.TokenStoreInterface,
	userService service.UserService,
	authHandler *handler.AuthHandler,
	surveyHandler *handler.SurveyHandler,
	userHandler *handler.UserHandler,
	reportHandler *handler.ReportHandler,
	paymentHandler *handler.PaymentHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
	}))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	session := NewSessionMiddleware(cfg.JWTSecret, cfg.CookieName)
	revocation := NewRevocationMiddleware(tokenStore)
	admin := NewAdminMiddleware(userService)

	authed := []echo.MiddlewareFunc{session, revocation}
	adminOnly := []echo.MiddlewareFunc{session, revocation, admin}

	api := e.Group("/api/v1")

	// Session lifecycle. Logout stays unguarded so an expired cookie can
	// still be cleared.
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)

	// Public reads. Static segments win over :id in echo's router, so the
	// rail routes never shadow survey lookups.
	api.GET("/surveys", surveyHandler.ListSurveys)
	api.GET("/surveys/featured", surveyHandler.ListFeatured)
	api.GET("/surveys/latest", surveyHandler.ListLatest)
	api.GET("/surveys/:id", surveyHandler.GetSurvey)

	// Authenticated survey operations
	api.POST("/surveys", surveyHandler.CreateSurvey, authed...)
	api.PUT("/surveys/:id", surveyHandler.UpdateSurvey, authed...)
	api.DELETE("/surveys/:id", surveyHandler.DeleteSurvey, authed...)
	api.PATCH("/surveys/:id/participate", surveyHandler.Participate, authed...)
	api.GET("/surveys/:id/participation", surveyHandler.GetParticipation, authed...)
	api.PATCH("/surveys/:id/react", surveyHandler.React, authed...)
	api.GET("/surveys/:id/reaction", surveyHandler.GetReaction, authed...)
	api.POST("/surveys/:id/comments", surveyHandler.AddComment, authed...)

	// Moderation (admin)
	api.PATCH("/surveys/:id/featured", surveyHandler.SetFeatured, adminOnly...)
	api.PATCH("/surveys/:id/status", surveyHandler.SetStatus, adminOnly...)

	// User directory
	api.PUT("/users", userHandler.UpsertProfile, authed...)
	api.GET("/users/:email", userHandler.GetUser, authed...)
	api.GET("/users", userHandler.ListUsers, adminOnly...)
	api.PATCH("/users/:email/role", userHandler.UpdateRole, adminOnly...)

	// Reports
	api.POST("/reports", reportHandler.CreateReport, authed...)
	api.GET("/reports", reportHandler.ListReports, adminOnly...)
	api.DELETE("/reports/:id", reportHandler.DeleteReport, adminOnly...)

	// Payments
	api.POST("/payments/intent", paymentHandler.CreateIntent, authed...)
	api.POST("/payments", paymentHandler.RecordPayment, authed...)
	api.GET("/payments", paymentHandler.ListPayments, authed...)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
