package main

import (
	"log"
	"net/http"
	"os"

	"surveywallet/docs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"surveywallet/internal/auth"
	"surveywallet/internal/cache"
	"surveywallet/internal/config"
	"surveywallet/internal/db"
	"surveywallet/internal/gateway"
	"surveywallet/internal/handler"
	"surveywallet/internal/model"
	"surveywallet/internal/repository"
	"surveywallet/internal/router"
	"surveywallet/internal/service"
)

// @title Survey Wallet API
// @version 1.0
// @description Survey and voting backend with cookie-based JWT sessions, role-based authorization, and payment intents.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name swl_token
// @description Session token issued by /auth/login.
func main() {
	cfg := config.Load()
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Payment{},
			&model.Report{},
			&model.Comment{},
			&model.SurveyReaction{},
			&model.SurveyVote{},
			&model.Survey{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Survey{},
		&model.SurveyVote{},
		&model.SurveyReaction{},
		&model.Comment{},
		&model.Report{},
		&model.Payment{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	surveyRepo := repository.NewSurveyRepository(gormDB)
	reportRepo := repository.NewReportRepository(gormDB)
	paymentRepo := repository.NewPaymentRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize gateway client
	paymentGateway := gateway.NewStripeClient(cfg.GatewayURL, cfg.GatewayKey)

	// Initialize services
	userService := service.NewUserService(userRepo)
	authService := service.NewAuthService(userService, jwtService, tokenStore)
	surveyService := service.NewSurveyService(surveyRepo, cacheClient)
	reportService := service.NewReportService(reportRepo)
	paymentService := service.NewPaymentService(paymentRepo, paymentGateway)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, cfg.CookieName, cfg.CookieSecure)
	surveyHandler := handler.NewSurveyHandler(surveyService, userService)
	userHandler := handler.NewUserHandler(userService)
	reportHandler := handler.NewReportHandler(reportService)
	paymentHandler := handler.NewPaymentHandler(paymentService, userService)

	// Register routes
	router.Register(
		e,
		cfg,
		tokenStore,
		userService,
		authHandler,
		surveyHandler,
		userHandler,
		reportHandler,
		paymentHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
