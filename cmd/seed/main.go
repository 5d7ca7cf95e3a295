package main

import (
	"context"
	"log"

	"surveywallet/internal/config"
	"surveywallet/internal/db"
	"surveywallet/internal/model"
	"surveywallet/internal/repository"
	"surveywallet/internal/service"
)

// Seed data for local development: one admin, one member, and a handful of
// surveys to click around in.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Survey{},
		&model.SurveyVote{},
		&model.SurveyReaction{},
		&model.Comment{},
		&model.Report{},
		&model.Payment{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userService := service.NewUserService(repository.NewUserRepository(gormDB))
	surveyService := service.NewSurveyService(repository.NewSurveyRepository(gormDB), nil)

	users := []*model.User{
		{Email: "admin@surveywallet.dev", Name: "Admin", Verified: true, Role: model.RoleAdmin},
		{Email: "member@surveywallet.dev", Name: "Member", Verified: true},
	}
	for _, u := range users {
		if _, err := userService.Upsert(ctx, u); err != nil {
			log.Fatalf("Failed to seed user %s: %v", u.Email, err)
		}
	}
	log.Printf("Seeded %d users", len(users))

	surveys := []service.CreateSurveyInput{
		{
			Title:    "Remote work",
			Category: "workplace",
			Question: "How many days a week do you want to work remotely?",
			Options:  []string{"0", "1-2", "3-4", "5"},
		},
		{
			Title:    "Editor wars",
			Category: "tech",
			Question: "Which editor do you reach for first?",
			Options:  []string{"Vim", "Emacs", "VS Code", "Other"},
		},
		{
			Title:    "Coffee",
			Category: "lifestyle",
			Question: "Cups of coffee per day?",
			Options:  []string{"None", "1", "2-3", "4+"},
		},
	}
	for _, input := range surveys {
		if _, err := surveyService.Create(ctx, "admin@surveywallet.dev", input); err != nil {
			log.Fatalf("Failed to seed survey %q: %v", input.Title, err)
		}
	}
	log.Printf("Seeded %d surveys", len(surveys))

	log.Println("Seed completed successfully!")
}
