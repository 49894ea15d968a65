package main

import (
	"context"
	"flag"
	"log"

	"github.com/taskloom/taskloom-backend/internal/auth"
	"github.com/taskloom/taskloom-backend/internal/config"
	"github.com/taskloom/taskloom-backend/internal/database"
	"github.com/taskloom/taskloom-backend/internal/repository/postgres"
)

// Seeds a user (and optionally an organization) without going through the
// HTTP signup flow. Useful for local setups and operations.
func main() {
	email := flag.String("email", "", "user email (required)")
	password := flag.String("password", "", "user password (required)")
	name := flag.String("name", "", "display name")
	orgName := flag.String("org", "", "organization to create and join as admin")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	db, err := database.NewConnection(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if _, err := database.Migrate(cfg.Database); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	userRepo := postgres.NewUserRepository(db.DB)
	orgRepo := postgres.NewOrganizationRepository(db.DB)
	jwtService := auth.NewJWTService(cfg.Auth.JWTSecret, "taskloom")
	authService := auth.NewService(userRepo, orgRepo, jwtService)

	user, _, err := authService.SignUp(context.Background(), *email, *password, *name, *orgName)
	if err != nil {
		log.Fatalf("failed to create user: %v", err)
	}

	log.Printf("created user %s (%s)", user.Email, user.ID)
	if user.OrganizationID != nil {
		log.Printf("created organization %s", *user.OrganizationID)
	}
}
