package main

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"

	"github.com/taskloom/taskloom-backend/internal/api"
	"github.com/taskloom/taskloom-backend/internal/auth"
	"github.com/taskloom/taskloom-backend/internal/config"
	"github.com/taskloom/taskloom-backend/internal/database"
	llmopenai "github.com/taskloom/taskloom-backend/internal/llm/openai"
	"github.com/taskloom/taskloom-backend/internal/repository/postgres"
	"github.com/taskloom/taskloom-backend/internal/services"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}

	// Connect to database
	db, err := database.NewConnection(cfg.Database)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}
	defer db.Close()

	// Run migrations
	schemaVersion, err := database.Migrate(cfg.Database)
	if err != nil {
		log.WithError(err).Fatal("Failed to run migrations")
	}
	log.WithField("schema_version", schemaVersion).Info("Database schema ready")

	// Model invoker
	invoker, err := llmopenai.NewClient(cfg.AI)
	if err != nil {
		log.WithError(err).Fatal("Failed to configure AI client")
	}

	// Initialize Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Taskloom Backend",
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	// Initialize repositories
	orgRepo := postgres.NewOrganizationRepository(db.DB)
	userRepo := postgres.NewUserRepository(db.DB)
	projectRepo := postgres.NewProjectRepository(db.DB)
	messageRepo := postgres.NewMessageRepository(db.DB)
	summaryRepo := postgres.NewSummaryRepository(db.DB)
	taskRepo := postgres.NewTaskRepository(db.DB)

	// Initialize auth
	jwtSecret := cfg.Auth.JWTSecret
	if jwtSecret == "" {
		jwtSecret = "change-me-in-production"
		log.Warn("Using default JWT secret. Set TASKLOOM_JWT_SECRET in production!")
	}
	jwtService := auth.NewJWTService(jwtSecret, "taskloom")
	authService := auth.NewService(userRepo, orgRepo, jwtService)

	// Initialize services
	svc := services.NewServices(log, invoker, userRepo, projectRepo, messageRepo, summaryRepo, taskRepo)

	// Setup routes
	api.SetupRoutes(app, svc, authService, jwtService)

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.WithField("addr", addr).Info("Taskloom backend starting")
	if err := app.Listen(addr); err != nil {
		log.WithError(err).Fatal("Failed to start server")
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
