package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/taskloom/taskloom-backend/internal/api/handlers"
	"github.com/taskloom/taskloom-backend/internal/api/middleware"
	"github.com/taskloom/taskloom-backend/internal/auth"
	"github.com/taskloom/taskloom-backend/internal/services"
)

// SetupRoutes configures all API routes
func SetupRoutes(app *fiber.App, svc *services.Services, authService *auth.Service, jwtService *auth.JWTService) {
	api := app.Group("/api/v1")

	// Public endpoints
	api.Post("/auth/signup", handlers.SignUp(authService))
	api.Post("/auth/login", handlers.Login(authService))
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"service": "taskloom-backend",
		})
	})

	// Authenticated endpoints
	authed := api.Group("", middleware.AuthRequired(jwtService))

	authed.Get("/projects", handlers.GetProjects(svc))
	authed.Post("/projects", handlers.CreateProject(svc, authService))
	authed.Get("/projects/:id", handlers.GetProject(svc))

	authed.Get("/messages", handlers.GetMessages(svc))
	authed.Post("/messages", handlers.PostMessage(svc, authService))

	authed.Post("/chat/summarize", handlers.Summarize(svc))
	authed.Get("/chat/summaries", handlers.GetSummaries(svc))
	authed.Post("/chat/techspec", handlers.GenerateTechSpec(svc))
	authed.Post("/chat/tasks/export", handlers.ExportTasks(svc))

	authed.Get("/tasks", handlers.GetTasks(svc))
	authed.Post("/tasks", handlers.CreateTask(svc, authService))

	authed.Get("/users", handlers.GetOrgUsers(svc))

	// WebSocket live chat feed
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/projects/:id",
		middleware.AuthRequired(jwtService),
		handlers.RequireProjectAccess(svc),
		websocket.New(handlers.ProjectStream(svc)))
}
