package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/taskloom/taskloom-backend/internal/api/middleware"
	"github.com/taskloom/taskloom-backend/internal/auth"
	"github.com/taskloom/taskloom-backend/internal/services"
)

// CreateProject creates a project in the caller's organization
func CreateProject(svc *services.Services, authService *auth.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userCtx := middleware.GetUserContext(c)
		if userCtx == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Not authenticated",
			})
		}

		var req struct {
			Title       string     `json:"title"`
			Description string     `json:"description"`
			DueDate     *time.Time `json:"due_date"`
		}
		if err := c.BodyParser(&req); err != nil || req.Title == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "title is required",
			})
		}

		creator, err := authService.GetUser(c.Context(), userCtx.UserID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		project, err := svc.Projects.CreateProject(c.Context(), creator, req.Title, req.Description, req.DueDate)
		if err != nil {
			if errors.Is(err, services.ErrNoOrganization) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": err.Error(),
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		return c.Status(fiber.StatusCreated).JSON(project)
	}
}

// GetProjects lists the caller's organization projects
func GetProjects(svc *services.Services) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userCtx := middleware.GetUserContext(c)
		if userCtx == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Not authenticated",
			})
		}

		projects, err := svc.Projects.ListProjects(c.Context(), userCtx.OrganizationID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		return c.JSON(projects)
	}
}

// GetProject returns one project the caller can access
func GetProject(svc *services.Services) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userCtx := middleware.GetUserContext(c)
		if userCtx == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Not authenticated",
			})
		}

		projectID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid project id",
			})
		}

		project, err := svc.Projects.GetProject(c.Context(), userCtx.OrganizationID, projectID)
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Project not found",
			})
		}

		return c.JSON(project)
	}
}
