package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/taskloom/taskloom-backend/internal/api/middleware"
	"github.com/taskloom/taskloom-backend/internal/auth"
	"github.com/taskloom/taskloom-backend/internal/repository"
	"github.com/taskloom/taskloom-backend/internal/services"
)

// GetTasks lists a project's tasks
func GetTasks(svc *services.Services) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userCtx := middleware.GetUserContext(c)
		if userCtx == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Not authenticated",
			})
		}

		projectID, err := uuid.Parse(c.Query("project_id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "project_id is required",
			})
		}

		if _, err := svc.Projects.GetProject(c.Context(), userCtx.OrganizationID, projectID); err != nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Access denied",
			})
		}

		tasks, err := svc.Projects.ListTasks(c.Context(), projectID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		return c.JSON(tasks)
	}
}

// CreateTask creates a single task directly
func CreateTask(svc *services.Services, authService *auth.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userCtx := middleware.GetUserContext(c)
		if userCtx == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Not authenticated",
			})
		}

		var req struct {
			ProjectID   uuid.UUID  `json:"project_id"`
			Title       string     `json:"title"`
			Description string     `json:"description"`
			AssignedTo  *uuid.UUID `json:"assigned_to"`
			Priority    string     `json:"priority"`
			DueDate     *time.Time `json:"due_date"`
		}
		if err := c.BodyParser(&req); err != nil || req.ProjectID == uuid.Nil || req.Title == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "project_id and title are required",
			})
		}

		if _, err := svc.Projects.GetProject(c.Context(), userCtx.OrganizationID, req.ProjectID); err != nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Access denied",
			})
		}

		creator, err := authService.GetUser(c.Context(), userCtx.UserID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		task, err := svc.Projects.CreateTask(c.Context(), creator, repository.Task{
			ProjectID:   req.ProjectID,
			Title:       req.Title,
			Description: req.Description,
			AssignedTo:  req.AssignedTo,
			Priority:    req.Priority,
			DueDate:     req.DueDate,
		})
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		return c.Status(fiber.StatusCreated).JSON(task)
	}
}
