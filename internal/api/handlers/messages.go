package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/taskloom/taskloom-backend/internal/api/middleware"
	"github.com/taskloom/taskloom-backend/internal/auth"
	"github.com/taskloom/taskloom-backend/internal/services"
)

// GetMessages lists the latest messages in a project chat
func GetMessages(svc *services.Services) fiber.Handler {
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

		messages, err := svc.Chat.ListMessages(c.Context(), projectID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		return c.JSON(messages)
	}
}

// PostMessage appends a message to a project chat
func PostMessage(svc *services.Services, authService *auth.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userCtx := middleware.GetUserContext(c)
		if userCtx == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Not authenticated",
			})
		}

		var req struct {
			ProjectID uuid.UUID `json:"project_id"`
			Content   string    `json:"content"`
			Kind      string    `json:"kind"`
		}
		if err := c.BodyParser(&req); err != nil || req.ProjectID == uuid.Nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "project_id is required",
			})
		}
		if req.Content == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "content is required",
			})
		}

		if _, err := svc.Projects.GetProject(c.Context(), userCtx.OrganizationID, req.ProjectID); err != nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Access denied",
			})
		}

		sender, err := authService.GetUser(c.Context(), userCtx.UserID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		message, err := svc.Chat.PostMessage(c.Context(), sender, req.ProjectID, req.Content, req.Kind)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		return c.Status(fiber.StatusCreated).JSON(message)
	}
}
