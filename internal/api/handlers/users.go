package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/taskloom/taskloom-backend/internal/api/middleware"
	"github.com/taskloom/taskloom-backend/internal/services"
)

// GetOrgUsers lists the caller's organization user directory
func GetOrgUsers(svc *services.Services) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userCtx := middleware.GetUserContext(c)
		if userCtx == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Not authenticated",
			})
		}

		users, err := svc.Projects.ListOrgUsers(c.Context(), userCtx.OrganizationID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		return c.JSON(users)
	}
}
