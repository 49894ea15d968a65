package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/taskloom/taskloom-backend/internal/auth"
	"github.com/taskloom/taskloom-backend/internal/models"
)

const userContextKey = "user"

// AuthRequired validates the bearer token and stores the caller's identity
// in the request locals.
func AuthRequired(jwtService *auth.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractBearerToken(c.Get("Authorization"))
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Not authenticated",
			})
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid token",
			})
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid token",
			})
		}

		userCtx := &models.UserContext{
			UserID: userID,
			Email:  claims.Email,
		}
		if claims.OrganizationID != "" {
			if orgID, err := uuid.Parse(claims.OrganizationID); err == nil {
				userCtx.OrganizationID = &orgID
			}
		}

		c.Locals(userContextKey, userCtx)
		return c.Next()
	}
}

// GetUserContext returns the authenticated identity for the request, or nil
func GetUserContext(c *fiber.Ctx) *models.UserContext {
	userCtx, ok := c.Locals(userContextKey).(*models.UserContext)
	if !ok {
		return nil
	}
	return userCtx
}

func extractBearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
