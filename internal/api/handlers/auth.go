package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/taskloom/taskloom-backend/internal/auth"
)

// SignUp registers a new user, optionally creating an organization
func SignUp(authService *auth.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req struct {
			Email            string `json:"email"`
			Password         string `json:"password"`
			Name             string `json:"name"`
			OrganizationName string `json:"organization_name"`
		}

		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}

		user, token, err := authService.SignUp(c.Context(), req.Email, req.Password, req.Name, req.OrganizationName)
		if err != nil {
			status := fiber.StatusInternalServerError
			if errors.Is(err, auth.ErrEmailTaken) || errors.Is(err, auth.ErrPasswordTooShort) {
				status = fiber.StatusBadRequest
			}
			return c.Status(status).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"token": token,
			"user":  user,
		})
	}
}

// Login authenticates a user and returns a token
func Login(authService *auth.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}

		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}

		user, token, err := authService.Login(c.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "Invalid credentials",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		return c.JSON(fiber.Map{
			"token": token,
			"user":  user,
		})
	}
}
