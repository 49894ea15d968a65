package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"github.com/taskloom/taskloom-backend/internal/api/middleware"
	"github.com/taskloom/taskloom-backend/internal/services"
)

// RequireProjectAccess verifies that the project in the route belongs to the
// caller's organization before the connection is upgraded. The live feed
// carries the same chat the REST endpoints serve, so it gets the same
// ownership check.
func RequireProjectAccess(svc *services.Services) fiber.Handler {
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

		if _, err := svc.Projects.GetProject(c.Context(), userCtx.OrganizationID, projectID); err != nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Access denied",
			})
		}

		return c.Next()
	}
}

// ProjectStream streams newly posted project messages over a websocket.
// The subscriber receives each message as a JSON frame; the connection
// closes when the client goes away or a write fails.
func ProjectStream(svc *services.Services) func(*websocket.Conn) {
	return func(c *websocket.Conn) {
		defer c.Close()

		projectID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return
		}

		feed, cancel := svc.Hub.Subscribe(projectID)
		defer cancel()

		// Drain reads so client close frames are noticed.
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := c.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case msg, ok := <-feed:
				if !ok {
					return
				}
				if err := c.WriteJSON(msg); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}
}
