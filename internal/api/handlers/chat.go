package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/taskloom/taskloom-backend/internal/api/middleware"
	"github.com/taskloom/taskloom-backend/internal/llm"
	"github.com/taskloom/taskloom-backend/internal/services"
)

const summaryListLimit = 10

type windowRequest struct {
	ProjectID uuid.UUID  `json:"project_id"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

// Summarize runs the distillation pipeline over a project's recent chat
func Summarize(svc *services.Services) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userCtx := middleware.GetUserContext(c)
		if userCtx == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Not authenticated",
			})
		}

		var req windowRequest
		if err := c.BodyParser(&req); err != nil || req.ProjectID == uuid.Nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "project_id is required",
			})
		}

		if _, err := svc.Projects.GetProject(c.Context(), userCtx.OrganizationID, req.ProjectID); err != nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Access denied",
			})
		}

		result, err := svc.Distill.Summarize(c.Context(), userCtx.OrganizationID, req.ProjectID, req.StartDate, req.EndDate)
		if err != nil {
			return modelErrorResponse(c, err)
		}

		return c.JSON(result)
	}
}

// GenerateTechSpec infers a technical specification from a project's chat
func GenerateTechSpec(svc *services.Services) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userCtx := middleware.GetUserContext(c)
		if userCtx == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Not authenticated",
			})
		}

		var req windowRequest
		if err := c.BodyParser(&req); err != nil || req.ProjectID == uuid.Nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "project_id is required",
			})
		}

		if _, err := svc.Projects.GetProject(c.Context(), userCtx.OrganizationID, req.ProjectID); err != nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Access denied",
			})
		}

		spec, err := svc.Distill.GenerateTechSpec(c.Context(), req.ProjectID, req.StartDate, req.EndDate)
		if err != nil {
			return modelErrorResponse(c, err)
		}

		return c.JSON(fiber.Map{
			"tech_spec": spec,
		})
	}
}

// GetSummaries lists the most recent persisted summaries for a project
func GetSummaries(svc *services.Services) fiber.Handler {
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

		summaries, err := svc.Distill.ListSummaries(c.Context(), projectID, summaryListLimit)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		return c.JSON(summaries)
	}
}

// ExportTasks materializes reviewed task drafts into task records
func ExportTasks(svc *services.Services) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userCtx := middleware.GetUserContext(c)
		if userCtx == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Not authenticated",
			})
		}

		var req struct {
			ProjectID uuid.UUID            `json:"project_id"`
			Tasks     []services.TaskDraft `json:"tasks"`
		}
		if err := c.BodyParser(&req); err != nil || req.ProjectID == uuid.Nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "project_id is required",
			})
		}

		if _, err := svc.Projects.GetProject(c.Context(), userCtx.OrganizationID, req.ProjectID); err != nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Access denied",
			})
		}

		tasks, err := svc.Distill.ExportTasks(c.Context(), userCtx.OrganizationID, userCtx.UserID, req.ProjectID, req.Tasks)
		if err != nil {
			if errors.Is(err, services.ErrNoTasksProvided) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "No tasks provided",
				})
			}
			// Partial failure: report what was created alongside the error.
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   err.Error(),
				"created": tasks,
			})
		}

		return c.Status(fiber.StatusCreated).JSON(tasks)
	}
}

// modelErrorResponse maps invoker failures onto HTTP statuses
func modelErrorResponse(c *fiber.Ctx, err error) error {
	if errors.Is(err, llm.ErrUnavailable) || errors.Is(err, llm.ErrEmptyResponse) {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}
