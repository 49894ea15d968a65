package handlers

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskloom/taskloom-backend/internal/api/middleware"
	"github.com/taskloom/taskloom-backend/internal/auth"
	"github.com/taskloom/taskloom-backend/internal/repository"
	"github.com/taskloom/taskloom-backend/internal/services"
)

type stubProjectRepo struct {
	projects map[uuid.UUID]repository.Project
}

func (s *stubProjectRepo) Create(ctx context.Context, project repository.Project) (uuid.UUID, error) {
	return uuid.New(), nil
}

func (s *stubProjectRepo) Get(ctx context.Context, id uuid.UUID) (*repository.Project, error) {
	project, ok := s.projects[id]
	if !ok {
		return nil, errors.New("project not found")
	}
	return &project, nil
}

func (s *stubProjectRepo) ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]repository.Project, error) {
	return nil, nil
}

type stubTaskRepo struct{}

func (s *stubTaskRepo) Create(ctx context.Context, task repository.Task) (uuid.UUID, error) {
	return uuid.New(), nil
}

func (s *stubTaskRepo) Get(ctx context.Context, id uuid.UUID) (*repository.Task, error) {
	return nil, errors.New("task not found")
}

func (s *stubTaskRepo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]repository.Task, error) {
	return nil, nil
}

type stubUserRepo struct{}

func (s *stubUserRepo) Create(ctx context.Context, user repository.User) (uuid.UUID, error) {
	return uuid.New(), nil
}

func (s *stubUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*repository.User, error) {
	return nil, errors.New("user not found")
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*repository.User, error) {
	return nil, errors.New("user not found")
}

func (s *stubUserRepo) ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]repository.OrgUser, error) {
	return nil, nil
}

func TestRequireProjectAccess(t *testing.T) {
	orgA := uuid.New()
	orgB := uuid.New()
	projectID := uuid.New()

	projRepo := &stubProjectRepo{projects: map[uuid.UUID]repository.Project{
		projectID: {ID: projectID, Title: "internal", OrganizationID: &orgA},
	}}
	svc := &services.Services{
		Projects: services.NewProjectService(projRepo, &stubTaskRepo{}, &stubUserRepo{}),
	}
	jwtService := auth.NewJWTService("test-secret", "taskloom")

	app := fiber.New()
	app.Get("/ws/projects/:id",
		middleware.AuthRequired(jwtService),
		RequireProjectAccess(svc),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)

	tokenFor := func(orgID *uuid.UUID) string {
		token, err := jwtService.GenerateToken(uuid.New(), "user@example.com", orgID)
		require.NoError(t, err)
		return token
	}

	tests := []struct {
		name       string
		token      string
		target     string
		wantStatus int
	}{
		{
			name:       "owner organization allowed",
			token:      tokenFor(&orgA),
			target:     "/ws/projects/" + projectID.String(),
			wantStatus: fiber.StatusOK,
		},
		{
			name:       "foreign organization denied",
			token:      tokenFor(&orgB),
			target:     "/ws/projects/" + projectID.String(),
			wantStatus: fiber.StatusForbidden,
		},
		{
			name:       "user without organization denied",
			token:      tokenFor(nil),
			target:     "/ws/projects/" + projectID.String(),
			wantStatus: fiber.StatusForbidden,
		},
		{
			name:       "unknown project denied",
			token:      tokenFor(&orgA),
			target:     "/ws/projects/" + uuid.NewString(),
			wantStatus: fiber.StatusForbidden,
		},
		{
			name:       "invalid project id rejected",
			token:      tokenFor(&orgA),
			target:     "/ws/projects/not-a-uuid",
			wantStatus: fiber.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodGet, tt.target, nil)
			req.Header.Set("Authorization", "Bearer "+tt.token)

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestRequireProjectAccess_NoToken(t *testing.T) {
	svc := &services.Services{
		Projects: services.NewProjectService(&stubProjectRepo{}, &stubTaskRepo{}, &stubUserRepo{}),
	}
	jwtService := auth.NewJWTService("test-secret", "taskloom")

	app := fiber.New()
	app.Get("/ws/projects/:id",
		middleware.AuthRequired(jwtService),
		RequireProjectAccess(svc),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)

	req := httptest.NewRequest(fiber.MethodGet, "/ws/projects/"+uuid.NewString(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
