package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/taskloom/taskloom-backend/internal/repository"
)

// ErrNoOrganization is returned when a user without an organization tries to
// create a project. Access checks compare organizations, so an org-less
// project would be unreachable even by its creator.
var ErrNoOrganization = errors.New("an organization is required to create projects")

// ProjectService handles project and task CRUD plus the organization user
// directory.
type ProjectService struct {
	projects repository.ProjectRepository
	tasks    repository.TaskRepository
	users    repository.UserRepository
}

// NewProjectService creates a new project service
func NewProjectService(projects repository.ProjectRepository, tasks repository.TaskRepository, users repository.UserRepository) *ProjectService {
	return &ProjectService{
		projects: projects,
		tasks:    tasks,
		users:    users,
	}
}

// CreateProject creates a project in the creator's organization
func (s *ProjectService) CreateProject(ctx context.Context, creator *repository.User, title, description string, dueDate *time.Time) (*repository.Project, error) {
	if creator.OrganizationID == nil {
		return nil, ErrNoOrganization
	}

	project := repository.Project{
		Title:          title,
		Description:    description,
		OrganizationID: creator.OrganizationID,
		DueDate:        dueDate,
		CreatedBy:      creator.ID,
	}

	id, err := s.projects.Create(ctx, project)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return s.projects.Get(ctx, id)
}

// GetProject retrieves a project, enforcing that it belongs to the
// requester's organization.
func (s *ProjectService) GetProject(ctx context.Context, orgID *uuid.UUID, projectID uuid.UUID) (*repository.Project, error) {
	project, err := s.projects.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if !sameOrganization(orgID, project.OrganizationID) {
		return nil, fmt.Errorf("access denied to project %s", projectID)
	}

	return project, nil
}

// ListProjects returns the requester's organization projects
func (s *ProjectService) ListProjects(ctx context.Context, orgID *uuid.UUID) ([]repository.Project, error) {
	if orgID == nil {
		return []repository.Project{}, nil
	}
	return s.projects.ListByOrganization(ctx, *orgID)
}

// CreateTask creates a task directly (outside the extraction flow)
func (s *ProjectService) CreateTask(ctx context.Context, creator *repository.User, task repository.Task) (*repository.Task, error) {
	task.AssignedBy = creator.ID

	id, err := s.tasks.Create(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return s.tasks.Get(ctx, id)
}

// ListTasks returns a project's tasks
func (s *ProjectService) ListTasks(ctx context.Context, projectID uuid.UUID) ([]repository.Task, error) {
	return s.tasks.ListByProject(ctx, projectID)
}

// ListOrgUsers returns the user directory for an organization
func (s *ProjectService) ListOrgUsers(ctx context.Context, orgID *uuid.UUID) ([]repository.OrgUser, error) {
	if orgID == nil {
		return []repository.OrgUser{}, nil
	}
	return s.users.ListByOrganization(ctx, *orgID)
}

func sameOrganization(a, b *uuid.UUID) bool {
	return a != nil && b != nil && *a == *b
}
