package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/taskloom/taskloom-backend/internal/repository"
)

// ProjectRepository implements repository.ProjectRepository using PostgreSQL
type ProjectRepository struct {
	db *sqlx.DB
}

// NewProjectRepository creates a new PostgreSQL project repository
func NewProjectRepository(db *sqlx.DB) repository.ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create creates a new project
func (r *ProjectRepository) Create(ctx context.Context, project repository.Project) (uuid.UUID, error) {
	project.ID = uuid.New()
	project.CreatedAt = time.Now()

	if project.Status == "" {
		project.Status = "Upcoming"
	}

	query := `
		INSERT INTO projects (id, title, description, organization_id, status, due_date, created_by, created_at)
		VALUES (:id, :title, :description, :organization_id, :status, :due_date, :created_by, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, project)
	if err != nil {
		return uuid.Nil, err
	}

	return project.ID, nil
}

// Get retrieves a project by ID
func (r *ProjectRepository) Get(ctx context.Context, id uuid.UUID) (*repository.Project, error) {
	var project repository.Project
	query := `
		SELECT id, title, description, organization_id, status, due_date, created_by, created_at
		FROM projects
		WHERE id = $1
	`

	err := r.db.GetContext(ctx, &project, query, id)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("project not found: %s", id)
	}
	if err != nil {
		return nil, err
	}

	return &project, nil
}

// ListByOrganization retrieves projects for an organization, newest first
func (r *ProjectRepository) ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]repository.Project, error) {
	var projects []repository.Project
	query := `
		SELECT id, title, description, organization_id, status, due_date, created_by, created_at
		FROM projects
		WHERE organization_id = $1
		ORDER BY created_at DESC
	`

	err := r.db.SelectContext(ctx, &projects, query, orgID)
	if err != nil {
		return nil, err
	}

	return projects, nil
}
