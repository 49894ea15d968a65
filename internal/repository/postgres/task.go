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

// TaskRepository implements repository.TaskRepository using PostgreSQL
type TaskRepository struct {
	db *sqlx.DB
}

// NewTaskRepository creates a new PostgreSQL task repository
func NewTaskRepository(db *sqlx.DB) repository.TaskRepository {
	return &TaskRepository{db: db}
}

// Create creates a new task
func (r *TaskRepository) Create(ctx context.Context, task repository.Task) (uuid.UUID, error) {
	task.ID = uuid.New()
	task.CreatedAt = time.Now()

	if task.Status == "" {
		task.Status = repository.TaskStatusPending
	}
	if task.Priority == "" {
		task.Priority = repository.TaskPriorityMedium
	}

	query := `
		INSERT INTO tasks (id, title, description, project_id, assigned_to, assigned_by, status, priority, due_date, created_at)
		VALUES (:id, :title, :description, :project_id, :assigned_to, :assigned_by, :status, :priority, :due_date, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, task)
	if err != nil {
		return uuid.Nil, err
	}

	return task.ID, nil
}

// Get retrieves a task by ID
func (r *TaskRepository) Get(ctx context.Context, id uuid.UUID) (*repository.Task, error) {
	var task repository.Task
	query := `
		SELECT id, title, description, project_id, assigned_to, assigned_by, status, priority, due_date, created_at
		FROM tasks
		WHERE id = $1
	`

	err := r.db.GetContext(ctx, &task, query, id)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("task not found: %s", id)
	}
	if err != nil {
		return nil, err
	}

	return &task, nil
}

// ListByProject retrieves tasks for a project, newest first
func (r *TaskRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]repository.Task, error) {
	var tasks []repository.Task
	query := `
		SELECT id, title, description, project_id, assigned_to, assigned_by, status, priority, due_date, created_at
		FROM tasks
		WHERE project_id = $1
		ORDER BY created_at DESC
	`

	err := r.db.SelectContext(ctx, &tasks, query, projectID)
	if err != nil {
		return nil, err
	}

	return tasks, nil
}
