package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Organization represents a company or team workspace
type Organization struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	Name      string     `db:"name" json:"name"`
	CreatedBy *uuid.UUID `db:"created_by" json:"created_by,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
}

// User represents an account within an organization
type User struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	Email          string     `db:"email" json:"email"`
	PasswordHash   string     `db:"password_hash" json:"-"`
	Name           string     `db:"name" json:"name"`
	OrganizationID *uuid.UUID `db:"organization_id" json:"organization_id,omitempty"`
	Role           string     `db:"role" json:"role"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
}

// OrgUser is the directory view used for assignee resolution
type OrgUser struct {
	ID    uuid.UUID `db:"id" json:"id"`
	Name  string    `db:"name" json:"name"`
	Email string    `db:"email" json:"email"`
}

// Project represents a unit of work shared by an organization
type Project struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	Title          string     `db:"title" json:"title"`
	Description    string     `db:"description" json:"description"`
	OrganizationID *uuid.UUID `db:"organization_id" json:"organization_id,omitempty"`
	Status         string     `db:"status" json:"status"`
	DueDate        *time.Time `db:"due_date" json:"due_date,omitempty"`
	CreatedBy      uuid.UUID  `db:"created_by" json:"created_by"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
}

// Message represents one chat message in a project. Rows are immutable once
// written; ordering key is created_at ascending.
type Message struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	ProjectID      uuid.UUID  `db:"project_id" json:"project_id"`
	OrganizationID *uuid.UUID `db:"organization_id" json:"organization_id,omitempty"`
	SenderID       uuid.UUID  `db:"sender_id" json:"sender_id"`
	SenderName     string     `db:"sender_name" json:"sender_name"`
	Content        string     `db:"content" json:"content"`
	Kind           string     `db:"kind" json:"kind"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
}

// ChatSummary is one distillation of a message window. Append-only: summaries
// are never updated or merged, repeated runs over the same window simply add
// another row.
type ChatSummary struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	ProjectID      uuid.UUID  `db:"project_id" json:"project_id"`
	OrganizationID *uuid.UUID `db:"organization_id" json:"organization_id,omitempty"`
	Summary        string     `db:"summary" json:"summary"`
	ExtractedTasks []byte     `db:"extracted_tasks" json:"-"`
	MessageCount   int        `db:"message_count" json:"message_count"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
}

// Task represents a materialized, assignable unit of work
type Task struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	Title       string     `db:"title" json:"title"`
	Description string     `db:"description" json:"description"`
	ProjectID   uuid.UUID  `db:"project_id" json:"project_id"`
	AssignedTo  *uuid.UUID `db:"assigned_to" json:"assigned_to,omitempty"`
	AssignedBy  uuid.UUID  `db:"assigned_by" json:"assigned_by"`
	Status      string     `db:"status" json:"status"`
	Priority    string     `db:"priority" json:"priority"`
	DueDate     *time.Time `db:"due_date" json:"due_date,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
}

// Task status values
const (
	TaskStatusPending    = "Pending"
	TaskStatusInProgress = "In Progress"
	TaskStatusCompleted  = "Completed"
)

// Task priority values
const (
	TaskPriorityLow    = "Low"
	TaskPriorityMedium = "Medium"
	TaskPriorityHigh   = "High"
)

// OrganizationRepository defines organization storage operations
type OrganizationRepository interface {
	Create(ctx context.Context, org Organization) (uuid.UUID, error)
	Get(ctx context.Context, id uuid.UUID) (*Organization, error)
	SetCreator(ctx context.Context, id, userID uuid.UUID) error
}

// UserRepository defines user storage operations
type UserRepository interface {
	Create(ctx context.Context, user User) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]OrgUser, error)
}

// ProjectRepository defines project storage operations
type ProjectRepository interface {
	Create(ctx context.Context, project Project) (uuid.UUID, error)
	Get(ctx context.Context, id uuid.UUID) (*Project, error)
	ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]Project, error)
}

// MessageRepository defines chat message storage operations. The distillation
// pipeline only reads from it.
type MessageRepository interface {
	Create(ctx context.Context, message Message) (uuid.UUID, error)
	ListByProject(ctx context.Context, projectID uuid.UUID, limit int) ([]Message, error)
	ListByProjectBetween(ctx context.Context, projectID uuid.UUID, start, end time.Time) ([]Message, error)
}

// SummaryRepository defines chat summary storage operations
type SummaryRepository interface {
	Create(ctx context.Context, summary ChatSummary) (uuid.UUID, error)
	ListByProject(ctx context.Context, projectID uuid.UUID, limit int) ([]ChatSummary, error)
}

// TaskRepository defines task storage operations
type TaskRepository interface {
	Create(ctx context.Context, task Task) (uuid.UUID, error)
	Get(ctx context.Context, id uuid.UUID) (*Task, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]Task, error)
}
