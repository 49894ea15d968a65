package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/taskloom/taskloom-backend/internal/repository"
)

// MessageRepository implements repository.MessageRepository using PostgreSQL
type MessageRepository struct {
	db *sqlx.DB
}

// NewMessageRepository creates a new PostgreSQL message repository
func NewMessageRepository(db *sqlx.DB) repository.MessageRepository {
	return &MessageRepository{db: db}
}

// Create creates a new message
func (r *MessageRepository) Create(ctx context.Context, message repository.Message) (uuid.UUID, error) {
	message.ID = uuid.New()
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}

	if message.Kind == "" {
		message.Kind = "text"
	}

	query := `
		INSERT INTO messages (id, project_id, organization_id, sender_id, sender_name, content, kind, created_at)
		VALUES (:id, :project_id, :organization_id, :sender_id, :sender_name, :content, :kind, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, message)
	if err != nil {
		return uuid.Nil, err
	}

	return message.ID, nil
}

// ListByProject retrieves the most recent messages for a project in
// chronological order
func (r *MessageRepository) ListByProject(ctx context.Context, projectID uuid.UUID, limit int) ([]repository.Message, error) {
	var messages []repository.Message
	query := `
		SELECT id, project_id, organization_id, sender_id, sender_name, content, kind, created_at
		FROM (
			SELECT id, project_id, organization_id, sender_id, sender_name, content, kind, created_at
			FROM messages
			WHERE project_id = $1
			ORDER BY created_at DESC
			LIMIT $2
		) recent
		ORDER BY created_at ASC
	`

	err := r.db.SelectContext(ctx, &messages, query, projectID, limit)
	if err != nil {
		return nil, err
	}

	return messages, nil
}

// ListByProjectBetween retrieves messages within [start, end], both bounds
// inclusive, ordered ascending by creation time
func (r *MessageRepository) ListByProjectBetween(ctx context.Context, projectID uuid.UUID, start, end time.Time) ([]repository.Message, error) {
	var messages []repository.Message
	query := `
		SELECT id, project_id, organization_id, sender_id, sender_name, content, kind, created_at
		FROM messages
		WHERE project_id = $1 AND created_at >= $2 AND created_at <= $3
		ORDER BY created_at ASC
	`

	err := r.db.SelectContext(ctx, &messages, query, projectID, start, end)
	if err != nil {
		return nil, err
	}

	return messages, nil
}
