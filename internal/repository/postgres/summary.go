package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/taskloom/taskloom-backend/internal/repository"
)

// SummaryRepository implements repository.SummaryRepository using PostgreSQL
type SummaryRepository struct {
	db *sqlx.DB
}

// NewSummaryRepository creates a new PostgreSQL chat summary repository
func NewSummaryRepository(db *sqlx.DB) repository.SummaryRepository {
	return &SummaryRepository{db: db}
}

// Create inserts a new chat summary row. Summaries are append-only history;
// there is no update path.
func (r *SummaryRepository) Create(ctx context.Context, summary repository.ChatSummary) (uuid.UUID, error) {
	summary.ID = uuid.New()
	summary.CreatedAt = time.Now()

	if len(summary.ExtractedTasks) == 0 {
		summary.ExtractedTasks = []byte("[]")
	}

	query := `
		INSERT INTO chat_summaries (id, project_id, organization_id, summary, extracted_tasks, message_count, created_at)
		VALUES (:id, :project_id, :organization_id, :summary, :extracted_tasks, :message_count, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, summary)
	if err != nil {
		return uuid.Nil, err
	}

	return summary.ID, nil
}

// ListByProject retrieves the most recent summaries for a project
func (r *SummaryRepository) ListByProject(ctx context.Context, projectID uuid.UUID, limit int) ([]repository.ChatSummary, error) {
	var summaries []repository.ChatSummary
	query := `
		SELECT id, project_id, organization_id, summary, extracted_tasks, message_count, created_at
		FROM chat_summaries
		WHERE project_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	err := r.db.SelectContext(ctx, &summaries, query, projectID, limit)
	if err != nil {
		return nil, err
	}

	return summaries, nil
}
