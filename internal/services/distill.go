package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/taskloom/taskloom-backend/internal/llm"
	"github.com/taskloom/taskloom-backend/internal/repository"
)

// ErrNoTasksProvided is returned when a task export is requested with an
// empty draft list. It is rejected before any persistence attempt.
var ErrNoTasksProvided = errors.New("no tasks provided")

const (
	// defaultWindow is how far back Summarize and GenerateTechSpec look when
	// the caller gives no start time.
	defaultWindow = 24 * time.Hour

	emptyWindowSummary  = "No messages to summarize"
	emptyWindowTechSpec = "No messages found for this period."

	untitledTask = "Untitled task"
)

// ConversationWindow is a bounded, time-ordered slice of one project's chat.
// Messages are all within [Start, End] and ordered by creation time.
type ConversationWindow struct {
	ProjectID uuid.UUID
	Start     time.Time
	End       time.Time
	Messages  []repository.Message
}

// SummarizeResult is what a summarization run returns to the caller for
// review before any tasks are exported.
type SummarizeResult struct {
	Summary        string      `json:"summary"`
	ExtractedTasks []TaskDraft `json:"extracted_tasks"`
	MessageCount   int         `json:"message_count"`
}

// SummaryView is a persisted summary shaped for API responses.
type SummaryView struct {
	ID             uuid.UUID       `json:"id"`
	ProjectID      uuid.UUID       `json:"project_id"`
	Summary        string          `json:"summary"`
	ExtractedTasks json.RawMessage `json:"extracted_tasks"`
	MessageCount   int             `json:"message_count"`
	CreatedAt      time.Time       `json:"created_at"`
}

// DistillService turns a project's chat stream into summaries, task drafts,
// and materialized tasks. Each run is a pure function of its inputs plus one
// external model call; the service holds no mutable state between
// invocations and never writes to the message store or the user directory.
type DistillService struct {
	messages  repository.MessageRepository
	users     repository.UserRepository
	summaries repository.SummaryRepository
	tasks     repository.TaskRepository
	invoker   llm.Invoker
	logger    *logrus.Logger
}

// NewDistillService creates a new distillation service
func NewDistillService(
	messages repository.MessageRepository,
	users repository.UserRepository,
	summaries repository.SummaryRepository,
	tasks repository.TaskRepository,
	invoker llm.Invoker,
	logger *logrus.Logger,
) *DistillService {
	return &DistillService{
		messages:  messages,
		users:     users,
		summaries: summaries,
		tasks:     tasks,
		invoker:   invoker,
		logger:    logger,
	}
}

// selectWindow fetches the ordered messages for a project within
// [start, end], defaulting to the last 24 hours. Authorization is the
// caller's concern; by the time a window is selected the requester has
// already been cleared to view the project.
func (s *DistillService) selectWindow(ctx context.Context, projectID uuid.UUID, start, end *time.Time) (*ConversationWindow, error) {
	now := time.Now()

	windowEnd := now
	if end != nil {
		windowEnd = *end
	}
	windowStart := now.Add(-defaultWindow)
	if start != nil {
		windowStart = *start
	}

	messages, err := s.messages.ListByProjectBetween(ctx, projectID, windowStart, windowEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	return &ConversationWindow{
		ProjectID: projectID,
		Start:     windowStart,
		End:       windowEnd,
		Messages:  messages,
	}, nil
}

// Summarize runs the extraction pipeline over a message window: select,
// format, prompt, invoke, parse, persist. An empty window short-circuits to
// a canned result before the model is ever invoked, and nothing is
// persisted for it. Each successful run appends exactly one summary record;
// overlapping windows produce independent records by design.
func (s *DistillService) Summarize(ctx context.Context, orgID *uuid.UUID, projectID uuid.UUID, start, end *time.Time) (*SummarizeResult, error) {
	window, err := s.selectWindow(ctx, projectID, start, end)
	if err != nil {
		return nil, err
	}

	if len(window.Messages) == 0 {
		return &SummarizeResult{
			Summary:        emptyWindowSummary,
			ExtractedTasks: []TaskDraft{},
			MessageCount:   0,
		}, nil
	}

	transcript := FormatTranscript(window.Messages)

	raw, err := s.invoker.Complete(ctx, buildSummaryPrompt(transcript))
	if err != nil {
		return nil, err
	}

	result := ParseExtraction(raw)

	extracted, err := json.Marshal(result.Tasks)
	if err != nil {
		return nil, fmt.Errorf("failed to encode extracted tasks: %w", err)
	}

	summaryID, err := s.summaries.Create(ctx, repository.ChatSummary{
		ProjectID:      projectID,
		OrganizationID: orgID,
		Summary:        result.Summary,
		ExtractedTasks: extracted,
		MessageCount:   len(window.Messages),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save summary: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"project_id":    projectID,
		"summary_id":    summaryID,
		"message_count": len(window.Messages),
		"task_count":    len(result.Tasks),
	}).Info("chat window summarized")

	return &SummarizeResult{
		Summary:        result.Summary,
		ExtractedTasks: result.Tasks,
		MessageCount:   len(window.Messages),
	}, nil
}

// GenerateTechSpec infers a technical specification document from a message
// window. The model's markdown is returned verbatim, skipping the extraction
// parser, and nothing is persisted.
func (s *DistillService) GenerateTechSpec(ctx context.Context, projectID uuid.UUID, start, end *time.Time) (string, error) {
	window, err := s.selectWindow(ctx, projectID, start, end)
	if err != nil {
		return "", err
	}

	if len(window.Messages) == 0 {
		return emptyWindowTechSpec, nil
	}

	transcript := FormatTranscript(window.Messages)

	spec, err := s.invoker.Complete(ctx, buildTechSpecPrompt(transcript))
	if err != nil {
		return "", err
	}

	s.logger.WithFields(logrus.Fields{
		"project_id":    projectID,
		"message_count": len(window.Messages),
	}).Info("tech spec generated")

	return spec, nil
}

// ExportTasks materializes caller-approved drafts into task records, one per
// draft. Assignee mentions are resolved against the organization directory;
// unmatched mentions leave the task unassigned. Creation is sequential with
// no transaction boundary: a mid-loop persistence failure returns the tasks
// created so far together with the error, never silently dropping the rest.
func (s *DistillService) ExportTasks(ctx context.Context, orgID *uuid.UUID, userID, projectID uuid.UUID, drafts []TaskDraft) ([]repository.Task, error) {
	if len(drafts) == 0 {
		return nil, ErrNoTasksProvided
	}

	var directory []repository.OrgUser
	if orgID != nil {
		var err error
		directory, err = s.users.ListByOrganization(ctx, *orgID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch organization users: %w", err)
		}
	}

	created := make([]repository.Task, 0, len(drafts))
	for i, draft := range drafts {
		task := repository.Task{
			Title:       draft.Title,
			Description: draft.Description,
			ProjectID:   projectID,
			AssignedBy:  userID,
			Status:      repository.TaskStatusPending,
			Priority:    repository.TaskPriorityMedium,
		}
		if task.Title == "" {
			task.Title = untitledTask
		}
		if id, ok := ResolveAssignee(draft.AssignedTo, directory); ok {
			assignee := id
			task.AssignedTo = &assignee
		}

		taskID, err := s.tasks.Create(ctx, task)
		if err != nil {
			return created, fmt.Errorf("failed to create task %d of %d: %w", i+1, len(drafts), err)
		}

		saved, err := s.tasks.Get(ctx, taskID)
		if err != nil {
			return created, fmt.Errorf("failed to load created task %s: %w", taskID, err)
		}
		created = append(created, *saved)
	}

	s.logger.WithFields(logrus.Fields{
		"project_id": projectID,
		"task_count": len(created),
	}).Info("task drafts exported")

	return created, nil
}

// ListSummaries returns the most recent persisted summaries for a project.
func (s *DistillService) ListSummaries(ctx context.Context, projectID uuid.UUID, limit int) ([]SummaryView, error) {
	rows, err := s.summaries.ListByProject(ctx, projectID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch summaries: %w", err)
	}

	views := make([]SummaryView, len(rows))
	for i, row := range rows {
		tasks := json.RawMessage(row.ExtractedTasks)
		if len(tasks) == 0 {
			tasks = json.RawMessage("[]")
		}
		views[i] = SummaryView{
			ID:             row.ID,
			ProjectID:      row.ProjectID,
			Summary:        row.Summary,
			ExtractedTasks: tasks,
			MessageCount:   row.MessageCount,
			CreatedAt:      row.CreatedAt,
		}
	}

	return views, nil
}
