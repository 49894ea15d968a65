package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/taskloom/taskloom-backend/internal/repository"
)

const messageListLimit = 100

// ChatService handles posting and listing project chat messages and feeds
// the live hub. Messages are immutable once posted.
type ChatService struct {
	messages repository.MessageRepository
	hub      *ProjectHub
	logger   *logrus.Logger
}

// NewChatService creates a new chat service
func NewChatService(messages repository.MessageRepository, hub *ProjectHub, logger *logrus.Logger) *ChatService {
	return &ChatService{
		messages: messages,
		hub:      hub,
		logger:   logger,
	}
}

// PostMessage persists a chat message and broadcasts it to live subscribers.
// The sender's display name is denormalized onto the row so transcripts can
// be built without joining the user table.
func (s *ChatService) PostMessage(ctx context.Context, sender *repository.User, projectID uuid.UUID, content, kind string) (*repository.Message, error) {
	if kind == "" {
		kind = "text"
	}

	msg := repository.Message{
		ProjectID:      projectID,
		OrganizationID: sender.OrganizationID,
		SenderID:       sender.ID,
		SenderName:     sender.Name,
		Content:        content,
		Kind:           kind,
		CreatedAt:      time.Now(),
	}

	id, err := s.messages.Create(ctx, msg)
	if err != nil {
		return nil, fmt.Errorf("failed to save message: %w", err)
	}
	msg.ID = id

	s.hub.Publish(msg)

	return &msg, nil
}

// ListMessages returns the most recent messages for a project in
// chronological order.
func (s *ChatService) ListMessages(ctx context.Context, projectID uuid.UUID) ([]repository.Message, error) {
	messages, err := s.messages.ListByProject(ctx, projectID, messageListLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}
	return messages, nil
}
