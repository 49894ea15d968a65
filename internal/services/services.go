package services

import (
	"github.com/sirupsen/logrus"

	"github.com/taskloom/taskloom-backend/internal/llm"
	"github.com/taskloom/taskloom-backend/internal/repository"
)

// Services holds all service instances
type Services struct {
	Distill  *DistillService
	Chat     *ChatService
	Projects *ProjectService
	Hub      *ProjectHub
}

// NewServices creates all service instances
func NewServices(
	logger *logrus.Logger,
	invoker llm.Invoker,
	userRepo repository.UserRepository,
	projectRepo repository.ProjectRepository,
	messageRepo repository.MessageRepository,
	summaryRepo repository.SummaryRepository,
	taskRepo repository.TaskRepository,
) *Services {
	hub := NewProjectHub()

	return &Services{
		Distill:  NewDistillService(messageRepo, userRepo, summaryRepo, taskRepo, invoker, logger),
		Chat:     NewChatService(messageRepo, hub, logger),
		Projects: NewProjectService(projectRepo, taskRepo, userRepo),
		Hub:      hub,
	}
}
