package task

import (
	"context"

	"github.com/google/uuid"

	"github.com/meetingbot-team/meetingbot/internal/domain/entities"
	"github.com/meetingbot-team/meetingbot/internal/domain/repositories"
)

// ListOutput is a paginated page of tasks plus the owner-scoped total
type ListOutput struct {
	Total int64
	Limit int
	Page  int
	Tasks []*entities.Task
}

// Service defines task read operations
type Service interface {
	List(ctx context.Context, userID uuid.UUID, limit, page int) (*ListOutput, error)
}

type service struct {
	taskRepo repositories.TaskRepository
}

// NewService creates a new task service
func NewService(taskRepo repositories.TaskRepository) Service {
	return &service{taskRepo: taskRepo}
}

// List returns the requester's tasks, paginated
func (s *service) List(ctx context.Context, userID uuid.UUID, limit, page int) (*ListOutput, error) {
	if limit <= 0 {
		limit = 10
	}
	if page <= 0 {
		page = 1
	}

	offset := (page - 1) * limit
	tasks, total, err := s.taskRepo.List(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []*entities.Task{}
	}

	return &ListOutput{
		Total: total,
		Limit: limit,
		Page:  page,
		Tasks: tasks,
	}, nil
}
