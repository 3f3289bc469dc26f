package task

import (
	"github.com/meetingbot-team/meetingbot/internal/domain/entities"
)

// ListTasksResponse is a paginated page of tasks
type ListTasksResponse struct {
	Total int64            `json:"total"`
	Limit int              `json:"limit"`
	Page  int              `json:"page"`
	Data  []*entities.Task `json:"data"`
}
