package meeting

import (
	"github.com/meetingbot-team/meetingbot/internal/domain/entities"
	"github.com/meetingbot-team/meetingbot/pkg/ai"
)

// ListMeetingsResponse is a paginated page of meetings
type ListMeetingsResponse struct {
	Total int64               `json:"total"`
	Limit int                 `json:"limit"`
	Page  int                 `json:"page"`
	Data  []*entities.Meeting `json:"data"`
}

// MeetingDetailResponse is a meeting plus the tasks referencing it
type MeetingDetailResponse struct {
	Meeting *entities.Meeting `json:"meeting"`
	Tasks   []*entities.Task  `json:"tasks"`
}

// SummarizeResponse is the result of POST /api/meetings/:id/summarize
type SummarizeResponse struct {
	Summary      string           `json:"summary"`
	ActionItems  []ai.ActionItem  `json:"actionItems"`
	CreatedTasks []*entities.Task `json:"createdTasks"`
}
