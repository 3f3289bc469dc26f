package meeting

import "time"

// CreateMeetingRequest is the body of POST /api/meetings
type CreateMeetingRequest struct {
	Title        string    `json:"title" validate:"required,min=1"`
	Date         time.Time `json:"date" validate:"required"`
	Participants []string  `json:"participants" validate:"required,min=1,dive,min=1"`
}

// UpdateTranscriptRequest is the body of PUT /api/meetings/:id/transcript
type UpdateTranscriptRequest struct {
	Transcript string    `json:"transcript" validate:"required,min=1"`
	EndDate    time.Time `json:"endDate" validate:"required"`
}

// ListMeetingsRequest carries the pagination query parameters
type ListMeetingsRequest struct {
	Limit int `query:"limit"`
	Page  int `query:"page"`
}
