package entities

import (
	"time"

	"github.com/google/uuid"
)

// TaskSummary counts tasks per status, zero-filled for absent statuses
type TaskSummary struct {
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"in-progress"`
	Completed  int64 `json:"completed"`
}

// UpcomingMeeting is a reduced meeting view for the dashboard
type UpcomingMeeting struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	Date             time.Time `json:"date"`
	ParticipantCount int       `json:"participantCount"`
}

// OverdueTask is a non-completed task past its due date, enriched with
// the owning meeting's title (empty when the reference is unresolvable).
type OverdueTask struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	DueDate      time.Time `json:"dueDate"`
	MeetingID    string    `json:"meetingId"`
	MeetingTitle string    `json:"meetingTitle"`
}

// Dashboard is the cached per-user dashboard snapshot
type Dashboard struct {
	TotalMeetings    int64             `json:"totalMeetings"`
	TaskSummary      TaskSummary       `json:"taskSummary"`
	UpcomingMeetings []UpcomingMeeting `json:"upcomingMeetings"`
	OverdueTasks     []OverdueTask     `json:"overdueTasks"`
}
