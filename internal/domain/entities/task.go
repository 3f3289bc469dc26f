package entities

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus represents the workflow state of a task
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// Task represents an action item derived from (or loosely attached to)
// a meeting. MeetingID is a weak reference used for lookup only.
type Task struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID      uuid.UUID  `json:"userId" gorm:"type:uuid;not null;index"`
	MeetingID   *uuid.UUID `json:"meetingId,omitempty" gorm:"type:uuid;index"`
	Title       string     `json:"title" gorm:"type:text;not null"`
	Description string     `json:"description" gorm:"type:text;not null;default:''"`
	Status      TaskStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	DueDate     time.Time  `json:"dueDate" gorm:"type:timestamptz;not null;index"`
	CreatedAt   time.Time  `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updatedAt" gorm:"autoUpdateTime"`
}

// NewGeneratedTask creates a pending task spawned by the summarize
// workflow for the given meeting.
func NewGeneratedTask(meeting *Meeting, title string, dueDate time.Time) *Task {
	meetingID := meeting.ID
	return &Task{
		ID:          uuid.New(),
		UserID:      meeting.UserID,
		MeetingID:   &meetingID,
		Title:       title,
		Description: "Automatically generated task from summary.",
		Status:      TaskStatusPending,
		DueDate:     dueDate,
	}
}
