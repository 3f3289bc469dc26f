package entities

import (
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Meeting represents a meeting owned by a user. EndDate and Duration
// are only ever written together by the transcript update.
type Meeting struct {
	ID           uuid.UUID                   `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID       uuid.UUID                   `json:"userId" gorm:"type:uuid;not null;index"`
	Title        string                      `json:"title" gorm:"type:text;not null"`
	Date         time.Time                   `json:"date" gorm:"type:timestamptz;not null;index"`
	EndDate      *time.Time                  `json:"endDate,omitempty" gorm:"type:timestamptz"`
	Duration     *int                        `json:"duration,omitempty"`
	Participants datatypes.JSONSlice[string] `json:"participants" gorm:"type:jsonb;not null"`
	Transcript   string                      `json:"transcript" gorm:"type:text;not null;default:''"`
	Summary      string                      `json:"summary" gorm:"type:text;not null;default:''"`
	ActionItems  datatypes.JSONSlice[string] `json:"actionItems" gorm:"type:jsonb"`
	CreatedAt    time.Time                   `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt    time.Time                   `json:"updatedAt" gorm:"autoUpdateTime"`
}

// NewMeeting creates a meeting with empty transcript, summary and
// action items. The owner is always the authenticated requester.
func NewMeeting(userID uuid.UUID, title string, date time.Time, participants []string) *Meeting {
	return &Meeting{
		ID:           uuid.New(),
		UserID:       userID,
		Title:        title,
		Date:         date,
		Participants: datatypes.NewJSONSlice(participants),
		ActionItems:  datatypes.NewJSONSlice([]string{}),
	}
}

// ParticipantCount returns the number of participants
func (m *Meeting) ParticipantCount() int {
	return len(m.Participants)
}

// SetTranscript stores the transcript together with the end date and
// the derived duration in whole minutes.
func (m *Meeting) SetTranscript(transcript string, endDate time.Time) {
	duration := DurationMinutes(m.Date, endDate)
	m.Transcript = transcript
	m.EndDate = &endDate
	m.Duration = &duration
}

// DurationMinutes computes a meeting duration in whole minutes,
// rounded to the nearest minute.
func DurationMinutes(start, end time.Time) int {
	return int(math.Round(end.Sub(start).Minutes()))
}
