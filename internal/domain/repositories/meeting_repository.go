package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/meetingbot-team/meetingbot/internal/domain/entities"
)

// GeneralStatsRow is the raw aggregate over meetings having both an
// end date and a duration. Averages are unrounded here; the statistics
// engine rounds before assembling the snapshot.
type GeneralStatsRow struct {
	TotalMeetings       int64
	AverageParticipants float64
	TotalParticipants   int64
	ShortestMeeting     int
	LongestMeeting      int
	AverageDuration     float64
}

// MeetingRepository defines the interface for meeting data access.
// Every method is scoped to the owning user.
type MeetingRepository interface {
	// Create persists a new meeting
	Create(ctx context.Context, meeting *entities.Meeting) error

	// FindByID retrieves a meeting by id and owner
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entities.Meeting, error)

	// List retrieves a user's meetings with pagination plus the total count
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Meeting, int64, error)

	// UpdateTranscript stores transcript, end date and duration as one update
	UpdateTranscript(ctx context.Context, meeting *entities.Meeting) error

	// UpdateSummary stores the generated summary on the meeting
	UpdateSummary(ctx context.Context, id uuid.UUID, summary string) error

	// CountByUser counts all meetings of a user
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// GeneralStats aggregates meetings having both end date and duration
	GeneralStats(ctx context.Context, userID uuid.UUID) (*GeneralStatsRow, error)

	// TopParticipants ranks participants by meeting appearances across all meetings
	TopParticipants(ctx context.Context, userID uuid.UUID, limit int) ([]entities.ParticipantCount, error)

	// CountByWeekday counts all meetings per ISO day of week; absent days are omitted
	CountByWeekday(ctx context.Context, userID uuid.UUID) (map[int]int64, error)

	// FindUpcoming retrieves meetings with date >= from, soonest first
	FindUpcoming(ctx context.Context, userID uuid.UUID, from time.Time, limit int) ([]*entities.Meeting, error)
}
