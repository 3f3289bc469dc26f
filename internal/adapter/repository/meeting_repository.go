package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/meetingbot-team/meetingbot/internal/domain/entities"
	"github.com/meetingbot-team/meetingbot/internal/domain/repositories"
)

// meetingRepository implements the MeetingRepository interface
type meetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) repositories.MeetingRepository {
	return &meetingRepository{db: db}
}

// Create persists a new meeting
func (r *meetingRepository) Create(ctx context.Context, meeting *entities.Meeting) error {
	return r.db.WithContext(ctx).Create(meeting).Error
}

// FindByID retrieves a meeting by id and owner
func (r *meetingRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entities.Meeting, error) {
	var meeting entities.Meeting
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&meeting).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &meeting, nil
}

// List retrieves a user's meetings with pagination plus the total count
func (r *meetingRepository) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Meeting, int64, error) {
	var meetings []*entities.Meeting
	var total int64

	query := r.db.WithContext(ctx).Model(&entities.Meeting{}).Where("user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("date ASC").
		Limit(limit).
		Offset(offset).
		Find(&meetings).Error
	return meetings, total, err
}

// UpdateTranscript stores transcript, end date and duration as one update
func (r *meetingRepository) UpdateTranscript(ctx context.Context, meeting *entities.Meeting) error {
	return r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Where("id = ? AND user_id = ?", meeting.ID, meeting.UserID).
		Updates(map[string]interface{}{
			"transcript": meeting.Transcript,
			"end_date":   meeting.EndDate,
			"duration":   meeting.Duration,
		}).
		Error
}

// UpdateSummary stores the generated summary on the meeting
func (r *meetingRepository) UpdateSummary(ctx context.Context, id uuid.UUID, summary string) error {
	return r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Where("id = ?", id).
		Update("summary", summary).
		Error
}

// CountByUser counts all meetings of a user
func (r *meetingRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	return total, err
}

// GeneralStats aggregates meetings having both end date and duration
func (r *meetingRepository) GeneralStats(ctx context.Context, userID uuid.UUID) (*repositories.GeneralStatsRow, error) {
	var row repositories.GeneralStatsRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)                                          AS total_meetings,
		       COALESCE(AVG(jsonb_array_length(participants)), 0) AS average_participants,
		       COALESCE(SUM(jsonb_array_length(participants)), 0) AS total_participants,
		       COALESCE(MIN(duration), 0)                         AS shortest_meeting,
		       COALESCE(MAX(duration), 0)                         AS longest_meeting,
		       COALESCE(AVG(duration), 0)                         AS average_duration
		FROM meetings
		WHERE user_id = ? AND end_date IS NOT NULL AND duration IS NOT NULL`,
		userID).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// TopParticipants ranks participants by meeting appearances across all meetings
func (r *meetingRepository) TopParticipants(ctx context.Context, userID uuid.UUID, limit int) ([]entities.ParticipantCount, error) {
	var rows []entities.ParticipantCount
	err := r.db.WithContext(ctx).Raw(`
		SELECT p                AS participant,
		       COUNT(*)         AS meeting_count
		FROM meetings, jsonb_array_elements_text(participants) AS p
		WHERE user_id = ?
		GROUP BY p
		ORDER BY meeting_count DESC, participant ASC
		LIMIT ?`,
		userID, limit).
		Scan(&rows).Error
	return rows, err
}

// CountByWeekday counts all meetings per ISO day of week (1=Monday..7=Sunday)
func (r *meetingRepository) CountByWeekday(ctx context.Context, userID uuid.UUID) (map[int]int64, error) {
	var rows []entities.WeekdayCount
	err := r.db.WithContext(ctx).Raw(`
		SELECT EXTRACT(ISODOW FROM date)::int AS day_of_week,
		       COUNT(*)                       AS count
		FROM meetings
		WHERE user_id = ?
		GROUP BY day_of_week`,
		userID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[int]int64, len(rows))
	for _, row := range rows {
		counts[row.DayOfWeek] = row.Count
	}
	return counts, nil
}

// FindUpcoming retrieves meetings with date >= from, soonest first
func (r *meetingRepository) FindUpcoming(ctx context.Context, userID uuid.UUID, from time.Time, limit int) ([]*entities.Meeting, error) {
	var meetings []*entities.Meeting
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, from).
		Order("date ASC").
		Limit(limit).
		Find(&meetings).Error
	return meetings, err
}
