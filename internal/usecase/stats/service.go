package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/meetingbot-team/meetingbot/errors"
	"github.com/meetingbot-team/meetingbot/internal/domain/entities"
	"github.com/meetingbot-team/meetingbot/internal/domain/repositories"
	"github.com/meetingbot-team/meetingbot/internal/infrastructure/cache"
)

const (
	meetingStatsKeyPrefix   = "meetingStats:"
	dashboardStatsKeyPrefix = "dashboardStats:"

	topParticipantsLimit  = 5
	upcomingMeetingsLimit = 5
)

// Service computes per-user statistics snapshots under a read-through
// cache. Snapshots are cached fully serialized, so a cache hit bypasses
// all aggregation including the zero-fill steps.
type Service interface {
	// MeetingStats returns the general/top-participant/weekday snapshot
	MeetingStats(ctx context.Context, userID uuid.UUID) (json.RawMessage, error)

	// DashboardStats returns the totals/upcoming/overdue rollup
	DashboardStats(ctx context.Context, userID uuid.UUID) (json.RawMessage, error)
}

type service struct {
	meetingRepo  repositories.MeetingRepository
	taskRepo     repositories.TaskRepository
	store        cache.Store
	logger       *zap.Logger
	meetingTTL   time.Duration
	dashboardTTL time.Duration
	now          func() time.Time
}

// NewService creates a new statistics service
func NewService(
	meetingRepo repositories.MeetingRepository,
	taskRepo repositories.TaskRepository,
	store cache.Store,
	logger *zap.Logger,
	meetingTTL, dashboardTTL time.Duration,
) Service {
	return &service{
		meetingRepo:  meetingRepo,
		taskRepo:     taskRepo,
		store:        store,
		logger:       logger,
		meetingTTL:   meetingTTL,
		dashboardTTL: dashboardTTL,
		now:          time.Now,
	}
}

// MeetingStats assembles three facets over the user's meetings:
// general stats (completed meetings only), top participants and the
// per-weekday histogram (all meetings).
func (s *service) MeetingStats(ctx context.Context, userID uuid.UUID) (json.RawMessage, error) {
	key := meetingStatsKeyPrefix + userID.String()
	if raw, ok := s.store.Get(ctx, key); ok {
		return json.RawMessage(raw), nil
	}

	general, err := s.meetingRepo.GeneralStats(ctx, userID)
	if err != nil {
		return nil, apperrors.ErrInternal(err)
	}

	top, err := s.meetingRepo.TopParticipants(ctx, userID, topParticipantsLimit)
	if err != nil {
		return nil, apperrors.ErrInternal(err)
	}
	if top == nil {
		top = []entities.ParticipantCount{}
	}

	byWeekday, err := s.meetingRepo.CountByWeekday(ctx, userID)
	if err != nil {
		return nil, apperrors.ErrInternal(err)
	}

	snapshot := entities.MeetingStats{
		GeneralStats: entities.GeneralStats{
			TotalMeetings:       general.TotalMeetings,
			AverageParticipants: round2(general.AverageParticipants),
			TotalParticipants:   general.TotalParticipants,
			ShortestMeeting:     general.ShortestMeeting,
			LongestMeeting:      general.LongestMeeting,
			AverageDuration:     round2(general.AverageDuration),
		},
		TopParticipants:     top,
		MeetingsByDayOfWeek: fillWeekdays(byWeekday),
	}

	return s.cacheSnapshot(ctx, key, snapshot, s.meetingTTL)
}

// DashboardStats assembles the dashboard rollup. The four independent
// reads carry no ordering dependency and are issued concurrently.
func (s *service) DashboardStats(ctx context.Context, userID uuid.UUID) (json.RawMessage, error) {
	key := dashboardStatsKeyPrefix + userID.String()
	if raw, ok := s.store.Get(ctx, key); ok {
		return json.RawMessage(raw), nil
	}

	now := s.now()

	var (
		totalMeetings int64
		statusCounts  map[entities.TaskStatus]int64
		upcoming      []*entities.Meeting
		overdue       []entities.OverdueTask
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		totalMeetings, err = s.meetingRepo.CountByUser(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		statusCounts, err = s.taskRepo.CountByStatus(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		upcoming, err = s.meetingRepo.FindUpcoming(gctx, userID, now, upcomingMeetingsLimit)
		return err
	})
	g.Go(func() error {
		var err error
		overdue, err = s.taskRepo.FindOverdue(gctx, userID, now)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, apperrors.ErrInternal(err)
	}

	upcomingViews := make([]entities.UpcomingMeeting, 0, len(upcoming))
	for _, m := range upcoming {
		upcomingViews = append(upcomingViews, entities.UpcomingMeeting{
			ID:               m.ID,
			Title:            m.Title,
			Date:             m.Date,
			ParticipantCount: m.ParticipantCount(),
		})
	}
	if overdue == nil {
		overdue = []entities.OverdueTask{}
	}

	snapshot := entities.Dashboard{
		TotalMeetings: totalMeetings,
		TaskSummary: entities.TaskSummary{
			Pending:    statusCounts[entities.TaskStatusPending],
			InProgress: statusCounts[entities.TaskStatusInProgress],
			Completed:  statusCounts[entities.TaskStatusCompleted],
		},
		UpcomingMeetings: upcomingViews,
		OverdueTasks:     overdue,
	}

	return s.cacheSnapshot(ctx, key, snapshot, s.dashboardTTL)
}

// cacheSnapshot marshals a snapshot once, caches the serialized form
// and returns the same bytes.
func (s *service) cacheSnapshot(ctx context.Context, key string, snapshot interface{}, ttl time.Duration) (json.RawMessage, error) {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return nil, apperrors.ErrInternal(fmt.Errorf("failed to marshal snapshot: %w", err))
	}

	s.store.Set(ctx, key, string(payload), ttl)
	return payload, nil
}

// fillWeekdays produces exactly one bucket per ISO weekday 1..7,
// zero-filled for days without meetings, ordered Monday first.
func fillWeekdays(counts map[int]int64) []entities.WeekdayCount {
	result := make([]entities.WeekdayCount, 0, 7)
	for day := 1; day <= 7; day++ {
		result = append(result, entities.WeekdayCount{
			DayOfWeek: day,
			Count:     counts[day],
		})
	}
	return result
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
