package meeting

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/meetingbot-team/meetingbot/errors"
	"github.com/meetingbot-team/meetingbot/internal/domain/entities"
	"github.com/meetingbot-team/meetingbot/internal/domain/repositories"
	"github.com/meetingbot-team/meetingbot/internal/infrastructure/storage"
	"github.com/meetingbot-team/meetingbot/pkg/ai"
)

// CreateInput carries the fields of a meeting creation request
type CreateInput struct {
	Title        string
	Date         time.Time
	Participants []string
}

// UpdateTranscriptInput carries the fields of a transcript update
type UpdateTranscriptInput struct {
	Transcript string
	EndDate    time.Time
}

// ListOutput is a paginated page of meetings plus the owner-scoped total
type ListOutput struct {
	Total    int64
	Limit    int
	Page     int
	Meetings []*entities.Meeting
}

// DetailOutput is a meeting together with the tasks referencing it
type DetailOutput struct {
	Meeting *entities.Meeting
	Tasks   []*entities.Task
}

// SummarizeOutput is the result of the summarize workflow
type SummarizeOutput struct {
	Summary      string
	ActionItems  []ai.ActionItem
	CreatedTasks []*entities.Task
}

// Service defines the meeting lifecycle operations
type Service interface {
	List(ctx context.Context, userID uuid.UUID, limit, page int) (*ListOutput, error)
	Create(ctx context.Context, userID uuid.UUID, input CreateInput) (*entities.Meeting, error)
	GetByID(ctx context.Context, userID, meetingID uuid.UUID) (*DetailOutput, error)
	UpdateTranscript(ctx context.Context, userID, meetingID uuid.UUID, input UpdateTranscriptInput) (*entities.Meeting, error)
	Summarize(ctx context.Context, userID, meetingID uuid.UUID) (*SummarizeOutput, error)
}

type service struct {
	meetingRepo repositories.MeetingRepository
	taskRepo    repositories.TaskRepository
	summarizer  ai.Summarizer
	archive     *storage.TranscriptArchive
	logger      *zap.Logger
}

// NewService creates a new meeting lifecycle service. The transcript
// archive may be nil when archiving is disabled.
func NewService(
	meetingRepo repositories.MeetingRepository,
	taskRepo repositories.TaskRepository,
	summarizer ai.Summarizer,
	archive *storage.TranscriptArchive,
	logger *zap.Logger,
) Service {
	return &service{
		meetingRepo: meetingRepo,
		taskRepo:    taskRepo,
		summarizer:  summarizer,
		archive:     archive,
		logger:      logger,
	}
}

// List returns the requester's meetings, paginated
func (s *service) List(ctx context.Context, userID uuid.UUID, limit, page int) (*ListOutput, error) {
	if limit <= 0 {
		limit = 10
	}
	if page <= 0 {
		page = 1
	}

	offset := (page - 1) * limit
	meetings, total, err := s.meetingRepo.List(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	if meetings == nil {
		meetings = []*entities.Meeting{}
	}

	return &ListOutput{
		Total:    total,
		Limit:    limit,
		Page:     page,
		Meetings: meetings,
	}, nil
}

// Create persists a new meeting owned by the requester
func (s *service) Create(ctx context.Context, userID uuid.UUID, input CreateInput) (*entities.Meeting, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, apperrors.ErrValidation(`"title" cannot be an empty field`)
	}
	if input.Date.IsZero() {
		return nil, apperrors.ErrValidation(`"date" is a required field`)
	}
	if len(input.Participants) == 0 {
		return nil, apperrors.ErrValidation(`"participants" must contain at least one participant`)
	}
	for _, p := range input.Participants {
		if strings.TrimSpace(p) == "" {
			return nil, apperrors.ErrValidation(`"participants" should contain only non-empty text`)
		}
	}

	meeting := entities.NewMeeting(userID, input.Title, input.Date, input.Participants)
	if err := s.meetingRepo.Create(ctx, meeting); err != nil {
		return nil, err
	}

	s.logger.Info("Meeting created successfully",
		zap.String("meeting_id", meeting.ID.String()),
		zap.String("user_id", userID.String()))

	return meeting, nil
}

// GetByID fetches a meeting scoped by id and owner, together with the
// tasks referencing it. A cross-owner id yields the same NotFound as a
// missing one.
func (s *service) GetByID(ctx context.Context, userID, meetingID uuid.UUID) (*DetailOutput, error) {
	meeting, err := s.meetingRepo.FindByID(ctx, meetingID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrNotFound("Meeting")
		}
		return nil, err
	}

	tasks, err := s.taskRepo.FindByMeetingID(ctx, meeting.ID)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []*entities.Task{}
	}

	return &DetailOutput{
		Meeting: meeting,
		Tasks:   tasks,
	}, nil
}

// UpdateTranscript stores the transcript, end date and derived
// duration as one logical update.
func (s *service) UpdateTranscript(ctx context.Context, userID, meetingID uuid.UUID, input UpdateTranscriptInput) (*entities.Meeting, error) {
	if strings.TrimSpace(input.Transcript) == "" {
		return nil, apperrors.ErrValidation(`"transcript" cannot be an empty field`)
	}
	if input.EndDate.IsZero() {
		return nil, apperrors.ErrValidation(`"endDate" is a required field`)
	}

	meeting, err := s.meetingRepo.FindByID(ctx, meetingID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrNotFound("Meeting")
		}
		return nil, err
	}

	if input.EndDate.Before(meeting.Date) {
		return nil, apperrors.ErrValidation("end date cannot be before start date")
	}

	meeting.SetTranscript(input.Transcript, input.EndDate)
	if err := s.meetingRepo.UpdateTranscript(ctx, meeting); err != nil {
		return nil, err
	}

	if s.archive != nil {
		if err := s.archive.Put(ctx, meeting.ID, meeting.Transcript); err != nil {
			s.logger.Warn("transcript archive failed",
				zap.String("meeting_id", meeting.ID.String()),
				zap.Error(err))
		}
	}

	s.logger.Info("Transcript updated",
		zap.String("meeting_id", meeting.ID.String()),
		zap.String("user_id", userID.String()))

	return meeting, nil
}

// Summarize generates a summary for the meeting and spawns one pending
// task per action item. The meeting update and the task bulk-insert
// are two independent writes; a failure between them leaves the
// meeting summarized without its tasks.
func (s *service) Summarize(ctx context.Context, userID, meetingID uuid.UUID) (*SummarizeOutput, error) {
	meeting, err := s.meetingRepo.FindByID(ctx, meetingID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrNotFound("Meeting")
		}
		return nil, err
	}

	if meeting.Transcript == "" {
		return nil, apperrors.ErrValidation("Transcript is required to generate summary")
	}

	result, err := s.summarizer.Summarize(ctx, meeting.Title, meeting.Transcript)
	if err != nil {
		return nil, apperrors.ErrSummaryFailed(err)
	}

	if err := s.meetingRepo.UpdateSummary(ctx, meeting.ID, result.Summary); err != nil {
		return nil, err
	}

	tasks := make([]*entities.Task, 0, len(result.ActionItems))
	for _, item := range result.ActionItems {
		tasks = append(tasks, entities.NewGeneratedTask(meeting, item.Title, item.DueDate))
	}
	if err := s.taskRepo.CreateBatch(ctx, tasks); err != nil {
		return nil, err
	}

	s.logger.Info("Summarized meeting",
		zap.String("meeting_id", meeting.ID.String()),
		zap.String("user_id", userID.String()),
		zap.Int("created_tasks", len(tasks)))

	return &SummarizeOutput{
		Summary:      result.Summary,
		ActionItems:  result.ActionItems,
		CreatedTasks: tasks,
	}, nil
}
