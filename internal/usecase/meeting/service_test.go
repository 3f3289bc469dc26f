package meeting

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/meetingbot-team/meetingbot/errors"
	"github.com/meetingbot-team/meetingbot/internal/domain/entities"
	"github.com/meetingbot-team/meetingbot/internal/domain/repositories"
	"github.com/meetingbot-team/meetingbot/pkg/ai"
)

type fakeMeetingRepo struct {
	meetings          []*entities.Meeting
	transcriptUpdates int
	summaryUpdates    int
}

func (f *fakeMeetingRepo) Create(ctx context.Context, meeting *entities.Meeting) error {
	f.meetings = append(f.meetings, meeting)
	return nil
}

func (f *fakeMeetingRepo) FindByID(ctx context.Context, id, userID uuid.UUID) (*entities.Meeting, error) {
	for _, m := range f.meetings {
		if m.ID == id && m.UserID == userID {
			copied := *m
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeMeetingRepo) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Meeting, int64, error) {
	var owned []*entities.Meeting
	for _, m := range f.meetings {
		if m.UserID == userID {
			owned = append(owned, m)
		}
	}
	total := int64(len(owned))
	if offset > len(owned) {
		offset = len(owned)
	}
	end := offset + limit
	if end > len(owned) {
		end = len(owned)
	}
	return owned[offset:end], total, nil
}

func (f *fakeMeetingRepo) UpdateTranscript(ctx context.Context, meeting *entities.Meeting) error {
	f.transcriptUpdates++
	for i, m := range f.meetings {
		if m.ID == meeting.ID && m.UserID == meeting.UserID {
			copied := *meeting
			f.meetings[i] = &copied
		}
	}
	return nil
}

func (f *fakeMeetingRepo) UpdateSummary(ctx context.Context, id uuid.UUID, summary string) error {
	f.summaryUpdates++
	for _, m := range f.meetings {
		if m.ID == id {
			m.Summary = summary
		}
	}
	return nil
}

func (f *fakeMeetingRepo) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	_, total, err := f.List(ctx, userID, len(f.meetings), 0)
	return total, err
}

func (f *fakeMeetingRepo) GeneralStats(ctx context.Context, userID uuid.UUID) (*repositories.GeneralStatsRow, error) {
	return &repositories.GeneralStatsRow{}, nil
}

func (f *fakeMeetingRepo) TopParticipants(ctx context.Context, userID uuid.UUID, limit int) ([]entities.ParticipantCount, error) {
	return nil, nil
}

func (f *fakeMeetingRepo) CountByWeekday(ctx context.Context, userID uuid.UUID) (map[int]int64, error) {
	return nil, nil
}

func (f *fakeMeetingRepo) FindUpcoming(ctx context.Context, userID uuid.UUID, from time.Time, limit int) ([]*entities.Meeting, error) {
	return nil, nil
}

type fakeTaskRepo struct {
	tasks []*entities.Task
}

func (f *fakeTaskRepo) CreateBatch(ctx context.Context, tasks []*entities.Task) error {
	f.tasks = append(f.tasks, tasks...)
	return nil
}

func (f *fakeTaskRepo) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Task, int64, error) {
	return nil, 0, nil
}

func (f *fakeTaskRepo) FindByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]*entities.Task, error) {
	var linked []*entities.Task
	for _, t := range f.tasks {
		if t.MeetingID != nil && *t.MeetingID == meetingID {
			linked = append(linked, t)
		}
	}
	return linked, nil
}

func (f *fakeTaskRepo) CountByStatus(ctx context.Context, userID uuid.UUID) (map[entities.TaskStatus]int64, error) {
	return nil, nil
}

func (f *fakeTaskRepo) FindOverdue(ctx context.Context, userID uuid.UUID, before time.Time) ([]entities.OverdueTask, error) {
	return nil, nil
}

func newTestService(meetingRepo *fakeMeetingRepo, taskRepo *fakeTaskRepo, summarizer ai.Summarizer) Service {
	return NewService(meetingRepo, taskRepo, summarizer, nil, zap.NewNop())
}

func TestCreate_OwnerIsAlwaysRequester(t *testing.T) {
	userID := uuid.New()
	meetingRepo := &fakeMeetingRepo{}
	svc := newTestService(meetingRepo, &fakeTaskRepo{}, ai.NewMockSummarizer())

	created, err := svc.Create(context.Background(), userID, CreateInput{
		Title:        "Sprint planning",
		Date:         time.Now().Add(time.Hour),
		Participants: []string{"Alice", "Bob"},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.UserID != userID {
		t.Errorf("owner = %s, want requester %s", created.UserID, userID)
	}
	if created.Transcript != "" || created.Summary != "" {
		t.Errorf("new meeting should have empty transcript and summary")
	}
	if len(created.ActionItems) != 0 {
		t.Errorf("new meeting should have no action items")
	}
}

func TestCreate_ValidationFailures(t *testing.T) {
	svc := newTestService(&fakeMeetingRepo{}, &fakeTaskRepo{}, ai.NewMockSummarizer())

	cases := []struct {
		name  string
		input CreateInput
	}{
		{"empty title", CreateInput{Title: "  ", Date: time.Now(), Participants: []string{"Alice"}}},
		{"zero date", CreateInput{Title: "x", Participants: []string{"Alice"}}},
		{"no participants", CreateInput{Title: "x", Date: time.Now(), Participants: nil}},
		{"blank participant", CreateInput{Title: "x", Date: time.Now(), Participants: []string{"Alice", " "}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), uuid.New(), tc.input)
			appErr, ok := apperrors.As(err)
			if !ok || appErr.HTTPCode != http.StatusBadRequest {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestGetByID_CrossOwnerIndistinguishableFromMissing(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()
	meetingRepo := &fakeMeetingRepo{}
	svc := newTestService(meetingRepo, &fakeTaskRepo{}, ai.NewMockSummarizer())

	created, err := svc.Create(context.Background(), owner, CreateInput{
		Title:        "private",
		Date:         time.Now(),
		Participants: []string{"Alice"},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	_, crossErr := svc.GetByID(context.Background(), stranger, created.ID)
	_, missingErr := svc.GetByID(context.Background(), owner, uuid.New())

	crossApp, ok := apperrors.As(crossErr)
	if !ok {
		t.Fatalf("expected AppError for cross-owner access, got %v", crossErr)
	}
	missingApp, ok := apperrors.As(missingErr)
	if !ok {
		t.Fatalf("expected AppError for missing id, got %v", missingErr)
	}

	if crossApp.HTTPCode != http.StatusNotFound || missingApp.HTTPCode != http.StatusNotFound {
		t.Errorf("both lookups must yield 404, got %d and %d", crossApp.HTTPCode, missingApp.HTTPCode)
	}
	if crossApp.Message != missingApp.Message {
		t.Errorf("cross-owner message %q differs from missing-id message %q", crossApp.Message, missingApp.Message)
	}
}

func TestUpdateTranscript_EndBeforeStartRejected(t *testing.T) {
	userID := uuid.New()
	meetingRepo := &fakeMeetingRepo{}
	svc := newTestService(meetingRepo, &fakeTaskRepo{}, ai.NewMockSummarizer())

	start := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)
	created, err := svc.Create(context.Background(), userID, CreateInput{
		Title:        "review",
		Date:         start,
		Participants: []string{"Alice"},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	_, err = svc.UpdateTranscript(context.Background(), userID, created.ID, UpdateTranscriptInput{
		Transcript: "notes",
		EndDate:    start.Add(-time.Hour),
	})
	appErr, ok := apperrors.As(err)
	if !ok || appErr.HTTPCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
	if appErr.Message != "end date cannot be before start date" {
		t.Errorf("unexpected message %q", appErr.Message)
	}

	if meetingRepo.transcriptUpdates != 0 {
		t.Errorf("store must remain untouched after rejected update")
	}
	stored, _ := meetingRepo.FindByID(context.Background(), created.ID, userID)
	if stored.EndDate != nil || stored.Duration != nil {
		t.Errorf("endDate/duration must remain unset, got %+v", stored)
	}
}

func TestUpdateTranscript_DurationRounding(t *testing.T) {
	userID := uuid.New()
	meetingRepo := &fakeMeetingRepo{}
	svc := newTestService(meetingRepo, &fakeTaskRepo{}, ai.NewMockSummarizer())

	start := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)
	created, err := svc.Create(context.Background(), userID, CreateInput{
		Title:        "review",
		Date:         start,
		Participants: []string{"Alice"},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// 90 minutes and 40 seconds rounds to 91
	end := start.Add(90*time.Minute + 40*time.Second)
	updated, err := svc.UpdateTranscript(context.Background(), userID, created.ID, UpdateTranscriptInput{
		Transcript: "full notes",
		EndDate:    end,
	})
	if err != nil {
		t.Fatalf("UpdateTranscript failed: %v", err)
	}

	if updated.Duration == nil || *updated.Duration != 91 {
		t.Fatalf("duration = %v, want 91", updated.Duration)
	}
	if updated.EndDate == nil || !updated.EndDate.Equal(end) {
		t.Errorf("endDate = %v, want %v", updated.EndDate, end)
	}
	if updated.Transcript != "full notes" {
		t.Errorf("transcript = %q", updated.Transcript)
	}
	if meetingRepo.transcriptUpdates != 1 {
		t.Errorf("expected exactly one transcript update, got %d", meetingRepo.transcriptUpdates)
	}
}

func TestSummarize_RequiresTranscript(t *testing.T) {
	userID := uuid.New()
	meetingRepo := &fakeMeetingRepo{}
	svc := newTestService(meetingRepo, &fakeTaskRepo{}, ai.NewMockSummarizer())

	created, err := svc.Create(context.Background(), userID, CreateInput{
		Title:        "kickoff",
		Date:         time.Now(),
		Participants: []string{"Alice"},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	_, err = svc.Summarize(context.Background(), userID, created.ID)
	appErr, ok := apperrors.As(err)
	if !ok || appErr.HTTPCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
	if meetingRepo.summaryUpdates != 0 {
		t.Errorf("summary must not be written without a transcript")
	}
}

func TestSummarize_SpawnsPendingTasks(t *testing.T) {
	userID := uuid.New()
	meetingRepo := &fakeMeetingRepo{}
	taskRepo := &fakeTaskRepo{}
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	svc := newTestService(meetingRepo, taskRepo, ai.NewMockSummarizerWithClock(func() time.Time { return now }))

	created, err := svc.Create(context.Background(), userID, CreateInput{
		Title:        "Q3 roadmap",
		Date:         now.Add(-time.Hour),
		Participants: []string{"Alice", "Bob"},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := svc.UpdateTranscript(context.Background(), userID, created.ID, UpdateTranscriptInput{
		Transcript: "we discussed the roadmap",
		EndDate:    now,
	}); err != nil {
		t.Fatalf("UpdateTranscript failed: %v", err)
	}

	output, err := svc.Summarize(context.Background(), userID, created.ID)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	if output.Summary != `Summary for meeting "Q3 roadmap"` {
		t.Errorf("summary = %q", output.Summary)
	}
	if len(output.CreatedTasks) != 2 {
		t.Fatalf("expected 2 created tasks, got %d", len(output.CreatedTasks))
	}
	for _, task := range output.CreatedTasks {
		if task.Status != entities.TaskStatusPending {
			t.Errorf("task status = %q, want pending", task.Status)
		}
		if task.MeetingID == nil || *task.MeetingID != created.ID {
			t.Errorf("task not linked to meeting: %+v", task)
		}
		if task.UserID != userID {
			t.Errorf("task owner = %s, want %s", task.UserID, userID)
		}
	}
	if !output.ActionItems[0].DueDate.Equal(now.AddDate(0, 0, 7)) || !output.ActionItems[1].DueDate.Equal(now.AddDate(0, 0, 14)) {
		t.Errorf("action item due dates = %v", output.ActionItems)
	}

	stored, _ := meetingRepo.FindByID(context.Background(), created.ID, userID)
	if stored.Summary != output.Summary {
		t.Errorf("summary not persisted on meeting: %q", stored.Summary)
	}
	if len(taskRepo.tasks) != 2 {
		t.Errorf("expected 2 tasks bulk-inserted, got %d", len(taskRepo.tasks))
	}
}

func TestList_Pagination(t *testing.T) {
	userID := uuid.New()
	meetingRepo := &fakeMeetingRepo{}
	svc := newTestService(meetingRepo, &fakeTaskRepo{}, ai.NewMockSummarizer())

	for i := 0; i < 5; i++ {
		if _, err := svc.Create(context.Background(), userID, CreateInput{
			Title:        "meeting",
			Date:         time.Now().Add(time.Duration(i) * time.Hour),
			Participants: []string{"Alice"},
		}); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	// page=3 limit=1 over 5 items skips 2 and returns item 3
	output, err := svc.List(context.Background(), userID, 1, 3)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if output.Total != 5 || len(output.Meetings) != 1 {
		t.Fatalf("total=%d len=%d, want 5 and 1", output.Total, len(output.Meetings))
	}
	if output.Meetings[0] != meetingRepo.meetings[2] {
		t.Errorf("expected the third item")
	}

	// defaults applied
	output, err = svc.List(context.Background(), userID, 0, 0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if output.Limit != 10 || output.Page != 1 {
		t.Errorf("defaults = limit %d page %d, want 10 and 1", output.Limit, output.Page)
	}
}
