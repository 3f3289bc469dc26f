package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/meetingbot-team/meetingbot/errors"
	"github.com/meetingbot-team/meetingbot/internal/domain/entities"
	"github.com/meetingbot-team/meetingbot/internal/infrastructure/http/middleware"
	meetingUsecase "github.com/meetingbot-team/meetingbot/internal/usecase/meeting"
	taskUsecase "github.com/meetingbot-team/meetingbot/internal/usecase/task"
	"github.com/meetingbot-team/meetingbot/pkg/config"
	"github.com/meetingbot-team/meetingbot/pkg/jwt"
	"github.com/meetingbot-team/meetingbot/pkg/validator"
)

type stubMeetingService struct {
	meetings map[uuid.UUID]*entities.Meeting
}

func (s *stubMeetingService) List(ctx context.Context, userID uuid.UUID, limit, page int) (*meetingUsecase.ListOutput, error) {
	return &meetingUsecase.ListOutput{Total: 0, Limit: 10, Page: 1, Meetings: []*entities.Meeting{}}, nil
}

func (s *stubMeetingService) Create(ctx context.Context, userID uuid.UUID, input meetingUsecase.CreateInput) (*entities.Meeting, error) {
	meeting := entities.NewMeeting(userID, input.Title, input.Date, input.Participants)
	meeting.ID = uuid.New()
	if s.meetings == nil {
		s.meetings = make(map[uuid.UUID]*entities.Meeting)
	}
	s.meetings[meeting.ID] = meeting
	return meeting, nil
}

func (s *stubMeetingService) GetByID(ctx context.Context, userID, meetingID uuid.UUID) (*meetingUsecase.DetailOutput, error) {
	meeting, ok := s.meetings[meetingID]
	if !ok || meeting.UserID != userID {
		return nil, apperrors.ErrNotFound("Meeting")
	}
	return &meetingUsecase.DetailOutput{Meeting: meeting, Tasks: []*entities.Task{}}, nil
}

func (s *stubMeetingService) UpdateTranscript(ctx context.Context, userID, meetingID uuid.UUID, input meetingUsecase.UpdateTranscriptInput) (*entities.Meeting, error) {
	return nil, apperrors.ErrNotFound("Meeting")
}

func (s *stubMeetingService) Summarize(ctx context.Context, userID, meetingID uuid.UUID) (*meetingUsecase.SummarizeOutput, error) {
	return nil, apperrors.ErrNotFound("Meeting")
}

type stubTaskService struct{}

func (s *stubTaskService) List(ctx context.Context, userID uuid.UUID, limit, page int) (*taskUsecase.ListOutput, error) {
	return &taskUsecase.ListOutput{Total: 0, Limit: 10, Page: 1, Tasks: []*entities.Task{}}, nil
}

type stubStatsService struct {
	meetingSnapshot   json.RawMessage
	dashboardSnapshot json.RawMessage
	err               error
}

func (s *stubStatsService) MeetingStats(ctx context.Context, userID uuid.UUID) (json.RawMessage, error) {
	return s.meetingSnapshot, s.err
}

func (s *stubStatsService) DashboardStats(ctx context.Context, userID uuid.UUID) (json.RawMessage, error) {
	return s.dashboardSnapshot, s.err
}

type testServer struct {
	echo       *echo.Echo
	jwtManager *jwt.Manager
	meetings   *stubMeetingService
	stats      *stubStatsService
}

func newTestServer() *testServer {
	e := echo.New()
	e.Validator = validator.New()

	cfg := &config.Config{}
	cfg.Server.Environment = "test"

	jwtManager := jwt.NewManager("test-secret", time.Hour)
	logger := zap.NewNop()

	meetings := &stubMeetingService{}
	stats := &stubStatsService{
		meetingSnapshot:   json.RawMessage(`{"generalStats":{"totalMeetings":0}}`),
		dashboardSnapshot: json.RawMessage(`{"totalMeetings":0}`),
	}

	router := NewRouter(
		cfg,
		NewMeetingHandler(meetings, logger),
		NewTaskHandler(&stubTaskService{}),
		NewStatsHandler(stats, logger),
		middleware.EchoAuth(jwtManager),
	)
	router.Setup(e)

	return &testServer{echo: e, jwtManager: jwtManager, meetings: meetings, stats: stats}
}

func (ts *testServer) request(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)
	return rec
}

func (ts *testServer) tokenFor(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token, err := ts.jwtManager.GenerateToken(userID)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	return token
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body %q: %v", rec.Body.String(), err)
	}
	return body.Message
}

func TestHealth_NoAuthRequired(t *testing.T) {
	ts := newTestServer()

	rec := ts.request(t, http.MethodGet, "/health", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestAuth_MissingBearer(t *testing.T) {
	ts := newTestServer()

	rec := ts.request(t, http.MethodGet, "/api/meetings", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != "Authentication required" {
		t.Errorf("message = %q", msg)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	ts := newTestServer()

	rec := ts.request(t, http.MethodGet, "/api/meetings", "not-a-valid-token", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != "Invalid token" {
		t.Errorf("message = %q", msg)
	}
}

func TestCreateMeeting_Created(t *testing.T) {
	ts := newTestServer()
	userID := uuid.New()
	token := ts.tokenFor(t, userID)

	rec := ts.request(t, http.MethodPost, "/api/meetings", token,
		`{"title":"Sprint planning","date":"2025-06-10T14:00:00Z","participants":["Alice","Bob"]}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var created entities.Meeting
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if created.Title != "Sprint planning" || created.UserID != userID {
		t.Errorf("created = %+v", created)
	}
}

func TestCreateMeeting_ValidationErrorShape(t *testing.T) {
	ts := newTestServer()
	token := ts.tokenFor(t, uuid.New())

	rec := ts.request(t, http.MethodPost, "/api/meetings", token, `{"title":"no date or participants"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Errors []string `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body %q: %v", rec.Body.String(), err)
	}
	if len(body.Errors) == 0 {
		t.Errorf("expected field-level validation messages, got %s", rec.Body.String())
	}
}

func TestGetMeeting_NotFoundShape(t *testing.T) {
	ts := newTestServer()
	token := ts.tokenFor(t, uuid.New())

	rec := ts.request(t, http.MethodGet, "/api/meetings/"+uuid.NewString(), token, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != "Meeting not found" {
		t.Errorf("message = %q", msg)
	}
}

func TestGetMeeting_MalformedIDTreatedAsNotFound(t *testing.T) {
	ts := newTestServer()
	token := ts.tokenFor(t, uuid.New())

	rec := ts.request(t, http.MethodGet, "/api/meetings/not-a-uuid", token, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != "Meeting not found" {
		t.Errorf("message = %q", msg)
	}
}

func TestMeetingStats_RouteNotCapturedByID(t *testing.T) {
	ts := newTestServer()
	token := ts.tokenFor(t, uuid.New())

	rec := ts.request(t, http.MethodGet, "/api/meetings/stats", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if rec.Body.String() != string(ts.stats.meetingSnapshot) {
		t.Errorf("body = %q, want cached snapshot verbatim", rec.Body.String())
	}
}

func TestDashboard_SnapshotPassthrough(t *testing.T) {
	ts := newTestServer()
	token := ts.tokenFor(t, uuid.New())

	rec := ts.request(t, http.MethodGet, "/api/dashboard", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if rec.Body.String() != string(ts.stats.dashboardSnapshot) {
		t.Errorf("body = %q, want cached snapshot verbatim", rec.Body.String())
	}
}

func TestStats_GenericInternalError(t *testing.T) {
	ts := newTestServer()
	ts.stats.err = apperrors.ErrInternal(context.DeadlineExceeded)
	token := ts.tokenFor(t, uuid.New())

	rec := ts.request(t, http.MethodGet, "/api/meetings/stats", token, "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != "Internal Server Error" {
		t.Errorf("message = %q, stats endpoints must never leak the cause", msg)
	}
}
