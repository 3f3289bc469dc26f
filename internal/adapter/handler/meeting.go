package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/meetingbot-team/meetingbot/internal/adapter/dto/common"
	meetingdto "github.com/meetingbot-team/meetingbot/internal/adapter/dto/meeting"
	"github.com/meetingbot-team/meetingbot/internal/infrastructure/http/middleware"
	meetingUsecase "github.com/meetingbot-team/meetingbot/internal/usecase/meeting"
)

// Meeting handles meeting-related HTTP requests
type Meeting struct {
	meetingService meetingUsecase.Service
	logger         *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(meetingService meetingUsecase.Service, logger *zap.Logger) *Meeting {
	return &Meeting{
		meetingService: meetingService,
		logger:         logger,
	}
}

// ListMeetings handles GET /api/meetings
// @Summary      List meetings
// @Description  Returns the requester's meetings, paginated
// @Tags         Meetings
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Items per page (default: 10)"
// @Param        page   query     int  false  "Page number (default: 1)"
// @Success      200    {object}  meeting.ListMeetingsResponse
// @Router       /api/meetings [get]
func (h *Meeting) ListMeetings(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, common.ErrorResponse{Message: "Authentication required"})
	}

	var req meetingdto.ListMeetingsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, common.ValidationErrorResponse{Errors: []string{err.Error()}})
	}

	output, err := h.meetingService.List(c.Request().Context(), userID, req.Limit, req.Page)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, meetingdto.ListMeetingsResponse{
		Total: output.Total,
		Limit: output.Limit,
		Page:  output.Page,
		Data:  output.Meetings,
	})
}

// CreateMeeting handles POST /api/meetings
// @Summary      Create a meeting
// @Description  Creates a meeting owned by the requester
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      meeting.CreateMeetingRequest  true  "Meeting creation request"
// @Success      201      {object}  entities.Meeting
// @Failure      400      {object}  common.ValidationErrorResponse
// @Router       /api/meetings [post]
func (h *Meeting) CreateMeeting(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, common.ErrorResponse{Message: "Authentication required"})
	}

	var req meetingdto.CreateMeetingRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	created, err := h.meetingService.Create(c.Request().Context(), userID, meetingUsecase.CreateInput{
		Title:        req.Title,
		Date:         req.Date,
		Participants: req.Participants,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, created)
}

// GetMeeting handles GET /api/meetings/:id
// @Summary      Get meeting details
// @Description  Returns a meeting and the tasks referencing it
// @Tags         Meetings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Meeting ID (UUID)"
// @Success      200  {object}  meeting.MeetingDetailResponse
// @Failure      404  {object}  common.ErrorResponse
// @Router       /api/meetings/{id} [get]
func (h *Meeting) GetMeeting(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, common.ErrorResponse{Message: "Authentication required"})
	}

	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, common.ErrorResponse{Message: "Meeting not found"})
	}

	output, err := h.meetingService.GetByID(c.Request().Context(), userID, meetingID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, meetingdto.MeetingDetailResponse{
		Meeting: output.Meeting,
		Tasks:   output.Tasks,
	})
}

// UpdateTranscript handles PUT /api/meetings/:id/transcript
// @Summary      Update meeting transcript
// @Description  Stores the transcript with the end date and derived duration
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string  true  "Meeting ID (UUID)"
// @Param        request  body      meeting.UpdateTranscriptRequest  true  "Transcript update request"
// @Success      200      {object}  entities.Meeting
// @Failure      400      {object}  common.ErrorResponse
// @Failure      404      {object}  common.ErrorResponse
// @Router       /api/meetings/{id}/transcript [put]
func (h *Meeting) UpdateTranscript(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, common.ErrorResponse{Message: "Authentication required"})
	}

	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, common.ErrorResponse{Message: "Meeting not found"})
	}

	var req meetingdto.UpdateTranscriptRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	updated, err := h.meetingService.UpdateTranscript(c.Request().Context(), userID, meetingID, meetingUsecase.UpdateTranscriptInput{
		Transcript: req.Transcript,
		EndDate:    req.EndDate,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, updated)
}

// SummarizeMeeting handles POST /api/meetings/:id/summarize
// @Summary      Summarize a meeting
// @Description  Generates a summary and spawns tasks from the action items
// @Tags         Meetings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Meeting ID (UUID)"
// @Success      200  {object}  meeting.SummarizeResponse
// @Failure      400  {object}  common.ErrorResponse
// @Failure      404  {object}  common.ErrorResponse
// @Router       /api/meetings/{id}/summarize [post]
func (h *Meeting) SummarizeMeeting(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, common.ErrorResponse{Message: "Authentication required"})
	}

	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, common.ErrorResponse{Message: "Meeting not found"})
	}

	output, err := h.meetingService.Summarize(c.Request().Context(), userID, meetingID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, meetingdto.SummarizeResponse{
		Summary:      output.Summary,
		ActionItems:  output.ActionItems,
		CreatedTasks: output.CreatedTasks,
	})
}
