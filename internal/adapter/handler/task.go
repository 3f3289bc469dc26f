package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/meetingbot-team/meetingbot/internal/adapter/dto/common"
	taskdto "github.com/meetingbot-team/meetingbot/internal/adapter/dto/task"
	"github.com/meetingbot-team/meetingbot/internal/infrastructure/http/middleware"
	taskUsecase "github.com/meetingbot-team/meetingbot/internal/usecase/task"
)

// Task handles task-related HTTP requests
type Task struct {
	taskService taskUsecase.Service
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService taskUsecase.Service) *Task {
	return &Task{taskService: taskService}
}

// ListTasksRequest carries the pagination query parameters
type ListTasksRequest struct {
	Limit int `query:"limit"`
	Page  int `query:"page"`
}

// ListTasks handles GET /api/tasks
// @Summary      List tasks
// @Description  Returns the requester's tasks, paginated
// @Tags         Tasks
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Items per page (default: 10)"
// @Param        page   query     int  false  "Page number (default: 1)"
// @Success      200    {object}  task.ListTasksResponse
// @Router       /api/tasks [get]
func (h *Task) ListTasks(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, common.ErrorResponse{Message: "Authentication required"})
	}

	var req ListTasksRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, common.ValidationErrorResponse{Errors: []string{err.Error()}})
	}

	output, err := h.taskService.List(c.Request().Context(), userID, req.Limit, req.Page)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, taskdto.ListTasksResponse{
		Total: output.Total,
		Limit: output.Limit,
		Page:  output.Page,
		Data:  output.Tasks,
	})
}
