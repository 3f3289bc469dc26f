package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/meetingbot-team/meetingbot/internal/adapter/dto/common"
	"github.com/meetingbot-team/meetingbot/internal/infrastructure/http/middleware"
	statsUsecase "github.com/meetingbot-team/meetingbot/internal/usecase/stats"
)

// Stats handles the statistics and dashboard HTTP requests. Unlike the
// CRUD handlers these never surface underlying error messages.
type Stats struct {
	statsService statsUsecase.Service
	logger       *zap.Logger
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService statsUsecase.Service, logger *zap.Logger) *Stats {
	return &Stats{
		statsService: statsService,
		logger:       logger,
	}
}

// GetMeetingStats handles GET /api/meetings/stats
// @Summary      Meeting statistics
// @Description  Returns the cached per-user meeting statistics snapshot
// @Tags         Stats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entities.MeetingStats
// @Failure      500  {object}  common.ErrorResponse
// @Router       /api/meetings/stats [get]
func (h *Stats) GetMeetingStats(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, common.ErrorResponse{Message: "Authentication required"})
	}

	snapshot, err := h.statsService.MeetingStats(c.Request().Context(), userID)
	if err != nil {
		h.logger.Error("failed to compute meeting stats",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, common.ErrorResponse{Message: "Internal Server Error"})
	}

	return c.JSONBlob(http.StatusOK, snapshot)
}

// GetDashboard handles GET /api/dashboard
// @Summary      Dashboard statistics
// @Description  Returns the cached per-user dashboard snapshot
// @Tags         Stats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entities.Dashboard
// @Failure      500  {object}  common.ErrorResponse
// @Router       /api/dashboard [get]
func (h *Stats) GetDashboard(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, common.ErrorResponse{Message: "Authentication required"})
	}

	snapshot, err := h.statsService.DashboardStats(c.Request().Context(), userID)
	if err != nil {
		h.logger.Error("failed to compute dashboard stats",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, common.ErrorResponse{Message: "Internal Server Error"})
	}

	return c.JSONBlob(http.StatusOK, snapshot)
}
