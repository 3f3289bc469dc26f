package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/meetingbot-team/meetingbot/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	meetingHandler *Meeting
	taskHandler    *Task
	statsHandler   *Stats
	authMW         echo.MiddlewareFunc
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, meetingHandler *Meeting, taskHandler *Task, statsHandler *Stats, authMW echo.MiddlewareFunc) *Router {
	return &Router{
		cfg:            cfg,
		meetingHandler: meetingHandler,
		taskHandler:    taskHandler,
		statsHandler:   statsHandler,
		authMW:         authMW,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	api := e.Group("/api", rt.authMW)

	rt.setupMeetingRoutes(api)
	rt.setupTaskRoutes(api)
	rt.setupDashboardRoutes(api)
}

// setupMeetingRoutes configures meeting routes. The stats route is
// registered before /:id so it is not captured as a meeting id.
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	meetings := g.Group("/meetings")

	meetings.GET("", rt.meetingHandler.ListMeetings)
	meetings.POST("", rt.meetingHandler.CreateMeeting)
	meetings.GET("/stats", rt.statsHandler.GetMeetingStats)
	meetings.GET("/:id", rt.meetingHandler.GetMeeting)
	meetings.PUT("/:id/transcript", rt.meetingHandler.UpdateTranscript)
	meetings.POST("/:id/summarize", rt.meetingHandler.SummarizeMeeting)
}

// setupTaskRoutes configures task routes
func (rt *Router) setupTaskRoutes(g *echo.Group) {
	tasks := g.Group("/tasks")

	tasks.GET("", rt.taskHandler.ListTasks)
}

// setupDashboardRoutes configures the dashboard route
func (rt *Router) setupDashboardRoutes(g *echo.Group) {
	g.GET("/dashboard", rt.statsHandler.GetDashboard)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
