package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/meetingbot-team/meetingbot/pkg/validator"

	"github.com/meetingbot-team/meetingbot/internal/adapter/handler"
	"github.com/meetingbot-team/meetingbot/internal/adapter/repository"
	"github.com/meetingbot-team/meetingbot/internal/infrastructure/cache"
	"github.com/meetingbot-team/meetingbot/internal/infrastructure/database"
	httpmw "github.com/meetingbot-team/meetingbot/internal/infrastructure/http/middleware"
	"github.com/meetingbot-team/meetingbot/internal/infrastructure/storage"
	meetinguse "github.com/meetingbot-team/meetingbot/internal/usecase/meeting"
	statsuse "github.com/meetingbot-team/meetingbot/internal/usecase/stats"
	taskuse "github.com/meetingbot-team/meetingbot/internal/usecase/task"
	"github.com/meetingbot-team/meetingbot/pkg/ai"
	"github.com/meetingbot-team/meetingbot/pkg/config"
	"github.com/meetingbot-team/meetingbot/pkg/jwt"
	"github.com/meetingbot-team/meetingbot/pkg/logger"
)

// @title           MeetingBot API
// @version         1.0
// @description     Meeting-management backend with statistics aggregation and dashboard rollups

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.New(cfg.Server.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Run migrations only when explicitly enabled in config.
	// Production deployments should manage schema via sql-migrate.
	if cfg.Database.AutoMigrate {
		if cfg.Server.Environment == "production" {
			log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE or manage schema with sql-migrate.")
		}
		log.Println("🔄 Applying migrations (development only) ...")
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	}

	// Initialize cache store. The test environment never contacts Redis.
	var cacheStore cache.Store
	if cfg.IsTest() {
		log.Println("⚠️  Cache disabled (test environment)")
		cacheStore = cache.NewDisabledStore()
	} else {
		log.Println("📦 Connecting to Redis...")
		redisClient, err := cache.NewRedisClient(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		cacheStore = cache.NewRedisStore(redisClient, zapLogger)
	}

	// Initialize transcript archive when storage is configured
	var archive *storage.TranscriptArchive
	if cfg.Storage.Endpoint != "" {
		log.Println("🗄️  Initializing transcript archive...")
		archive, err = storage.NewTranscriptArchive(&cfg.Storage)
		if err != nil {
			log.Fatalf("Failed to initialize transcript archive: %v", err)
		}
	}

	// Initialize summarizer: external service when configured, mock otherwise
	var summarizer ai.Summarizer
	if cfg.AI.SummarizerURL != "" {
		log.Printf("🤖 Using external summarizer: %s", cfg.AI.SummarizerURL)
		summarizer = ai.NewHTTPSummarizer(&cfg.AI)
	} else {
		log.Println("🤖 Using mock summarizer")
		summarizer = ai.NewMockSummarizer()
	}

	// Initialize repositories
	meetingRepo := repository.NewMeetingRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	// Initialize services
	meetingService := meetinguse.NewService(meetingRepo, taskRepo, summarizer, archive, zapLogger)
	taskService := taskuse.NewService(taskRepo)
	statsService := statsuse.NewService(
		meetingRepo,
		taskRepo,
		cacheStore,
		zapLogger,
		time.Duration(cfg.Cache.MeetingStatsTTL)*time.Second,
		time.Duration(cfg.Cache.DashboardStatsTTL)*time.Second,
	)

	// Initialize handlers
	meetingHandler := handler.NewMeetingHandler(meetingService, zapLogger)
	taskHandler := handler.NewTaskHandler(taskService)
	statsHandler := handler.NewStatsHandler(statsService, zapLogger)

	// Initialize JWT manager and auth middleware
	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Expiry)
	authMW := httpmw.EchoAuth(jwtManager)

	// Setup router with handlers
	router := handler.NewRouter(cfg, meetingHandler, taskHandler, statsHandler, authMW)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	zapLogger.Info("shutting down server", zap.String("environment", cfg.Server.Environment))

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
