package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Cache    CacheConfig
	Storage  StorageConfig
	AI       AIConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"8080"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	LogLevel        string   `envconfig:"LOG_LEVEL" default:"info"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" default:"postgres"`
	Password    string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name        string `envconfig:"DB_NAME" default:"meetingbot"`
	SSLMode     string `envconfig:"DB_SSLMODE" default:"disable"`
	MaxConns    int    `envconfig:"DB_MAX_CONNS" default:"25"`
	MinConns    int    `envconfig:"DB_MIN_CONNS" default:"5"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"false"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret string        `envconfig:"JWT_SECRET" default:"secret"`
	Expiry time.Duration `envconfig:"JWT_EXPIRATION" default:"1h"`
}

// CacheConfig holds TTLs for the cached statistics snapshots
type CacheConfig struct {
	MeetingStatsTTL   int `envconfig:"MEETING_STATS_CACHE_TTL" default:"3600"`
	DashboardStatsTTL int `envconfig:"DASHBOARD_STATS_CACHE_TTL" default:"3600"`
}

// StorageConfig holds transcript archive storage configuration.
// Archiving is disabled when Endpoint is empty.
type StorageConfig struct {
	Endpoint        string `envconfig:"STORAGE_ENDPOINT" default:""`
	AccessKeyID     string `envconfig:"STORAGE_ACCESS_KEY" default:"minioadmin"`
	SecretAccessKey string `envconfig:"STORAGE_SECRET_KEY" default:"minioadmin"`
	BucketName      string `envconfig:"STORAGE_BUCKET" default:"meetingbot-transcripts"`
	UseSSL          bool   `envconfig:"STORAGE_USE_SSL" default:"false"`
}

// AIConfig holds summarizer configuration. With an empty URL the
// built-in mock summarizer is used.
type AIConfig struct {
	SummarizerURL string        `envconfig:"SUMMARIZER_URL" default:""`
	APIKey        string        `envconfig:"SUMMARIZER_API_KEY" default:""`
	Timeout       time.Duration `envconfig:"SUMMARIZER_TIMEOUT" default:"30s"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment configuration: %w", err)
	}

	return &cfg, nil
}

// IsTest reports whether the service runs in the test environment,
// where the cache must never contact a backing store.
func (c *Config) IsTest() bool {
	return c.Server.Environment == "test"
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}
