package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/meetingbot-team/meetingbot/pkg/config"
)

// NewRedisClient creates a new Redis client and verifies connectivity
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}

// RedisStore implements Store on top of Redis. All backend errors are
// logged and swallowed so callers serve uncached data instead of failing.
type RedisStore struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisStore creates a Redis-backed cache store
func NewRedisStore(client *redis.Client, logger *zap.Logger) *RedisStore {
	return &RedisStore{
		client: client,
		logger: logger,
	}
}

// Get retrieves a value by key; backend errors degrade to a miss
func (s *RedisStore) Get(ctx context.Context, key string) (string, bool) {
	value, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			s.logger.Error("cache get failed",
				zap.String("key", key),
				zap.Error(err))
		}
		return "", false
	}

	s.logger.Debug("cache hit", zap.String("key", key))
	return value, true
}

// Set stores a value with TTL; backend errors degrade to a no-op
func (s *RedisStore) Set(ctx context.Context, key string, value string, ttl time.Duration) {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		s.logger.Error("cache set failed",
			zap.String("key", key),
			zap.Error(err))
		return
	}

	s.logger.Debug("cache set",
		zap.String("key", key),
		zap.Duration("ttl", ttl))
}
