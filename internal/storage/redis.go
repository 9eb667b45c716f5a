package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey is the key the ranking is stored under.
const DefaultRedisKey = "axolotl:high_scores"

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Key      string
	Timeout  time.Duration // Per-operation deadline
}

// DefaultRedisConfig returns sensible defaults for a local Redis.
func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Addr:    "localhost:6379",
		Key:     DefaultRedisKey,
		Timeout: 3 * time.Second,
	}
}

// RedisStore keeps the ranking as a single string value.
type RedisStore struct {
	client  *redis.Client
	key     string
	timeout time.Duration
}

// OpenRedis connects to Redis and verifies the connection.
func OpenRedis(cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.Timeout,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
	})

	store := NewRedisStore(client, cfg.Key, cfg.Timeout)

	ctx, cancel := store.context()
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("storage: cannot connect to redis at %s: %w", cfg.Addr, err)
	}

	return store, nil
}

// NewRedisStore wraps an existing client. Empty key and zero timeout fall
// back to the defaults.
func NewRedisStore(client *redis.Client, key string, timeout time.Duration) *RedisStore {
	if key == "" {
		key = DefaultRedisKey
	}
	if timeout <= 0 {
		timeout = DefaultRedisConfig().Timeout
	}
	return &RedisStore{client: client, key: key, timeout: timeout}
}

func (s *RedisStore) context() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.timeout)
}

// Read returns the stored ranking payload.
func (s *RedisStore) Read() ([]byte, error) {
	ctx, cancel := s.context()
	defer cancel()

	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get %s: %w", s.key, err)
	}
	return data, nil
}

// Write replaces the stored ranking payload.
func (s *RedisStore) Write(data []byte) error {
	ctx, cancel := s.context()
	defer cancel()

	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("storage: cannot set %s: %w", s.key, err)
	}
	return nil
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
