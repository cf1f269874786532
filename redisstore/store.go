package redisstore

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/redis/go-redis/v9"
)

// ErrUnavailable wraps every connectivity or protocol failure returned by
// this store. Key absence is not an error.
var ErrUnavailable = errors.New("redis unavailable")

// Config holds the dialing parameters used when no client is injected.
type Config struct {
	// Addr like "localhost:6379". ENV: SESSION_REDIS_ADDR
	Addr     string `env:"SESSION_REDIS_ADDR,default=localhost:6379"`
	Password string `env:"SESSION_REDIS_PASSWORD"`
	DB       int    `env:"SESSION_REDIS_DB,default=0"`
}

// Store is a Redis-backed session payload store.
type Store struct {
	mu     sync.Mutex
	client redis.UniversalClient
	cfg    Config
}

// New wraps an existing client. Create becomes a no-op beyond a ping.
func New(client redis.UniversalClient) *Store {
	return &Store{client: client}
}

// NewFromConfig defers dialing to Create.
func NewFromConfig(cfg Config) *Store {
	return &Store{cfg: cfg}
}

// NewFromEnv builds a lazily-dialed Store from SESSION_REDIS_* variables.
func NewFromEnv() (*Store, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return nil, err
	}
	return NewFromConfig(cfg), nil
}

// Create dials Redis if no client was injected and verifies connectivity
// with a ping. Idempotent.
func (s *Store) Create(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client == nil {
		s.client = redis.NewClient(&redis.Options{
			Addr:     s.cfg.Addr,
			Password: s.cfg.Password,
			DB:       s.cfg.DB,
		})
	}
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Get returns the payload stored under key, or found=false when absent.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return value, true, nil
}

// Set stores value under key with a relative expiry.
func (s *Store) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key succeeds.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Close releases the underlying client.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}
