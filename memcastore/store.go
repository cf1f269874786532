package memcastore

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
)

// ErrUnavailable wraps every connectivity or protocol failure returned by
// this store. Key absence is not an error.
var ErrUnavailable = errors.New("memcached unavailable")

// maxRelativeExpiry is the largest TTL memcached treats as relative. Anything
// longer must be sent as an absolute Unix timestamp.
const maxRelativeExpiry = 30 * 24 * time.Hour

// Store is a Memcached-backed session payload store. The gomemcache client
// does not take a context; the ctx parameters satisfy the backend contract
// and cancellation is delegated to the client's own timeouts.
type Store struct {
	mu     sync.Mutex
	client *memcache.Client
	addrs  []string
	now    func() time.Time
}

// New wraps an existing client.
func New(client *memcache.Client) *Store {
	return &Store{client: client, now: time.Now}
}

// NewAddrs defers client creation to Create.
func NewAddrs(addrs ...string) *Store {
	return &Store{addrs: addrs, now: time.Now}
}

// Create builds the client if one was not injected and verifies connectivity.
// Idempotent.
func (s *Store) Create(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client == nil {
		addrs := s.addrs
		if len(addrs) == 0 {
			addrs = []string{"127.0.0.1:11211"}
		}
		s.client = memcache.New(addrs...)
	}
	if err := s.client.Ping(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Get returns the payload stored under key, or found=false when absent.
func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	item, err := s.client.Get(key)
	if err != nil {
		if errors.Is(err, memcache.ErrCacheMiss) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return item.Value, true, nil
}

// Set stores value under key, translating overlong relative TTLs into
// absolute expiry timestamps.
func (s *Store) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	err := s.client.Set(&memcache.Item{
		Key:        key,
		Value:      value,
		Expiration: expiration(ttl, s.now()),
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key succeeds.
func (s *Store) Delete(_ context.Context, key string) error {
	if err := s.client.Delete(key); err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// expiration converts a relative TTL into the int32 memcached expects:
// seconds when within the 30-day relative window, otherwise an absolute
// Unix timestamp.
func expiration(ttl time.Duration, now time.Time) int32 {
	seconds := int32(ttl / time.Second)
	if ttl > maxRelativeExpiry {
		return int32(now.Unix()) + seconds
	}
	return seconds
}
