package goSession

import (
	"context"
	"time"
)

// Backend is the uniform contract a concrete key-value store must implement
// to persist session payloads. Implementations must be safe for concurrent
// use; the engine shares one Backend across all requests.
//
// Key absence is never an error: Get reports it through its second return
// value and Delete treats it as success. Only genuine connectivity or
// protocol failures surface as errors, and the engine propagates those to
// the caller unchanged.
type Backend interface {
	// Create establishes the underlying client if one was not injected at
	// construction. It is idempotent; [Builder.Build] invokes it once at
	// startup so no request-path check-and-create is needed.
	Create(ctx context.Context) error
	// Get returns the stored payload, or found=false when the key is absent.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	// Set stores value under key with a relative expiry. Stores with an
	// upper bound on relative expiry (memcached caps at 30 days) must
	// translate overlong TTLs into absolute expiry timestamps per their
	// documented convention.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Delete removes key. Deleting an absent key succeeds.
	Delete(ctx context.Context, key string) error
}
