package redisstore

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newStoreTest(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis start: %v", err)
	}
	t.Cleanup(mr.Close)

	store := New(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	if err := store.Create(context.Background()); err != nil {
		t.Fatalf("create: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store, mr
}

func TestStoreRoundTrip(t *testing.T) {
	store, mr := newStoreTest(t)
	ctx := context.Background()

	if err := store.Set(ctx, "session:abc-123", []byte(`{"user":"alice"}`), time.Hour); err != nil {
		t.Fatalf("set: %v", err)
	}

	value, found, err := store.Get(ctx, "session:abc-123")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !found || string(value) != `{"user":"alice"}` {
		t.Fatalf("unexpected payload: found=%v value=%s", found, value)
	}

	if ttl := mr.TTL("session:abc-123"); ttl != time.Hour {
		t.Fatalf("expected 1h ttl, got %v", ttl)
	}
}

func TestStoreAbsentKeyIsNotAnError(t *testing.T) {
	store, _ := newStoreTest(t)
	ctx := context.Background()

	value, found, err := store.Get(ctx, "session:missing")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if found || value != nil {
		t.Fatalf("expected absence, got found=%v value=%v", found, value)
	}
}

func TestStoreDeleteIdempotent(t *testing.T) {
	store, _ := newStoreTest(t)
	ctx := context.Background()

	if err := store.Set(ctx, "session:abc-123", []byte("x"), time.Hour); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Delete(ctx, "session:abc-123"); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := store.Delete(ctx, "session:abc-123"); err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if _, found, err := store.Get(ctx, "session:abc-123"); err != nil || found {
		t.Fatalf("key survived delete: found=%v err=%v", found, err)
	}
}

func TestStoreCreateDialsFromConfig(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis start: %v", err)
	}
	t.Cleanup(mr.Close)

	store := NewFromConfig(Config{Addr: mr.Addr()})
	if err := store.Create(context.Background()); err != nil {
		t.Fatalf("create: %v", err)
	}
	// Idempotent.
	if err := store.Create(context.Background()); err != nil {
		t.Fatalf("second create: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	if err := store.Set(context.Background(), "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("set after lazy dial: %v", err)
	}
}
