// Package nullstore provides a no-op goSession backend: every lookup misses
// and every write disappears. Useful for handlers that must accept a session
// engine but should never persist anything, and as a stand-in in tests.
package nullstore

import (
	"context"
	"time"
)

// Store discards all session payloads.
type Store struct{}

// New returns the no-op store.
func New() *Store { return &Store{} }

// Create is a no-op.
func (*Store) Create(context.Context) error { return nil }

// Get always reports key absence.
func (*Store) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

// Set discards the value.
func (*Store) Set(context.Context, string, []byte, time.Duration) error { return nil }

// Delete is a no-op.
func (*Store) Delete(context.Context, string) error { return nil }
