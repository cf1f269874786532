package goSession

import "github.com/google/uuid"

// addrKey is the reserved data key that carries the bound client address when
// hijack protection is enabled. It lives inside the data map so it persists
// and round-trips with the rest of the session payload.
const addrKey = "_addr"

// Session is the in-memory representation of one client's server-side state:
// a string-keyed data map plus lifecycle metadata. All data mutation goes
// through accessors so the session can track its own modification history.
//
// A Session is not safe for concurrent use; each request owns its session
// between Open and Save.
type Session struct {
	id        string
	data      map[string]any
	permanent bool
	dirty     bool
	modified  bool
}

func newSession(id string, permanent bool) *Session {
	return &Session{
		id:        id,
		data:      make(map[string]any),
		permanent: permanent,
	}
}

func restoredSession(id string, data map[string]any, permanent bool) *Session {
	if data == nil {
		data = make(map[string]any)
	}
	return &Session{id: id, data: data, permanent: permanent}
}

func mintIdentifier() string {
	return uuid.NewString()
}

// ID returns the session identifier. It is never empty.
func (s *Session) ID() string { return s.id }

// Get returns the value stored under key and whether it was present.
func (s *Session) Get(key string) (any, bool) {
	v, ok := s.data[key]
	return v, ok
}

// Set stores a value and marks the session as modified.
func (s *Session) Set(key string, value any) {
	s.data[key] = value
	s.modified = true
}

// Delete removes a key. Removing an absent key still counts as a
// modification, matching the delete-on-empty contract of Save.
func (s *Session) Delete(key string) {
	delete(s.data, key)
	s.modified = true
}

// Clear removes every key, including the bound address.
func (s *Session) Clear() {
	for k := range s.data {
		delete(s.data, k)
	}
	s.modified = true
}

// Keys returns the stored keys in unspecified order.
func (s *Session) Keys() []string {
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	return keys
}

// Len returns the number of stored keys. The bound address, when set, counts
// as one key; a session holding only its address binding is not empty.
func (s *Session) Len() int { return len(s.data) }

// Dirty marks the session to be written on Save. Only meaningful when
// [Config.Explicit] is enabled; without it every Save persists.
func (s *Session) Dirty() { s.dirty = true }

// IsDirty reports whether [Session.Dirty] was called this request.
func (s *Session) IsDirty() bool { return s.dirty }

// Modified reports whether the data map was mutated through the accessors.
// It drives the active-deletion path of Save for emptied sessions.
func (s *Session) Modified() bool { return s.modified }

// Permanent reports whether the session cookie outlives the browser session.
func (s *Session) Permanent() bool { return s.permanent }

// SetPermanent switches the cookie expiration mode. It does not affect the
// backend TTL, which is always the configured permanent lifetime.
func (s *Session) SetPermanent(permanent bool) { s.permanent = permanent }

// Addr returns the bound client address, or "" when no binding exists.
func (s *Session) Addr() string {
	addr, _ := s.data[addrKey].(string)
	return addr
}

func (s *Session) bindAddr(addr string) {
	s.data[addrKey] = addr
	s.modified = true
}
