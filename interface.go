package goSession

import (
	"context"
	"log/slog"
	"time"
)

// SessionInterface orchestrates the session lifecycle: identifier extraction
// and verification, backend fetch, hijack validation on the way in; dirty and
// empty checks, serialization, backend write, and cookie emission on the way
// out. Construct it through [Builder.Build]; after that it is immutable and
// safe for concurrent use.
type SessionInterface struct {
	config  Config
	backend Backend
	signer  *Signer
	codec   Codec
	logger  *slog.Logger
	metrics *Metrics
}

// Config returns a copy of the active configuration.
func (e *SessionInterface) Config() Config { return e.config }

// MetricsSnapshot returns a point-in-time copy of the engine counters.
func (e *SessionInterface) MetricsSnapshot() MetricsSnapshot { return e.metrics.snapshot() }

// Open resolves the incoming request to a Session. Every untrustworthy
// identifier — missing cookie, bad signature, absent backend key, corrupt
// payload, bound-address mismatch — converges on the same outcome: a fresh
// empty session under a new identifier, with only the warning log differing.
// The sole errors Open returns are backend connectivity failures, which are
// fatal for the request, and a missing secret key while signing is enabled.
func (e *SessionInterface) Open(ctx context.Context, req Request) (*Session, error) {
	sid, present := req.SessionCookie()

	// The binding address for fresh sessions. This deliberately trusts
	// X-Forwarded-For whenever hijack protection is on, while the
	// post-decode comparison below trusts it only behind a declared
	// reverse proxy.
	var bindAddr string
	if e.config.HijackProtection {
		bindAddr = req.ForwardedFor()
		if bindAddr == "" {
			bindAddr = req.RemoteAddr()
		}
	}

	fresh := func() *Session {
		e.metrics.inc(MetricSessionMinted)
		s := newSession(mintIdentifier(), e.config.Permanent)
		if bindAddr != "" {
			s.bindAddr(bindAddr)
		}
		return s
	}

	if !present || sid == "" {
		return fresh(), nil
	}

	if e.config.UseSigner {
		if e.signer == nil {
			return nil, ErrMissingSecretKey
		}
		raw, err := e.signer.Verify(sid)
		if err != nil {
			e.logger.Warn("bad signature for session id", "sid", sid)
			e.metrics.inc(MetricBadSignature)
			return fresh(), nil
		}
		sid = raw
	}

	key := e.config.KeyPrefix + sid
	payload, found, err := e.backend.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !found {
		return fresh(), nil
	}

	data, err := e.codec.Decode(payload)
	if err != nil {
		e.logger.Warn("failed to decode session data, minting new id", "sid", sid, "err", err)
		e.metrics.inc(MetricDecodeFailure)
		return fresh(), nil
	}

	if e.config.HijackProtection {
		addr := req.RemoteAddr()
		if e.config.HijackReverseProxy {
			if fwd := req.ForwardedFor(); fwd != "" {
				addr = fwd
			}
		}
		stored, bound := data[addrKey].(string)
		if !bound {
			// First-time binding passes trivially.
			stored = addr
		}
		if stored != addr {
			if err := e.backend.Delete(ctx, key); err != nil {
				return nil, err
			}
			e.logger.Warn("session address mismatch, minting new id",
				"sid", sid, "bound", stored, "observed", addr)
			e.metrics.inc(MetricHijackRejected)
			return fresh(), nil
		}
	}

	e.metrics.inc(MetricSessionRestored)
	return restoredSession(sid, data, e.config.Permanent), nil
}

// Save decides the session's fate exactly once per response: skip, delete, or
// persist. Persisted sessions are written with the configured permanent
// lifetime as backend TTL regardless of the permanence flag, which only
// shapes the cookie's own expiration. At most one cookie write or deletion
// reaches the response.
func (e *SessionInterface) Save(ctx context.Context, s *Session, resp Response) error {
	if e.config.Explicit && !s.dirty {
		e.metrics.inc(MetricSaveSkipped)
		return nil
	}
	if !e.config.StaticFile && resp.StaticFile() {
		e.metrics.inc(MetricSaveSkipped)
		return nil
	}

	key := e.config.KeyPrefix + s.id

	if s.Len() == 0 {
		if s.modified {
			if err := e.backend.Delete(ctx, key); err != nil {
				return err
			}
			resp.DeleteCookie(e.config.CookieName, e.config.CookieDomain, e.config.CookiePath)
			e.metrics.inc(MetricSessionDeleted)
		}
		return nil
	}

	payload, err := e.codec.Encode(s.data)
	if err != nil {
		return err
	}

	ttl := e.config.PermanentLifetime.Truncate(time.Second)
	if err := e.backend.Set(ctx, key, payload, ttl); err != nil {
		return err
	}

	value := s.id
	if e.config.UseSigner {
		value = e.signer.Sign(s.id)
	}

	var expires time.Time
	if s.permanent {
		expires = time.Now().Add(e.config.PermanentLifetime)
	}
	resp.SetCookie(Cookie{
		Name:     e.config.CookieName,
		Value:    value,
		Expires:  expires,
		Domain:   e.config.CookieDomain,
		Path:     e.config.CookiePath,
		HTTPOnly: e.config.CookieHTTPOnly,
		Secure:   e.config.CookieSecure,
	})
	e.metrics.inc(MetricSessionSaved)
	return nil
}
