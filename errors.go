package goSession

import "errors"

var (
	// ErrBadSignature is returned by [Signer.Verify] when a presented token
	// fails HMAC verification. The engine never surfaces it to callers of
	// Open; it only reaches code that uses the Signer directly.
	ErrBadSignature = errors.New("bad session signature")
	// ErrMissingSecretKey is a configuration error: identifier signing is
	// enabled but no secret key was provided.
	ErrMissingSecretKey = errors.New("missing secret key")
	// ErrMissingBackend is a configuration error: the engine was built
	// without a [Backend].
	ErrMissingBackend = errors.New("missing session backend")
	// ErrInvalidLifetime is a configuration error: the permanent session
	// lifetime is zero or negative.
	ErrInvalidLifetime = errors.New("invalid permanent session lifetime")
	// ErrMissingCookieName is a configuration error: the session cookie name
	// is empty.
	ErrMissingCookieName = errors.New("missing session cookie name")
)
