// Package goSession provides a server-side session layer for Go HTTP services:
// session state lives in a pluggable key-value backend (Redis, Memcached) and
// only a random, optionally HMAC-signed identifier travels in the cookie.
//
// The package is designed for concurrent server workloads: [SessionInterface]
// methods are safe to call from multiple goroutines after initialization
// through [Builder.Build].
//
// # Architecture boundaries
//
// goSession is the public surface. It exposes [SessionInterface], [Builder],
// [Config], [Session], [Signer], [Codec], and the [Backend] contract. Concrete
// backends live in their own subpackages (redisstore, memcastore, nullstore)
// so that importing the core never pulls in a store client you do not use.
// HTTP plumbing lives in the middleware subpackage.
//
// # What this package must NOT do
//
//   - Talk to a concrete store directly; all persistence goes through [Backend].
//   - Surface why a presented identifier was rejected. Missing cookie, bad
//     signature, absent backend key, corrupt payload, and hijack mismatch all
//     converge on the same observable outcome: a fresh empty session under a
//     new identifier.
//   - Provide read-modify-write atomicity. Concurrent requests for the same
//     identifier race at the backend (last write wins); callers that need
//     stronger guarantees must serialize at a higher layer.
//
// # Persistence contract
//
// One backend entry per active session, key = key prefix + identifier, value =
// the tagged-JSON encoding of the session data, TTL = the configured permanent
// session lifetime regardless of whether the cookie itself is permanent. The
// fixed TTL bounds backend growth from abandoned browser-scoped sessions.
package goSession
