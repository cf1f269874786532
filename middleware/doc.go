// Package middleware adapts the goSession engine to net/http. The Sessions
// wrapper opens the request's session into the context, runs the handler
// against a buffered response, and saves the session before the response is
// flushed, so the cookie write always precedes the body even when the
// handler writes first.
//
// Buffering trades streaming for the exactly-one-cookie-per-response
// guarantee. Streaming handlers should sit outside this middleware and drive
// [goSession.SessionInterface] directly.
package middleware
