package goSession

import "time"

// Request is the narrow slice of an incoming request the engine needs.
// The middleware subpackage adapts *http.Request to it; other host
// frameworks supply their own adapter.
type Request interface {
	// SessionCookie returns the value of the session cookie and whether the
	// cookie was present at all.
	SessionCookie() (string, bool)
	// ForwardedFor returns the X-Forwarded-For header value, or "".
	ForwardedFor() string
	// RemoteAddr returns the direct peer address.
	RemoteAddr() string
}

// Response is the narrow slice of an outgoing response the engine needs.
// Exactly one SetCookie or DeleteCookie call happens per Save.
type Response interface {
	SetCookie(cookie Cookie)
	DeleteCookie(name, domain, path string)
	// StaticFile reports whether the response body is a static file.
	// Static-file responses skip session handling unless
	// [Config.StaticFile] is enabled.
	StaticFile() bool
}

// Cookie carries the attributes of a session cookie write. A zero Expires
// means a browser-scoped cookie.
type Cookie struct {
	Name     string
	Value    string
	Expires  time.Time
	Domain   string
	Path     string
	HTTPOnly bool
	Secure   bool
}
