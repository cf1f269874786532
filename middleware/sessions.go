package middleware

import (
	"bytes"
	"context"
	"net"
	"net/http"
	"time"

	goSession "github.com/MrEthical07/goSession"
)

type sessionContextKey struct{}

// SessionFromContext returns the session attached by [Sessions].
func SessionFromContext(ctx context.Context) (*goSession.Session, bool) {
	s, ok := ctx.Value(sessionContextKey{}).(*goSession.Session)
	return s, ok
}

// MarkStaticFile flags the response as a static-file body so the engine's
// static-file policy applies. It only has effect on responses produced under
// [Sessions].
func MarkStaticFile(w http.ResponseWriter) {
	if buf, ok := w.(*bufferedResponse); ok {
		buf.static = true
	}
}

// Sessions returns middleware that runs the session lifecycle around next.
// Backend failures answer 503: proceeding without the store would silently
// drop state.
func Sessions(engine *goSession.SessionInterface) func(http.Handler) http.Handler {
	cookieName := engine.Config().CookieName
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, err := engine.Open(r.Context(), httpRequest{r: r, cookie: cookieName})
			if err != nil {
				http.Error(w, "session store unavailable", http.StatusServiceUnavailable)
				return
			}

			buf := newBufferedResponse()
			ctx := context.WithValue(r.Context(), sessionContextKey{}, sess)
			next.ServeHTTP(buf, r.WithContext(ctx))

			if err := engine.Save(r.Context(), sess, buf); err != nil {
				http.Error(w, "session store unavailable", http.StatusServiceUnavailable)
				return
			}
			buf.flushTo(w)
		})
	}
}

type httpRequest struct {
	r      *http.Request
	cookie string
}

func (q httpRequest) SessionCookie() (string, bool) {
	c, err := q.r.Cookie(q.cookie)
	if err != nil {
		return "", false
	}
	return c.Value, true
}

func (q httpRequest) ForwardedFor() string {
	return q.r.Header.Get("X-Forwarded-For")
}

func (q httpRequest) RemoteAddr() string {
	host, _, err := net.SplitHostPort(q.r.RemoteAddr)
	if err != nil {
		return q.r.RemoteAddr
	}
	return host
}

// bufferedResponse implements http.ResponseWriter for the handler and
// goSession.Response for the engine.
type bufferedResponse struct {
	header http.Header
	body   bytes.Buffer
	status int
	static bool
}

func newBufferedResponse() *bufferedResponse {
	return &bufferedResponse{header: make(http.Header)}
}

func (b *bufferedResponse) Header() http.Header { return b.header }

func (b *bufferedResponse) Write(p []byte) (int, error) {
	if b.status == 0 {
		b.status = http.StatusOK
	}
	return b.body.Write(p)
}

func (b *bufferedResponse) WriteHeader(code int) {
	if b.status == 0 {
		b.status = code
	}
}

func (b *bufferedResponse) StaticFile() bool { return b.static }

func (b *bufferedResponse) SetCookie(c goSession.Cookie) {
	http.SetCookie(b, &http.Cookie{
		Name:     c.Name,
		Value:    c.Value,
		Expires:  c.Expires,
		Domain:   c.Domain,
		Path:     c.Path,
		HttpOnly: c.HTTPOnly,
		Secure:   c.Secure,
	})
}

func (b *bufferedResponse) DeleteCookie(name, domain, path string) {
	http.SetCookie(b, &http.Cookie{
		Name:    name,
		Domain:  domain,
		Path:    path,
		Expires: time.Unix(0, 0),
		MaxAge:  -1,
	})
}

func (b *bufferedResponse) flushTo(w http.ResponseWriter) {
	dst := w.Header()
	for k, vs := range b.header {
		dst[k] = vs
	}
	status := b.status
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	_, _ = w.Write(b.body.Bytes())
}
