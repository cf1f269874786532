package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	goSession "github.com/MrEthical07/goSession"
	"github.com/MrEthical07/goSession/redisstore"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis start: %v", err)
	}
	t.Cleanup(mr.Close)

	store := redisstore.New(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	cfg, err := goSession.ConfigFromEnv()
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	cfg.PermanentLifetime = time.Hour

	engine, err := goSession.New().
		WithConfig(cfg).
		WithBackend(store).
		Build(context.Background())
	if err != nil {
		t.Fatalf("build engine: %v", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/set", func(w http.ResponseWriter, r *http.Request) {
		sess, ok := SessionFromContext(r.Context())
		if !ok {
			t.Fatal("session missing from context")
		}
		sess.Set("user", "alice")
		fmt.Fprint(w, "ok")
	})
	mux.HandleFunc("/get", func(w http.ResponseWriter, r *http.Request) {
		sess, _ := SessionFromContext(r.Context())
		user, _ := sess.Get("user")
		fmt.Fprintf(w, "%v", user)
	})
	mux.HandleFunc("/asset", func(w http.ResponseWriter, r *http.Request) {
		MarkStaticFile(w)
		fmt.Fprint(w, "body { }")
	})

	return Sessions(engine)(mux)
}

func TestSessionsPersistAcrossRequests(t *testing.T) {
	handler := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/set", nil))

	res := rec.Result()
	cookies := res.Cookies()
	if len(cookies) != 1 || cookies[0].Name != "session" {
		t.Fatalf("expected exactly one session cookie, got %+v", cookies)
	}
	if rec.Body.String() != "ok" {
		t.Fatalf("handler body lost: %q", rec.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/get", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Body.String() != "alice" {
		t.Fatalf("session did not persist across requests: %q", rec.Body.String())
	}
}

func TestSessionsSkipStaticFiles(t *testing.T) {
	handler := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/asset", nil))

	if cookies := rec.Result().Cookies(); len(cookies) != 0 {
		t.Fatalf("static-file response must not set a cookie: %+v", cookies)
	}
	if rec.Body.String() != "body { }" {
		t.Fatalf("asset body lost: %q", rec.Body.String())
	}
}

func TestSessionFromContextWithoutMiddleware(t *testing.T) {
	if _, ok := SessionFromContext(context.Background()); ok {
		t.Fatal("expected no session outside the middleware")
	}
}
