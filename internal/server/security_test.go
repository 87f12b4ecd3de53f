package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

// fakeClock is advanced by hand so window rollover is deterministic
type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestWindow(window time.Duration, limit int) (*RateWindow, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	rw := NewRateWindow(window, limit)
	rw.now = clock.now
	rw.started = clock.t
	return rw, clock
}

func TestAuthMiddleware(t *testing.T) {
	apiKey := "secret-key"
	h := AuthMiddleware(apiKey, nil, NewRateWindow(time.Minute, 100))(okHandler())

	tests := []struct {
		name   string
		header string
		value  string
		path   string
		want   int
	}{
		{"valid api key", HeaderAPIKey, apiKey, "/api/v1/players/p1", http.StatusOK},
		{"valid bearer token", HeaderAuthorization, "Bearer " + apiKey, "/api/v1/players/p1", http.StatusOK},
		{"wrong api key", HeaderAPIKey, "wrong-key", "/api/v1/players/p1", http.StatusUnauthorized},
		{"basic scheme ignored", HeaderAuthorization, "Basic " + apiKey, "/api/v1/players/p1", http.StatusUnauthorized},
		{"missing key", "", "", "/api/v1/players/p1", http.StatusUnauthorized},
		{"healthz is public", "", "", "/healthz", http.StatusOK},
		{"metrics is public", "", "", "/metrics", http.StatusOK},
		{"swagger is public", "", "", "/swagger/index.html", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set(tt.header, tt.value)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusUnauthorized {
				assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
			}
		})
	}
}

func TestAuthMiddleware_DisabledWithoutKey(t *testing.T) {
	h := AuthMiddleware("", nil, NewRateWindow(time.Minute, 100))(okHandler())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/players", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_CountsFailures(t *testing.T) {
	limiter := NewRateWindow(time.Minute, 100)
	h := AuthMiddleware("k", nil, limiter)(okHandler())

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/players/p1", nil)
		req.RemoteAddr = "10.1.1.1:9000"
		h.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.Equal(t, 4, limiter.FailedAuth("10.1.1.1"))
	assert.Equal(t, 1, limiter.FailedAuth("10.2.2.2"))
}

func TestRateLimitMiddleware(t *testing.T) {
	const limit = 20
	limiter, clock := newTestWindow(time.Minute, limit)
	h := RateLimitMiddleware(nil, limiter)(okHandler())

	send := func(remote string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/players/p1", nil)
		req.RemoteAddr = remote
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < limit; i++ {
		require.Equal(t, http.StatusOK, send("192.168.1.100:1234"), "request %d", i)
	}
	assert.Equal(t, http.StatusTooManyRequests, send("192.168.1.100:1234"))
	assert.Equal(t, http.StatusOK, send("192.168.1.101:1234"), "other clients are unaffected")
	assert.Equal(t, limit+1, limiter.Requests("192.168.1.100"))

	clock.advance(time.Minute)
	assert.Equal(t, http.StatusOK, send("192.168.1.100:1234"), "a new window resets the count")
	assert.Equal(t, 1, limiter.Requests("192.168.1.100"))
}

func TestRateWindow_RollsFailuresWithRequests(t *testing.T) {
	limiter, clock := newTestWindow(time.Second, 10)

	limiter.FailedAuth("a")
	limiter.FailedAuth("a")
	clock.advance(999 * time.Millisecond)
	assert.Equal(t, 3, limiter.FailedAuth("a"))

	clock.advance(time.Millisecond)
	assert.Equal(t, 1, limiter.FailedAuth("a"))
	assert.Zero(t, limiter.Requests("b"))
}

func TestProxySet_ClientIP(t *testing.T) {
	tests := []struct {
		name      string
		remote    string
		forwarded string
		trusted   []string
		want      string
	}{
		{"direct", "10.0.0.5:5555", "", nil, "10.0.0.5"},
		{"untrusted forwarded ignored", "10.0.0.5:5555", "1.2.3.4", nil, "10.0.0.5"},
		{"trusted proxy uses rightmost hop", "10.0.0.1:80", "1.2.3.4, 5.6.7.8", []string{"10.0.0.1"}, "5.6.7.8"},
		{"trusted proxy without header", "10.0.0.1:80", "", []string{" 10.0.0.1 "}, "10.0.0.1"},
		{"garbage hop falls back to peer", "10.0.0.1:80", "1.2.3.4, nonsense", []string{"10.0.0.1"}, "10.0.0.1"},
		{"remote without port", "10.0.0.9", "", nil, "10.0.0.9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			if tt.forwarded != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwarded)
			}
			assert.Equal(t, tt.want, newProxySet(tt.trusted).clientIP(req))
		})
	}
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	h := RequestSizeLimitMiddleware(4)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := io.ReadAll(r.Body); err != nil {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		body string
		want int
	}{
		{"0123", http.StatusOK},
		{"0123456789", http.StatusRequestEntityTooLarge},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body)))
		assert.Equal(t, tt.want, rec.Code, "body %q", tt.body)
	}
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	h := SecurityHeadersMiddleware()(okHandler())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	expectedHeaders := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "SAMEORIGIN",
		"X-XSS-Protection":       "1; mode=block",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
	}
	for header, expected := range expectedHeaders {
		assert.Equal(t, expected, rec.Header().Get(header), header)
	}
}
