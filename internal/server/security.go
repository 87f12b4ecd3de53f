package server

import (
	"crypto/subtle"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/osse101/EmojiKombat_Go/internal/handler"
	"github.com/osse101/EmojiKombat_Go/internal/logger"
	"github.com/osse101/EmojiKombat_Go/internal/metrics"
)

// clientCounters is the per-address tally for the current window
type clientCounters struct {
	requests   int
	failedAuth int
}

// RateWindow counts requests and failed logins per client address over a
// fixed window. Counters reset together when the window rolls over.
type RateWindow struct {
	mu      sync.Mutex
	window  time.Duration
	limit   int
	clients map[string]*clientCounters
	started time.Time
	now     func() time.Time
}

// NewRateWindow returns a window allowing limit requests per address per window
func NewRateWindow(window time.Duration, limit int) *RateWindow {
	rw := &RateWindow{
		window:  window,
		limit:   limit,
		clients: make(map[string]*clientCounters),
		now:     time.Now,
	}
	rw.started = rw.now()
	return rw
}

// counters returns the tally for ip, rolling the window first. Caller holds mu.
func (rw *RateWindow) counters(ip string) *clientCounters {
	if now := rw.now(); now.Sub(rw.started) >= rw.window {
		clear(rw.clients)
		rw.started = now
	}
	c, ok := rw.clients[ip]
	if !ok {
		c = &clientCounters{}
		rw.clients[ip] = c
	}
	return c
}

// Allow records one request from ip and reports whether it is within the limit
func (rw *RateWindow) Allow(ip string) bool {
	rw.mu.Lock()
	defer rw.mu.Unlock()
	c := rw.counters(ip)
	c.requests++
	return c.requests <= rw.limit
}

// FailedAuth records a rejected credential from ip and returns the count so far
func (rw *RateWindow) FailedAuth(ip string) int {
	rw.mu.Lock()
	defer rw.mu.Unlock()
	c := rw.counters(ip)
	c.failedAuth++
	return c.failedAuth
}

// Requests returns the request count for ip in the current window
func (rw *RateWindow) Requests(ip string) int {
	rw.mu.Lock()
	defer rw.mu.Unlock()
	if c, ok := rw.clients[ip]; ok {
		return c.requests
	}
	return 0
}

// proxySet resolves client addresses behind a fixed list of trusted proxies
type proxySet map[string]struct{}

func newProxySet(addrs []string) proxySet {
	set := make(proxySet, len(addrs))
	for _, a := range addrs {
		if a = strings.TrimSpace(a); a != "" {
			set[a] = struct{}{}
		}
	}
	return set
}

// clientIP returns the forwarded client only when the direct peer is trusted.
// The rightmost X-Forwarded-For entry is used since it was added by the proxy.
func (p proxySet) clientIP(r *http.Request) string {
	peer, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		peer = r.RemoteAddr
	}
	if _, trusted := p[peer]; !trusted {
		return peer
	}
	hops := strings.Split(r.Header.Get(HeaderForwardedFor), ",")
	last := strings.TrimSpace(hops[len(hops)-1])
	if net.ParseIP(last) == nil {
		return peer
	}
	return last
}

func isPublicPath(path string) bool {
	for _, prefix := range PublicPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// presentedKey reads the key from X-API-Key or a bearer Authorization header
func presentedKey(r *http.Request) string {
	if key := r.Header.Get(HeaderAPIKey); key != "" {
		return key
	}
	if token, ok := strings.CutPrefix(r.Header.Get(HeaderAuthorization), bearerPrefix); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

// AuthMiddleware requires apiKey on every non-public path. An empty apiKey
// disables authentication.
func AuthMiddleware(apiKey string, trustedProxies []string, limiter *RateWindow) func(http.Handler) http.Handler {
	proxies := newProxySet(trustedProxies)
	want := []byte(apiKey)

	return func(next http.Handler) http.Handler {
		if apiKey == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}
			if subtle.ConstantTimeCompare([]byte(presentedKey(r)), want) == 1 {
				next.ServeHTTP(w, r)
				return
			}

			ip := proxies.clientIP(r)
			log := logger.FromContext(r.Context())
			log.Warn(LogMsgAuthFailed, "ip", ip, "path", r.URL.Path)
			if n := limiter.FailedAuth(ip); n == failedAuthAlertThreshold {
				log.Error(SecurityAlertFailedAuth, "ip", ip, "attempts", n)
			}
			metrics.HTTPRequestsRejected.WithLabelValues(metrics.ReasonUnauthorized).Inc()
			handler.WriteError(w, http.StatusUnauthorized, ErrMsgUnauthorized)
		})
	}
}

// RateLimitMiddleware refuses clients that exceed the window's request limit
func RateLimitMiddleware(trustedProxies []string, limiter *RateWindow) func(http.Handler) http.Handler {
	proxies := newProxySet(trustedProxies)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := proxies.clientIP(r)
			if limiter.Allow(ip) {
				next.ServeHTTP(w, r)
				return
			}
			// one alert per window, on the first refused request
			if limiter.Requests(ip) == limiter.limit+1 {
				logger.FromContext(r.Context()).Error(SecurityAlertHighRate, "ip", ip, "limit", limiter.limit)
			}
			metrics.HTTPRequestsRejected.WithLabelValues(metrics.ReasonRateLimited).Inc()
			handler.WriteError(w, http.StatusTooManyRequests, ErrMsgTooManyRequests)
		})
	}
}

// RequestSizeLimitMiddleware caps request bodies at maxBytes
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// SecurityHeadersMiddleware sets the static browser-hardening headers
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	headers := [][2]string{
		{HeaderContentType, HeaderValueNoSniff},
		{HeaderFrameOptions, HeaderValueSameOrigin},
		{HeaderXSSProtection, HeaderValueXSSBlock},
		{HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin},
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			for _, kv := range headers {
				h.Set(kv[0], kv[1])
			}
			next.ServeHTTP(w, r)
		})
	}
}
