// Package middleware provides the HTTP middleware stack.
package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/shashiranjanraj/vyapar/pkg/response"
)

// rateWindow is one client's request count inside the current fixed window.
type rateWindow struct {
	count   int
	resetAt time.Time
}

// rateLimiter counts requests per client IP over a fixed window. Each
// RateLimit middleware owns its own limiter, so separate routes can carry
// separate budgets.
type rateLimiter struct {
	mu      sync.Mutex
	max     int
	window  time.Duration
	clients map[string]*rateWindow
}

func newRateLimiter(max int, window time.Duration) *rateLimiter {
	l := &rateLimiter{max: max, window: window, clients: map[string]*rateWindow{}}
	go l.evict()
	return l
}

func (l *rateLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	win, ok := l.clients[ip]
	if !ok || now.After(win.resetAt) {
		l.clients[ip] = &rateWindow{count: 1, resetAt: now.Add(l.window)}
		return true
	}

	win.count++
	return win.count <= l.max
}

// evict drops expired windows so the client map stays bounded on
// long-running servers.
func (l *rateLimiter) evict() {
	ticker := time.NewTicker(l.window)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		l.mu.Lock()
		for ip, win := range l.clients {
			if now.After(win.resetAt) {
				delete(l.clients, ip)
			}
		}
		l.mu.Unlock()
	}
}

// clientIP prefers the first X-Forwarded-For hop, falling back to the
// connection address without its port.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		return strings.TrimSpace(first)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimit limits each client IP to max requests per window. Rejections
// render through the standard response envelope.
func RateLimit(max int, window time.Duration) func(http.Handler) http.Handler {
	limiter := newRateLimiter(max, window)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.allow(clientIP(r)) {
				response.Error(w, http.StatusTooManyRequests, "Too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
