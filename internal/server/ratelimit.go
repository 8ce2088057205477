package server

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/tartampluch/go-lifeclock/internal/engine"
)

// bucket tracks one client's request count inside the current fixed window.
type bucket struct {
	windowStart time.Time
	count       int
}

// Limiter is an in-memory fixed-window rate limiter keyed by client IP.
// A window that has elapsed resets on the next request, so idle clients
// cost nothing beyond their map entry until pruning.
type Limiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	clock   engine.Clock
	buckets map[string]*bucket
}

// NewLimiter creates a limiter admitting up to limit requests per window
// for each distinct client IP.
func NewLimiter(limit int, window time.Duration, clock engine.Clock) *Limiter {
	return &Limiter{
		limit:   limit,
		window:  window,
		clock:   clock,
		buckets: make(map[string]*bucket),
	}
}

// Allow records one request for the given key and reports whether it fits
// in the current window, along with the remaining allowance.
func (l *Limiter) Allow(key string) (allowed bool, remaining int) {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok || now.Sub(b.windowStart) >= l.window {
		b = &bucket{windowStart: now}
		l.buckets[key] = b
		l.pruneLocked(now)
	}

	if b.count >= l.limit {
		return false, 0
	}
	b.count++
	return true, l.limit - b.count
}

// pruneLocked drops buckets whose window has long expired. Called with the
// mutex held, piggybacking on window rollovers to bound map growth.
func (l *Limiter) pruneLocked(now time.Time) {
	for key, b := range l.buckets {
		if now.Sub(b.windowStart) >= 2*l.window {
			delete(l.buckets, key)
		}
	}
}

// Limit returns the configured per-window allowance.
func (l *Limiter) Limit() int {
	return l.limit
}

// clientIP extracts the remote host, falling back to the raw RemoteAddr
// when it carries no port.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
