package server

import (
	"context"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/tartampluch/go-lifeclock/internal/config"
)

type requestIDKey struct{}

// RequestIDFromContext retrieves the request ID set by the middleware chain.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

// requestID tags every request with a unique ID, honoring one supplied by
// the client, and echoes it back in the response headers.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(config.HeaderRequestID)
		if id == "" {
			id = uuid.New().String()
		}

		ctx := context.WithValue(r.Context(), requestIDKey{}, id)
		w.Header().Set(config.HeaderRequestID, id)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// recovery converts a panic anywhere down the chain into an opaque 500.
// The detail goes to the log, never to the client.
func (s *Server) recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error(config.MsgEngineRecovered,
					config.LogKeyComponent, config.CompServer,
					config.LogKeyPanic, rec,
					config.LogKeyPath, r.URL.Path,
					config.LogKeyRequestID, RequestIDFromContext(r.Context()),
					"stack", string(debug.Stack()),
				)
				s.metrics.ComputeFailures.Inc()
				http.Error(w, config.MsgInternalErr, http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// statusWriter captures the status code for the request log and metrics.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// logging emits one structured line per request and feeds the counters.
func (s *Server) logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		elapsed := time.Since(start)
		slog.Info(config.MsgRequestDone,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyMethod, r.Method,
			config.LogKeyPath, r.URL.Path,
			config.LogKeyStatus, sw.status,
			config.LogKeyDuration, elapsed.Milliseconds(),
			config.LogKeyRequestID, RequestIDFromContext(r.Context()),
			config.LogKeyRemoteIP, clientIP(r),
		)

		s.metrics.RequestsTotal.
			WithLabelValues(r.URL.Path, strconv.Itoa(sw.status)).Inc()
		s.metrics.RequestDuration.
			WithLabelValues(r.URL.Path).Observe(elapsed.Seconds())
	})
}

// securityHeaders applies the baseline response hardening to every route.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set(config.HeaderXContentType, config.MimeNoSniff)
		h.Set(config.HeaderFrameOptions, config.FrameDeny)
		h.Set(config.HeaderCacheControl, config.CacheNoStore)
		next.ServeHTTP(w, r)
	})
}

// rateLimit rejects requests beyond the per-IP window allowance with 429.
func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		allowed, remaining := s.limiter.Allow(ip)

		w.Header().Set(config.HeaderRateLimit, strconv.Itoa(s.limiter.Limit()))
		w.Header().Set(config.HeaderRateRemaining, strconv.Itoa(remaining))

		if !allowed {
			slog.Warn(config.MsgRateExceeded,
				config.LogKeyComponent, config.CompServer,
				config.LogKeyRemoteIP, ip,
				config.LogKeyPath, r.URL.Path,
			)
			s.metrics.RateLimitedHits.Inc()
			w.Header().Set(config.HeaderRetryAfter, config.RetryAfterSeconds)
			http.Error(w, config.MsgRateLimited, http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// timeout bounds each request with a context deadline so a stalled handler
// cannot hold a connection open indefinitely.
func timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
