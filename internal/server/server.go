// Package server exposes the age engine over HTTP: the JSON API, the text
// report, the iCalendar feed, and the embedded browser page.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tartampluch/go-lifeclock/internal/config"
	"github.com/tartampluch/go-lifeclock/internal/engine"
	"github.com/tartampluch/go-lifeclock/internal/report"
)

// Server wires the engine's projections to HTTP routes.
type Server struct {
	settings  config.Settings
	clock     engine.Clock
	limiter   *Limiter
	metrics   *Metrics
	renderers map[string]*report.Renderer
}

// New builds a server from validated settings. Report renderers are
// constructed once per supported language; locale problems surface here
// rather than on the first request.
func New(settings config.Settings, clock engine.Clock) (*Server, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if clock == nil {
		clock = engine.RealClock{}
	}

	renderers := make(map[string]*report.Renderer, len(config.SupportedLanguages))
	for _, lang := range config.SupportedLanguages {
		r, err := report.NewRenderer(lang)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", config.ErrLocaleLoad, err)
		}
		renderers[lang] = r
	}

	return &Server{
		settings:  settings,
		clock:     clock,
		limiter:   NewLimiter(settings.RateLimit, settings.RateWindow, clock),
		metrics:   NewMetrics(),
		renderers: renderers,
	}, nil
}

// Router assembles the middleware chain and routes. Exposed separately from
// Start so tests can drive the full chain through httptest.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(s.recovery)
	r.Use(requestID)
	r.Use(s.logging)
	r.Use(securityHeaders)
	r.Use(timeout(config.RequestTimeout))

	// Probes and scrapes bypass the rate limiter.
	r.Get(config.RouteHealth, s.handleHealth)
	r.Method(http.MethodGet, config.RouteMetrics,
		promhttp.HandlerFor(s.metrics.Registry, promhttp.HandlerOpts{}))

	r.Group(func(r chi.Router) {
		r.Use(s.rateLimit)
		r.Get(config.RouteRoot, s.handleIndex)
		r.Get(config.RouteAge, s.handleAge)
		r.Get(config.RouteReport, s.handleReport)
		r.Get(config.RouteCalendar, s.handleCalendar)
	})

	return r
}

// Start runs the HTTP server and blocks until the context is cancelled or
// the listener fails, shutting down gracefully in the former case.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.settings.Addr(),
		Handler:      s.Router(),
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	serverError := make(chan error, 1)

	go func() {
		slog.Info(config.MsgServerListen,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyAddr, srv.Addr,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverError <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info(config.MsgServerStop, config.LogKeyComponent, config.CompServer)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s: %w", config.ErrServerShutdown, err)
		}
		return nil

	case err := <-serverError:
		return fmt.Errorf("%s: %w", config.ErrServerStartup, err)
	}
}
