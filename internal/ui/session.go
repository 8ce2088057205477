package ui

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/tartampluch/go-lifeclock/internal/config"
	"github.com/tartampluch/go-lifeclock/internal/engine"
)

// Session drives the ticking recomputation for one birth date. At most one
// loop runs at a time; starting over an active session replaces it, and
// Stop returns only after the loop has actually exited.
type Session struct {
	Clock engine.Clock

	// Interval between recomputations. Zero means one second.
	Interval time.Duration

	mu     sync.Mutex
	birth  time.Time
	cancel context.CancelFunc
	done   chan struct{}
}

// NewSession creates an idle session.
func NewSession(clock engine.Clock) *Session {
	if clock == nil {
		clock = engine.RealClock{}
	}
	return &Session{Clock: clock}
}

// BirthDate returns the date of the active session, zero when idle.
func (s *Session) BirthDate() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.birth
}

// Active reports whether a ticking loop is currently running.
func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancel != nil
}

// Start launches the ticking loop for birth. onTick fires immediately and
// then once per interval with a fresh engine result, until Stop is called
// or ctx is cancelled. An already-active session is stopped first.
func (s *Session) Start(ctx context.Context, birth time.Time, onTick func(engine.Result)) {
	s.Stop()

	loopCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	s.mu.Lock()
	s.birth = birth
	s.cancel = cancel
	s.done = done
	s.mu.Unlock()

	interval := s.Interval
	if interval <= 0 {
		interval = time.Second
	}

	slog.Info(config.MsgWatchStart,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyBirthday, birth.Format(config.DateFormatFullDash),
	)

	go func() {
		defer close(done)

		onTick(engine.Compute(birth, s.Clock.Now()))

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-loopCtx.Done():
				return
			case <-ticker.C:
				onTick(engine.Compute(birth, s.Clock.Now()))
			}
		}
	}()
}

// Stop cancels the loop and waits for it to finish. Safe to call on an
// idle session.
func (s *Session) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	done := s.done
	s.cancel = nil
	s.done = nil
	s.birth = time.Time{}
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done

	slog.Info(config.MsgWatchStop, config.LogKeyComponent, config.CompUI)
}
