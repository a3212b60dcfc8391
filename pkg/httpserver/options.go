package httpserver

import (
	"fmt"
	"log/slog"
	"time"
)

// Option configures a Server.
type Option func(*settings)

type settings struct {
	Config
	logger     *slog.Logger
	startHooks []func(addr string)
	stopHooks  []func()
}

// WithAddr sets the listen address. Port 0 picks a free port; the chosen
// address is passed to start hooks.
func WithAddr(addr string) Option {
	if addr == "" {
		panic("WithAddr: addr cannot be empty")
	}
	return func(s *settings) { s.Addr = addr }
}

// WithReadTimeout bounds reading the whole request.
func WithReadTimeout(d time.Duration) Option {
	positive("WithReadTimeout", d)
	return func(s *settings) { s.ReadTimeout = d }
}

// WithWriteTimeout bounds writing the response.
func WithWriteTimeout(d time.Duration) Option {
	positive("WithWriteTimeout", d)
	return func(s *settings) { s.WriteTimeout = d }
}

// WithIdleTimeout bounds the wait for the next keep-alive request.
func WithIdleTimeout(d time.Duration) Option {
	positive("WithIdleTimeout", d)
	return func(s *settings) { s.IdleTimeout = d }
}

// WithShutdownTimeout sets the deadline for graceful shutdown.
func WithShutdownTimeout(d time.Duration) Option {
	positive("WithShutdownTimeout", d)
	return func(s *settings) { s.ShutdownTimeout = d }
}

// WithConfig applies the non-zero fields of cfg.
func WithConfig(cfg Config) Option {
	return func(s *settings) {
		if cfg.Addr != "" {
			s.Addr = cfg.Addr
		}
		if cfg.ReadTimeout > 0 {
			s.ReadTimeout = cfg.ReadTimeout
		}
		if cfg.WriteTimeout > 0 {
			s.WriteTimeout = cfg.WriteTimeout
		}
		if cfg.IdleTimeout > 0 {
			s.IdleTimeout = cfg.IdleTimeout
		}
		if cfg.ShutdownTimeout > 0 {
			s.ShutdownTimeout = cfg.ShutdownTimeout
		}
	}
}

// WithLogger sets the lifecycle logger. Nil keeps logs discarded.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStartHook registers a callback that runs once the server listens. It
// receives the resolved listen address.
func WithStartHook(h func(addr string)) Option {
	if h == nil {
		panic("WithStartHook: nil hook")
	}
	return func(s *settings) { s.startHooks = append(s.startHooks, h) }
}

// WithStopHook registers a callback that runs after graceful shutdown.
func WithStopHook(h func()) Option {
	if h == nil {
		panic("WithStopHook: nil hook")
	}
	return func(s *settings) { s.stopHooks = append(s.stopHooks, h) }
}

func positive(name string, d time.Duration) {
	if d <= 0 {
		panic(fmt.Sprintf("%s: duration must be > 0, got %s", name, d))
	}
}
