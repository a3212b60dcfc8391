package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/dmitrymomot/coerce/pkg/logger"
)

// Server runs an http.Server until its context is cancelled and then shuts it
// down within the configured deadline.
type Server struct {
	cfg settings
	log *slog.Logger

	mu       sync.Mutex
	srv      *http.Server
	shutdown sync.Once
	stopErr  error
}

// DefaultConfig holds the values New starts from.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		ReadTimeout:     30 * time.Second,
		WriteTimeout:    30 * time.Second,
		IdleTimeout:     120 * time.Second,
		ShutdownTimeout: 5 * time.Second,
	}
}

// New returns a Server configured by opts on top of DefaultConfig.
func New(opts ...Option) *Server {
	cfg := settings{Config: DefaultConfig()}
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Server{
		cfg: cfg,
		log: log.With(logger.Component("httpserver")),
	}
}

// NewFromConfig is New with the non-zero fields of cfg applied before opts.
func NewFromConfig(cfg Config, opts ...Option) *Server {
	return New(append([]Option{WithConfig(cfg)}, opts...)...)
}

// Run listens on the configured address and serves handler until ctx is
// done or Shutdown is called. A nil handler answers 404 to everything.
// Listen and serve failures are joined with ErrStart.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	s.mu.Lock()
	if s.srv != nil {
		s.mu.Unlock()
		return errors.Join(ErrStart, ErrAlreadyRunning)
	}
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      handler,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  s.cfg.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}
	s.srv = srv
	s.mu.Unlock()

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		s.log.Error("http server failed to listen", slog.String("addr", srv.Addr), logger.Error(err))
		return errors.Join(ErrStart, err)
	}

	addr := ln.Addr().String()
	s.log.Info("http server started", slog.String("addr", addr))
	for _, h := range s.cfg.startHooks {
		h(addr)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case <-ctx.Done():
		if err := s.Shutdown(context.WithoutCancel(ctx)); err != nil {
			<-errCh
			return err
		}
		err = <-errCh
	case err = <-errCh:
	}

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.log.Error("http server failed", logger.Error(err))
		return errors.Join(ErrStart, err)
	}
	s.log.Info("http server stopped")
	return nil
}

// Shutdown stops a running server gracefully, waiting at most the shutdown
// timeout for in-flight requests. Only the first call has an effect; later
// calls return its result. Calling it before Run is a no-op.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()
	if srv == nil {
		return nil
	}

	s.shutdown.Do(func() {
		ctx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			s.log.Warn("graceful shutdown interrupted",
				logger.Error(err),
				logger.Duration(s.cfg.ShutdownTimeout),
			)
			s.stopErr = errors.Join(ErrShutdown, err)
		}
		for _, h := range s.cfg.stopHooks {
			h()
		}
	})
	return s.stopErr
}
