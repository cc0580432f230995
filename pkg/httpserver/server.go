package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/dmitrymomot/credportal/pkg/logger"
)

// Server runs one http.Server with graceful, drain-aware shutdown.
// A Server serves at most once.
type Server struct {
	cfg Config
	log *slog.Logger

	mu     sync.Mutex
	srv    *http.Server
	closed bool

	draining    atomic.Bool
	once        sync.Once
	shutdownErr error
}

// New returns a Server for cfg. Unset Config fields take DefaultConfig values.
func New(cfg Config, opts ...Option) *Server {
	s := &Server{
		cfg: cfg.withDefaults(),
		log: logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("httpserver"))
	return s
}

// Run listens on Config.Addr and serves handler until ctx is cancelled or the
// process receives SIGINT or SIGTERM. Listen failures are joined with ErrStart.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return errors.Join(ErrStart, err)
	}
	return s.Serve(ctx, ln, handler)
}

// Serve is Run on an existing listener, which it takes ownership of.
// It returns nil after a graceful stop.
func (s *Server) Serve(ctx context.Context, ln net.Listener, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	s.mu.Lock()
	switch {
	case s.closed:
		s.mu.Unlock()
		_ = ln.Close()
		return errors.Join(ErrStart, http.ErrServerClosed)
	case s.srv != nil:
		s.mu.Unlock()
		_ = ln.Close()
		return errors.Join(ErrStart, ErrAlreadyRunning)
	}
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: s.cfg.ReadHeaderTimeout,
		ReadTimeout:       s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
		IdleTimeout:       s.cfg.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(s.log.Handler(), slog.LevelWarn),
	}
	s.srv = srv
	s.mu.Unlock()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	s.log.Info("http server listening", slog.String("addr", ln.Addr().String()))

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("http server failed", logger.Error(err))
			return errors.Join(ErrStart, err)
		}
		// Shutdown was called directly; wait for it to finish.
		err = s.Shutdown(context.Background())
		s.log.Info("http server stopped")
		return err
	case <-ctx.Done():
	}

	err := s.Shutdown(context.Background())
	<-errCh
	s.log.Info("http server stopped")
	return err
}

// Shutdown marks the server as draining, waits Config.DrainDelay, then stops
// accepting connections and waits up to Config.ShutdownTimeout for in-flight
// requests. Repeated calls return the result of the first one. Calling it
// before Serve prevents the server from starting.
func (s *Server) Shutdown(ctx context.Context) error {
	s.once.Do(func() {
		s.draining.Store(true)

		if d := s.cfg.DrainDelay; d > 0 {
			s.log.Info("http server draining", slog.Duration("drain_delay", d))
			t := time.NewTimer(d)
			select {
			case <-t.C:
			case <-ctx.Done():
			}
			t.Stop()
		}

		s.mu.Lock()
		srv := s.srv
		s.closed = true
		s.mu.Unlock()
		if srv == nil {
			return
		}

		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			s.log.Warn("graceful shutdown incomplete", logger.Error(err))
			s.shutdownErr = errors.Join(ErrShutdown, err)
		}
	})
	return s.shutdownErr
}

// Ready reports whether the server should receive traffic. It has the
// signature of a readiness Check and fails with ErrNotRunning before Serve and
// ErrDraining once Shutdown has begun.
func (s *Server) Ready(context.Context) error {
	if s.draining.Load() {
		return ErrDraining
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.srv == nil {
		return ErrNotRunning
	}
	return nil
}
