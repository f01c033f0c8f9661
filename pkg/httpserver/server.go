// Package httpserver wraps net/http with graceful shutdown. The server
// stops on SIGINT/SIGTERM or when the run context is cancelled, draining
// in-flight requests within the configured shutdown timeout.
package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

var (
	// ErrStart indicates that the server failed to start or serve.
	ErrStart = errors.New("failed to start HTTP server")
	// ErrShutdown indicates that graceful shutdown failed.
	ErrShutdown = errors.New("failed to shutdown HTTP server gracefully")
)

// Server runs one http.Server with graceful shutdown. The zero value is not
// usable; construct with New.
type Server struct {
	cfg  Config
	log  *slog.Logger
	srv  *http.Server
	once sync.Once
}

// New returns a server configured from cfg. A nil logger disables logging.
func New(cfg Config, log *slog.Logger) *Server {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Server{cfg: cfg, log: log}
}

// Run starts listening and blocks until shutdown. It returns nil on clean
// shutdown, or the serve error wrapped with ErrStart.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}
	s.srv = &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      handler,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  s.cfg.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", slog.String("addr", s.cfg.Addr))
		errCh <- s.srv.ListenAndServe()
	}()

	var runErr error
	select {
	case <-ctx.Done():
		s.log.Info("shutting down server")
		if err := s.Shutdown(context.Background()); err != nil {
			return err
		}
		runErr = <-errCh
	case runErr = <-errCh:
	}

	if runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
		return errors.Join(ErrStart, runErr)
	}
	return nil
}

// Shutdown stops the server gracefully. Safe for repeated calls.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	s.once.Do(func() {
		if s.srv == nil {
			return
		}
		ctx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
		defer cancel()
		err = s.srv.Shutdown(ctx)
	})

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Join(ErrShutdown, err)
	}
	return nil
}
