// Package server wires the HTTP routes, middleware chain and lifecycle of the API.
package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/radhe721/Book-Review-api/internal/auth"
	"github.com/radhe721/Book-Review-api/internal/book"
	"github.com/radhe721/Book-Review-api/internal/catalog"
	"github.com/radhe721/Book-Review-api/internal/config"
	"github.com/radhe721/Book-Review-api/internal/httpx"
	"github.com/radhe721/Book-Review-api/internal/platform/metrics"
	"github.com/radhe721/Book-Review-api/internal/review"
	"github.com/radhe721/Book-Review-api/internal/user"
)

// ReadinessFunc reports whether the backing store can serve requests.
type ReadinessFunc func(ctx context.Context) error

type Handlers struct {
	Books   *book.HTTPHandler
	Catalog *catalog.HTTPHandler
	Reviews *review.HTTPHandler
	Users   *user.HTTPHandler
	Auth    *auth.HTTPHandler
}

type Options struct {
	Config        config.Config
	Handlers      Handlers
	Authenticator httpx.Authenticator
	Ready         ReadinessFunc
	Metrics       *metrics.Metrics
	Logger        *log.Logger
}

type Server struct {
	cfg     config.Config
	opts    Options
	logger  *log.Logger
	router  chi.Router
	httpSrv *http.Server
}

func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.New()
	}

	s := &Server{
		cfg:    opts.Config,
		opts:   opts,
		logger: logger,
		router: chi.NewRouter(),
	}
	s.registerRoutes()
	return s
}

// Handler returns the fully wrapped router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until ctx is cancelled or the listener fails. On cancellation it drains
// in-flight requests for at most ShutdownTimeout.
func (s *Server) Start(ctx context.Context) error {
	s.httpSrv = &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  s.cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Printf("server: listening addr=%s", s.cfg.Addr)
		if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		timeout := s.cfg.ShutdownTimeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		s.logger.Printf("server: shutting down timeout=%s", timeout)
		if err := s.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return <-errCh
	case err := <-errCh:
		return err
	}
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}
