package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"

	"github.com/getmockd/mockdb/pkg/config"
	"github.com/getmockd/mockdb/pkg/logging"
	"github.com/getmockd/mockdb/pkg/metrics"
	"github.com/getmockd/mockdb/pkg/router"
	"github.com/getmockd/mockdb/pkg/template"
)

// Server is the mock HTTP server.
type Server struct {
	cfg            config.ServerConfig
	resolver       *router.Resolver
	log            *slog.Logger
	metrics        *metrics.Metrics
	templateEngine *template.Engine
	handler        http.Handler
	httpServer     *http.Server
	listener       net.Listener
	mu             sync.Mutex
	running        bool
	serveErr       chan error
}

// ServerOption is a functional option for configuring a Server.
type ServerOption func(*Server)

// WithLogger sets the operational logger for the server.
func WithLogger(log *slog.Logger) ServerOption {
	return func(s *Server) {
		if log != nil {
			s.log = log
		}
	}
}

// WithMetrics records request metrics into m.
func WithMetrics(m *metrics.Metrics) ServerOption {
	return func(s *Server) {
		s.metrics = m
	}
}

// WithTemplate sets the engine used to render static bodies.
func WithTemplate(e *template.Engine) ServerOption {
	return func(s *Server) {
		s.templateEngine = e
	}
}

// NewServer creates a Server answering requests through resolver.
func NewServer(cfg config.ServerConfig, resolver *router.Resolver, opts ...ServerOption) *Server {
	if resolver == nil {
		resolver = router.NewResolver(nil, nil)
	}
	s := &Server{
		cfg:      cfg,
		resolver: resolver,
		log:      logging.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.metrics.SetMounts(resolver.Registry().Len())
	h := NewHandler(resolver,
		WithHandlerLogger(s.log),
		WithMaxBodySize(cfg.MaxBodySize),
		WithTemplateEngine(s.templateEngine),
	)
	s.handler = ObserveMiddleware(h, s.log, s.metrics)
	return s
}

// Handler returns the server's HTTP handler, including logging and metrics.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start binds the listener and serves in the background.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return errors.New("server is already running")
	}

	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	s.listener = ln
	s.httpServer = &http.Server{
		Handler:      s.handler,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}
	s.serveErr = make(chan error, 1)
	s.running = true

	s.log.Info("starting HTTP server", "addr", ln.Addr().String())
	go func(srv *http.Server, errc chan<- error) {
		err := srv.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		if err != nil {
			s.log.Error("HTTP server error", "error", err)
		}
		errc <- err
		close(errc)
	}(s.httpServer, s.serveErr)

	return nil
}

// Addr returns the bound listener address, or "" before Start.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// IsRunning reports whether the server is serving.
func (s *Server) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Shutdown stops accepting connections and waits for in-flight requests,
// bounded by ctx.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return nil
	}
	s.running = false

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("HTTP shutdown: %w", err)
	}
	return <-s.serveErr
}

// Run starts the server and blocks until ctx is done or serving fails.
// On cancellation it shuts down within the configured ShutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	if err := s.Start(); err != nil {
		return err
	}

	s.mu.Lock()
	errc := s.serveErr
	s.mu.Unlock()

	select {
	case err := <-errc:
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
		return err
	case <-ctx.Done():
	}

	timeout := s.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = config.DefaultServerConfig().ShutdownTimeout
	}
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()
	s.log.Info("shutting down HTTP server")
	return s.Shutdown(shutdownCtx)
}
