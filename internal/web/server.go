package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/emiliopalmerini/ufcompare/internal/domain"
	"github.com/emiliopalmerini/ufcompare/internal/ports"
	"github.com/emiliopalmerini/ufcompare/internal/shared/middleware"
)

//go:embed static/*
var staticFiles embed.FS

type Server struct {
	engine          *domain.Engine
	logger          ports.Logger
	metrics         ports.MetricsExporter
	router          *http.ServeMux
	port            int
	shutdownTimeout time.Duration
}

func NewServer(engine *domain.Engine, port int, logger ports.Logger, metrics ports.MetricsExporter) *Server {
	s := &Server{
		engine:          engine,
		logger:          logger,
		metrics:         metrics,
		router:          http.NewServeMux(),
		port:            port,
		shutdownTimeout: 5 * time.Second,
	}
	s.setupRoutes()
	return s
}

// WithShutdownTimeout sets how long Start waits for in-flight requests.
func (s *Server) WithShutdownTimeout(d time.Duration) *Server {
	if d > 0 {
		s.shutdownTimeout = d
	}
	return s
}

func (s *Server) setupRoutes() {
	// Static files
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to create static filesystem: %v", err))
	}
	s.router.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	// Health check
	s.router.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Pages
	s.router.HandleFunc("GET /{$}", s.handleCompare)

	// API endpoints
	s.router.HandleFunc("GET /api/fighters", s.handleAPIFighters)
	s.router.HandleFunc("GET /api/features", s.handleAPIFeatures)
	s.router.HandleFunc("GET /api/compare", s.handleAPICompare)
	s.router.HandleFunc("GET /api/details", s.handleAPIDetails)

	// Export
	s.router.HandleFunc("GET /api/export/details", s.handleAPIExportDetails)
}

// Handler returns the router wrapped in the middleware stack.
func (s *Server) Handler() http.Handler {
	return middleware.Chain(s.router,
		middleware.RequestID,
		middleware.HTMX,
		middleware.Logging(s.logger),
		middleware.Recoverer(s.logger),
	)
}

// Start serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("starting server", "url", fmt.Sprintf("http://localhost:%d", s.port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// Handle graceful shutdown
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server shutdown error", "error", err)
			return err
		}
		s.logger.Info("server stopped")
		return nil
	})

	return g.Wait()
}
