package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/amaumene/mellab/internal/api/handlers"
	"github.com/amaumene/mellab/internal/api/middleware"
	"github.com/amaumene/mellab/internal/config"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Server represents the HTTP server
type Server struct {
	server *http.Server
	logger *logrus.Logger
}

// NewServer creates a new HTTP server
func NewServer(cfg *config.Config, search *handlers.SearchHandler, analyze *handlers.AnalyzeHandler, logger *logrus.Logger) *Server {
	s := &Server{logger: logger}

	s.server = &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      middleware.Logging(NewRouter(search, analyze, logger), logger),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second, // generation can be slow
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// NewRouter configures all HTTP routes
func NewRouter(search *handlers.SearchHandler, analyze *handlers.AnalyzeHandler, logger *logrus.Logger) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.Metrics)

	// Health check
	r.Handle("/health", handlers.NewHealthHandler(logger)).Methods(http.MethodGet)

	r.Handle("/search", search).Methods(http.MethodGet, http.MethodOptions)
	r.Handle("/analyze", analyze).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return r
}

// Start starts the HTTP server
func (s *Server) Start(ctx context.Context) error {
	s.logger.WithField("port", s.server.Addr).Info("Starting HTTP server")

	errChan := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.server.Shutdown(shutdownCtx)
}
