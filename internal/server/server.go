package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"wordlearning/internal/middleware"

	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/net/netutil"
)

// Config holds HTTP server settings
type Config struct {
	Addr           string
	MaxConnections int
}

// Server owns the HTTP listener and middleware chain
type Server struct {
	cfg        Config
	httpServer *http.Server
	logger     *zap.Logger
}

// NewServer wraps the router with CORS and the request middlewares
func NewServer(cfg Config, router http.Handler, logger *zap.Logger) *Server {
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{middleware.RequestIDHeader},
	}).Handler(router)

	handler := middleware.Chain(corsHandler,
		middleware.RequestID(),
		middleware.AccessLog(logger),
		middleware.Recover(logger),
	)

	return &Server{
		cfg: cfg,
		httpServer: &http.Server{
			Addr:              cfg.Addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		logger: logger,
	}
}

// Handler returns the fully wrapped handler
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start listens on the configured address and serves until shutdown
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ln)
}

// Serve serves on ln, capping concurrent connections when configured
func (s *Server) Serve(ln net.Listener) error {
	if s.cfg.MaxConnections > 0 {
		ln = netutil.LimitListener(ln, s.cfg.MaxConnections)
	}

	s.logger.Info("HTTP server starting",
		zap.String("addr", ln.Addr().String()),
		zap.Int("max_connections", s.cfg.MaxConnections),
	)

	if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve HTTP: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}
