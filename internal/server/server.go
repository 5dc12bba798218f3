// Package server wires handlers, middleware and the HTTP listener.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/postboard/postboard/internal/server/handlers"
	"github.com/postboard/postboard/internal/server/middleware"
)

// Handlers bundles the HTTP handlers the server routes to.
type Handlers struct {
	Auth     *handlers.AuthHandler
	Posts    *handlers.PostsHandler
	External *handlers.ExternalHandler
	Health   *handlers.HealthHandler
}

// Server is the HTTP server for the posting service.
type Server struct {
	logger *slog.Logger
	http   *http.Server
}

// New builds the route table and returns a server ready to run.
func New(logger *slog.Logger, addr string, h Handlers) *Server {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /signup", h.Auth.Signup)
	mux.HandleFunc("POST /login", h.Auth.Login)

	mux.HandleFunc("POST /posts", h.Posts.Create)
	mux.HandleFunc("GET /posts", h.Posts.List)
	mux.HandleFunc("PUT /posts/{id}", h.Posts.Update)
	mux.HandleFunc("DELETE /posts/{id}", h.Posts.Delete)
	mux.HandleFunc("POST /posts/{id}/like", h.Posts.Like)
	mux.HandleFunc("POST /posts/{id}/dislike", h.Posts.Dislike)

	mux.HandleFunc("GET /screenshot/{url}", h.External.Screenshot)
	mux.HandleFunc("POST /send-email", h.External.SendEmail)

	mux.HandleFunc("GET /health", h.Health.Health)

	handler := middleware.Recovery(logger)(middleware.Logging(logger)(mux))

	return &Server{
		logger: logger,
		http: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Handler returns the root handler, exposed for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("server listening", slog.String("addr", s.http.Addr))
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.logger.Info("shutting down server")
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	return nil
}
