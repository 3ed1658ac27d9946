package discord

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

const (
	healthReadHeaderTimeout = 5 * time.Second
	healthShutdownTimeout   = 5 * time.Second
)

// HTTPServer serves the bot's internal health endpoint
type HTTPServer struct {
	server *http.Server
	bot    *Bot
}

// NewHTTPServer listens on port once Start is called
func NewHTTPServer(port string, bot *Bot) *HTTPServer {
	srv := &HTTPServer{bot: bot}

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Get("/healthz", srv.HandleHealth)

	srv.server = &http.Server{
		Addr:              net.JoinHostPort("", port),
		Handler:           r,
		ReadHeaderTimeout: healthReadHeaderTimeout,
	}
	return srv
}

// Start serves in the background; a listen failure is logged
func (s *HTTPServer) Start() {
	go func() {
		slog.Info("Bot health endpoint listening", "addr", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Bot health endpoint failed", "error", err)
		}
	}()
}

// Stop drains in-flight health checks
func (s *HTTPServer) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), healthShutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		slog.Error("Bot health endpoint shutdown failed", "error", err)
	}
}
