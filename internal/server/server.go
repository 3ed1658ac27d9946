package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/docs"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/database"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/eventlog"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/handler"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/inventory"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/logger"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/metrics"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/middleware"
)

// Options configures the HTTP server
type Options struct {
	Port            int
	Version         string
	TrustedProxies  []string
	MaxRequestBytes int64
	// EventLog serves user history when set
	EventLog        eventlog.Service
}

type Server struct {
	httpServer *http.Server
	dbPool     database.Pool
	svc        inventory.Service
}

// NewServer creates a new Server instance
func NewServer(opts Options, dbPool database.Pool, svc inventory.Service, auth *middleware.Authenticator) *Server {
	if opts.MaxRequestBytes <= 0 {
		opts.MaxRequestBytes = DefaultMaxRequestBytes
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, dbPool, svc, auth),
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool: dbPool,
		svc:    svc,
	}
}

// NewRouter builds the route tree. Chi middleware executes in order defined
// (outermost to innermost).
func NewRouter(opts Options, dbPool database.Pool, svc inventory.Service, auth *middleware.Authenticator) http.Handler {
	r := chi.NewRouter()

	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(opts.MaxRequestBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))
	r.Get("/version", handler.HandleVersion(opts.Version))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(auth.Middleware)

		r.Route("/items", func(r chi.Router) {
			r.Get("/", handler.HandleListItems(svc))
			r.Post("/", handler.HandleCreateItem(svc))
			r.Get("/{itemID}", handler.HandleGetItem(svc))
		})

		r.Route("/users", func(r chi.Router) {
			r.Post("/", handler.HandleProvisionUser(svc))

			r.Route("/{userID}", func(r chi.Router) {
				r.Get("/stats", handler.HandleGetUserStats(svc))
				r.Get("/inventory", handler.HandleGetInventory(svc))
				r.Post("/inventory", handler.HandleAssignItem(svc))
				r.Post("/inventory/{itemID}/actions", handler.HandleActOnItem(svc))
				if opts.EventLog != nil {
					r.Get("/events", handler.HandleGetUserEvents(opts.EventLog))
				}
			})
		})
	})

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func isQuietPath(path string) bool {
	for _, p := range quietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
