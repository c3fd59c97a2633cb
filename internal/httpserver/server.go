// Package httpserver exposes the read-only operational endpoints of the
// syncer: Prometheus metrics, a database health check and quota usage.
package httpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"creator_sync/internal/domain"
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

type QuotaReporter interface {
	Summaries(ctx context.Context) ([]domain.QuotaSummary, error)
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
}

// Server is a suture service; every Serve call listens on a fresh
// http.Server because a shut down one cannot be restarted.
type Server struct {
	cfg     Config
	handler http.Handler
	logger  *slog.Logger
}

func New(cfg Config, db Pinger, quota QuotaReporter, logger *slog.Logger) *Server {
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}
	logger = logger.With("component", "http")
	return &Server{
		cfg:     cfg,
		handler: NewRouter(db, quota, logger),
		logger:  logger,
	}
}

func NewRouter(db Pinger, quota QuotaReporter, logger *slog.Logger) http.Handler {
	h := &handlers{db: db, quota: quota, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Get("/healthz", h.health)
	r.Get("/quota", h.quotaSummaries)

	return r
}

func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("ops server listening", "addr", s.cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		// the serve context is already cancelled
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown failed: %w", err)
		}
		<-errCh
		return ctx.Err()
	}
}

func (s *Server) String() string {
	return "http-server"
}

type handlers struct {
	db     Pinger
	quota  QuotaReporter
	logger *slog.Logger
}

type healthResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Warn("health check failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable", Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

func (h *handlers) quotaSummaries(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.quota.Summaries(r.Context())
	if err != nil {
		h.logger.Error("failed to read quota usage", "error", err)
		writeJSON(w, http.StatusInternalServerError, healthResponse{Status: "error", Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
