// Package server exposes the feedback transformer over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	m "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/mockinterview/interview-coach/internal/ai"
)

const (
	DefaultAddr = ":8080"

	maxBodyBytes    = 1 << 20
	shutdownTimeout = 10 * time.Second
	narrateTimeout  = 30 * time.Second
)

type Server struct {
	logger   *zap.Logger
	narrator ai.Narrator
}

// New returns a Server. narrator may be nil, in which case narrative
// requests are ignored.
func New(logger *zap.Logger, narrator ai.Narrator) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{logger: logger, narrator: narrator}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(m.RequestID, m.RealIP, requestLogger(s.logger), m.Recoverer)

	r.Post("/api/feedback", s.createFeedback)
	r.Get("/api/feedback/mock", s.mockFeedback)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	if addr == "" {
		addr = DefaultAddr
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
