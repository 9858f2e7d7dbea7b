package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	m "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/mockinterview/interview-coach/internal/metrics"
)

// unmatchedRoute is the route label for requests no route matched.
const unmatchedRoute = "unmatched"

// requestLogger logs every request with zap and records its duration.
func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := m.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				elapsed := time.Since(start)
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}

				route := unmatchedRoute
				if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
					route = rctx.RoutePattern()
				}

				metrics.HTTPRequestDuration.
					WithLabelValues(route, r.Method, strconv.Itoa(status)).
					Observe(elapsed.Seconds())

				logger.Info("http request",
					zap.String("request_id", m.GetReqID(r.Context())),
					zap.String("method", r.Method),
					zap.String("route", route),
					zap.String("path", r.URL.Path),
					zap.Int("status", status),
					zap.Int("bytes", ww.BytesWritten()),
					zap.Duration("duration", elapsed),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
