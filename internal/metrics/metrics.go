// Package metrics holds the Prometheus collectors of the feedback service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/mockinterview/interview-coach/internal/feedback"
)

const (
	SourceRequest = "request"
	SourceMock    = "mock"
	SourceBackend = "backend"
)

var (
	TransformsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "interview_coach_transforms_total",
			Help: "Total number of feedback reports produced",
		},
		[]string{"source"},
	)

	OverallScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "interview_coach_overall_score",
			Help:    "Overall score of produced feedback reports",
			Buckets: prometheus.LinearBuckets(10, 10, 10),
		},
	)

	ValidationFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "interview_coach_validation_failures_total",
			Help: "Total number of rejected metrics payloads",
		},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "interview_coach_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method", "status"},
	)
)

// ObserveFeedback records one produced report.
func ObserveFeedback(source string, fb *feedback.Result) {
	TransformsTotal.WithLabelValues(source).Inc()
	if fb != nil {
		OverallScore.Observe(float64(fb.OverallScore))
	}
}
