package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	m "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mockinterview/interview-coach/internal/feedback"
	"github.com/mockinterview/interview-coach/internal/logger"
	"github.com/mockinterview/interview-coach/internal/metrics"
	"github.com/mockinterview/interview-coach/internal/schema"
)

type feedbackResp struct {
	ID        string          `json:"id"`
	Feedback  feedback.Result `json:"feedback"`
	Narrative string          `json:"narrative,omitempty"`
}

type errResp struct {
	Error  string              `json:"error"`
	Fields []schema.FieldError `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) createFeedback(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		code := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			code = http.StatusRequestEntityTooLarge
		}
		writeJSON(w, code, errResp{Error: err.Error()})
		return
	}

	if err := schema.ValidateRawMetrics(body); err != nil {
		metrics.ValidationFailures.Inc()

		var validationErr *schema.ValidationError
		if errors.As(err, &validationErr) {
			writeJSON(w, http.StatusBadRequest, errResp{Error: "invalid metrics", Fields: validationErr.Errors})
			return
		}
		writeJSON(w, http.StatusBadRequest, errResp{Error: err.Error()})
		return
	}

	var raw feedback.RawMetrics
	if err := json.Unmarshal(body, &raw); err != nil {
		metrics.ValidationFailures.Inc()
		writeJSON(w, http.StatusBadRequest, errResp{Error: err.Error()})
		return
	}

	s.respond(w, r, metrics.SourceRequest, raw)
}

func (s *Server) mockFeedback(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, metrics.SourceMock, feedback.MockMetrics())
}

func (s *Server) respond(w http.ResponseWriter, r *http.Request, source string, raw feedback.RawMetrics) {
	fb := feedback.Transform(raw)
	metrics.ObserveFeedback(source, &fb)

	resp := feedbackResp{ID: uuid.NewString(), Feedback: fb}

	log := s.logger.With(zap.String("request_id", m.GetReqID(r.Context())), zap.String("feedback_id", resp.ID))
	log.Debug("feedback produced", logger.FeedbackFields("", &fb)...)

	if wantNarrative(r) {
		resp.Narrative = s.narrate(r.Context(), log, &fb)
	}

	writeJSON(w, http.StatusOK, resp)
}

// narrate returns an empty string when no narrator is configured or it fails;
// the feedback itself is always returned.
func (s *Server) narrate(ctx context.Context, log *zap.Logger, fb *feedback.Result) string {
	if s.narrator == nil {
		return ""
	}

	ctx, cancel := context.WithTimeout(ctx, narrateTimeout)
	defer cancel()

	narrative, err := s.narrator.Narrate(ctx, fb)
	if err != nil {
		log.Warn("narrative failed", zap.Error(err))
		return ""
	}

	return narrative.Text
}

func wantNarrative(r *http.Request) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get("narrative"))
	return err == nil && v
}
