package interviewer

import (
	"context"
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/mockinterview/interview-coach/internal/feedback"
)

// ErrNoReport is returned when the backend answers but has no report to give.
var ErrNoReport = errors.New("no report available")

type Report struct {
	Success bool
	Metrics feedback.RawMetrics
	// Details is the backend's own report section, kept as sent.
	Details map[string]any
	// Abbreviated is set when the interview ended before a full assessment.
	Abbreviated bool
}

type reportRequest struct {
	UserID int `json:"user_id" validate:"required,gt=0"`
}

type reportResponse struct {
	Success     *bool          `json:"success"`
	Message     string         `json:"message"`
	Metrics     map[string]any `json:"metrics"`
	Report      map[string]any `json:"report"`
	Abbreviated bool           `json:"abbreviated_interview"`
}

// GenerateReport asks the backend to evaluate the user's last interview.
func (c *Client) GenerateReport(ctx context.Context, userID int) (*Report, error) {
	req := reportRequest{UserID: userID}
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid report request: %w", err)
	}

	var resp reportResponse
	if err := c.postJSON(ctx, c.endpoint(generateReportPath), req, &resp); err != nil {
		return nil, fmt.Errorf("generate report: %w", err)
	}

	if resp.Success != nil && !*resp.Success {
		if resp.Message != "" {
			return nil, fmt.Errorf("%w: %s", ErrNoReport, resp.Message)
		}
		return nil, ErrNoReport
	}

	metrics, err := DecodeMetrics(resp.Metrics)
	if err != nil {
		return nil, fmt.Errorf("decode report metrics: %w", err)
	}

	details := resp.Report
	if details == nil {
		details = make(map[string]any)
	}

	return &Report{
		Success:     true,
		Metrics:     metrics,
		Details:     details,
		Abbreviated: resp.Abbreviated,
	}, nil
}

// DecodeMetrics converts a loosely typed metrics object into RawMetrics.
// Numbers sent as strings are accepted.
func DecodeMetrics(raw map[string]any) (feedback.RawMetrics, error) {
	var metrics feedback.RawMetrics
	if len(raw) == 0 {
		return metrics, nil
	}

	cfg := &mapstructure.DecoderConfig{
		Result:           &metrics,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
	}

	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return metrics, err
	}

	if err := decoder.Decode(raw); err != nil {
		return metrics, err
	}

	return metrics, nil
}
