// Package interviewer is a client for the mock-interview backend: resume
// upload, the interview chat and the evaluation report.
package interviewer

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const (
	DefaultAPIURL  = "http://localhost:8000"
	DefaultTimeout = 30 * time.Second
	userAgent      = "mockinterview/interview-coach"

	uploadResumePath   = "/api/upload-resume"
	startInterviewPath = "/api/start-interview"
	chatPath           = "/api/chat"
	generateReportPath = "/api/generate-report"
)

var validate = validator.New()

type Client struct {
	token      string
	logger     *zap.Logger
	HTTPClient *http.Client
	UserAgent  string
	APIURL     string
}

// New returns a client for the backend at apiURL. The token is optional and
// sent as a bearer token when set.
func New(logger *zap.Logger, apiURL, token string) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	apiURL = strings.TrimRight(strings.TrimSpace(apiURL), "/")
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}

	return &Client{
		token:  strings.TrimSpace(token),
		APIURL: apiURL,
		HTTPClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		logger:    logger,
		UserAgent: userAgent,
	}
}

func (c *Client) endpoint(path string) string {
	return c.APIURL + path
}
