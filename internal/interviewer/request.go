package interviewer

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

const (
	contentType     = "application/json"
	contentEncoding = "gzip"
	maxErrorBody    = 4 << 10
)

// APIError is returned for non-2xx responses from the backend.
type APIError struct {
	StatusCode int
	Status     string
	// Detail is the backend's "detail" message, when it sent one.
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend returned %s: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("bad status: %s", e.Status)
}

// postJSON sends payload as JSON and decodes a 2xx response into target.
func (c *Client) postJSON(ctx context.Context, url string, payload, target any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}

	req = c.setHeaders(req)
	req.Header.Set("Content-Type", contentType)

	return c.do(req, target)
}

// postFile uploads the file at path under fileField together with plain form fields.
func (c *Client) postFile(ctx context.Context, url, fileField, path string, fields map[string]string, target any) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	var b bytes.Buffer
	w := multipart.NewWriter(&b)

	part, err := w.CreateFormFile(fileField, filepath.Base(path))
	if err != nil {
		return err
	}
	if _, err = io.Copy(part, file); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	for key, val := range fields {
		if err := w.WriteField(key, val); err != nil {
			return err
		}
	}
	if err := w.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &b)
	if err != nil {
		return err
	}

	req = c.setHeaders(req)
	req.Header.Set("Content-Type", w.FormDataContentType())

	return c.do(req, target)
}

func (c *Client) do(req *http.Request, target any) error {
	c.logger.Debug("make request", zap.String("url", req.URL.String()), zap.String("method", req.Method))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	c.logger.Debug("got response from backend", zap.String("url", req.URL.String()), zap.Int("status", resp.StatusCode))

	reader, err := bodyReader(resp)
	if err != nil {
		return err
	}
	defer reader.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseAPIError(resp, reader)
	}

	if target == nil {
		return nil
	}

	if err := json.NewDecoder(reader).Decode(target); err != nil {
		return fmt.Errorf("invalid response from server: %w", err)
	}

	return nil
}

func bodyReader(resp *http.Response) (io.ReadCloser, error) {
	if resp.Header.Get("Content-Encoding") != "gzip" {
		return io.NopCloser(resp.Body), nil
	}
	return gzip.NewReader(resp.Body)
}

func parseAPIError(resp *http.Response, body io.Reader) error {
	apiErr := &APIError{StatusCode: resp.StatusCode, Status: resp.Status}

	data, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil || len(data) == 0 {
		return apiErr
	}

	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(data, &payload); err != nil || len(payload.Detail) == 0 {
		return apiErr
	}

	var detail string
	if err := json.Unmarshal(payload.Detail, &detail); err == nil {
		apiErr.Detail = detail
	} else {
		// FastAPI validation failures carry a list of objects.
		apiErr.Detail = string(payload.Detail)
	}

	return apiErr
}

func (c *Client) setHeaders(req *http.Request) *http.Request {
	if c.token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", contentType)
	req.Header.Set("Accept-Encoding", contentEncoding)

	return req
}
