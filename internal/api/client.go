// Package api implements the HTTP/JSON gateway to the shipment backend.
// Every remote operation in the application goes through one Client carrying
// the base URL and a fixed overall request timeout.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/omarelders/shipdash/internal/common"
)

// DefaultTimeout is the overall request timeout enforced by the gateway.
const DefaultTimeout = 30 * time.Second

// Client talks to the shipment backend. It is safe for concurrent use.
type Client struct {
	httpc   *http.Client
	baseURL string
}

// NewClient creates a gateway client for the given base URL. A zero timeout
// falls back to DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc: &http.Client{
			Timeout: timeout,
		},
	}
}

// Error is a server-rejected request. Detail carries the backend's
// human-readable message when the error body had one; it is surfaced to the
// user verbatim.
type Error struct {
	Detail     string
	StatusCode int
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("server returned status %d", e.StatusCode)
}

// Unwrap maps well-known status codes onto the domain sentinels so callers
// can branch with errors.Is without parsing the detail text.
func (e *Error) Unwrap() error {
	switch e.StatusCode {
	case http.StatusNotFound:
		return common.ErrShipmentNotFound
	case http.StatusForbidden, http.StatusConflict:
		return common.ErrStatusNotAllowed
	}
	return nil
}

// errorBody is the structured error envelope the backend returns.
type errorBody struct {
	Detail string `json:"detail"`
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.send(ctx, http.MethodGet, path, query, nil, "", out)
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	slog.Debug("API request",
		"request_id", requestID,
		"method", method,
		"path", path,
		"query", query.Encode())

	resp, err := c.httpc.Do(req)
	if err != nil {
		var uerr *url.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &uerr) && uerr.Timeout()) {
			return fmt.Errorf("%w: %s %s", common.ErrRequestTimeout, method, path)
		}
		return fmt.Errorf("%w: %v", common.ErrServerUnreachable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// sendJSON marshals body as JSON and issues the request.
func (c *Client) sendJSON(ctx context.Context, method, path string, query url.Values, body, out any) error {
	buf, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}
	return c.send(ctx, method, path, query, bytes.NewReader(buf), "application/json", out)
}

func decodeError(resp *http.Response) error {
	apiErr := &Error{StatusCode: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return apiErr
	}

	var eb errorBody
	if json.Unmarshal(raw, &eb) == nil && eb.Detail != "" {
		apiErr.Detail = eb.Detail
	}
	return apiErr
}
