package govee

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"goveectl/internal/logging"
)

const (
	// DefaultBaseURL is the production endpoint of the developer API.
	DefaultBaseURL = "https://developer-api.govee.com/v1"

	// DefaultTimeout bounds every API request.
	DefaultTimeout = 20 * time.Second

	apiKeyHeader = "Govee-API-Key"
)

// Client talks to the Govee developer cloud API.
type Client struct {
	// BaseURL is the API root, e.g. "https://developer-api.govee.com/v1".
	BaseURL string

	// APIKey authenticates every request. Requests fail with an auth
	// error when it is empty.
	APIKey string

	// HTTPClient is the underlying HTTP client.
	HTTPClient *http.Client
}

// NewClient creates an API client. Empty baseURL selects the
// production endpoint.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		BaseURL:    baseURL,
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// ListDevices enumerates the devices registered to the account.
func (c *Client) ListDevices(ctx context.Context) ([]DeviceInfo, error) {
	body, err := c.do(ctx, http.MethodGet, "/devices", nil)
	if err != nil {
		return nil, err
	}

	var resp devicesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, NewParseError("invalid device listing response", err)
	}
	return resp.Data.Devices, nil
}

// Control sends one command to one device and returns the raw API
// response. Sends are at-most-once; failures are returned, never
// retried.
func (c *Client) Control(ctx context.Context, id, model string, cmd Command) (json.RawMessage, error) {
	payload, err := json.Marshal(controlRequest{Device: id, Model: model, Cmd: cmd})
	if err != nil {
		return nil, NewParseError("cannot encode control request", err)
	}
	return c.do(ctx, http.MethodPut, "/devices/control", payload)
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte) (json.RawMessage, error) {
	if c.APIKey == "" {
		return nil, NewAuthError("missing API key; set the GOVEE_API_KEY environment variable")
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, NewNetworkError("cannot create request", err)
	}
	req.Header.Set(apiKeyHeader, c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, NewNetworkError(fmt.Sprintf("%s %s failed", method, path), err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewNetworkError("cannot read response body", err)
	}

	logging.Debug("api request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, NewAuthError("API key was rejected")
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, NewRateLimitError("rate limit exceeded, wait before retrying")
	case resp.StatusCode != http.StatusOK:
		return nil, NewHTTPError(resp.StatusCode, fmt.Sprintf("HTTP %d: %s", resp.StatusCode, truncate(data, 200)))
	}

	if !json.Valid(data) {
		return nil, NewParseError("response is not valid JSON", nil)
	}
	return json.RawMessage(data), nil
}

func truncate(data []byte, n int) string {
	if len(data) > n {
		return string(data[:n]) + "..."
	}
	return string(data)
}
