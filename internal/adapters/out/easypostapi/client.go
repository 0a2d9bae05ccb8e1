package easypostapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"shipping/internal/pkg/errs"
)

const (
	// DefaultBaseURL is the production endpoint of the shipping service.
	DefaultBaseURL = "https://api.easypost.com/v2"

	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "shipping-client"
	headerRequestID  = "X-Request-ID"

	// errorBodyLimit caps how much of an undecodable error body ends up in
	// a RequestError message.
	errorBodyLimit = 200
)

// Client is the authenticated HTTP plumbing shared by all gateways.
// It owns the base URL, the API key, timeouts and request logging; gateways
// own paths, payloads and response mapping.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
	userAgent  string
}

// NewClient creates a Client for the shipping service API.
//
// Parameters:
//   - apiKey: Account key, sent as the basic auth username with a blank password
//   - baseURL: API base, such as DefaultBaseURL (must be non-empty)
//   - timeout: Per-request timeout; zero or negative falls back to 30s
//   - logger: Request logger; nil disables logging
//
// Returns:
//   - *Client: The configured client
//   - error: Validation error if the key or base URL is missing
func NewClient(apiKey string, baseURL string, timeout time.Duration, logger *zap.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, errs.NewValueIsRequiredError("api key")
	}
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("base url")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
		userAgent:  defaultUserAgent,
	}, nil
}

// postForm issues an authenticated POST with a url-encoded body and returns
// the raw response body of a successful round trip.
func (c *Client) postForm(ctx context.Context, path string, form url.Values) ([]byte, error) {
	return c.do(ctx, http.MethodPost, path, strings.NewReader(form.Encode()))
}

// get issues an authenticated GET and returns the raw response body of a
// successful round trip.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

func (c *Client) do(ctx context.Context, method string, path string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, NewRequestErrorWithCause(method, path, err)
	}

	req.SetBasicAuth(c.apiKey, "")
	req.Header.Set("User-Agent", c.userAgent)
	requestID := uuid.NewString()
	req.Header.Set(headerRequestID, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	c.logger.Debug("shipping api request",
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", requestID),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, NewRequestErrorWithCause(method, path, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewRequestErrorWithCause(method, path, err)
	}

	c.logger.Debug("shipping api response",
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, NewRequestError(method, path, resp.StatusCode, remoteErrorMessage(payload))
	}

	return payload, nil
}

// remoteErrorMessage extracts the service's error message from a non-success
// body, falling back to a bounded excerpt of the raw payload.
func remoteErrorMessage(payload []byte) string {
	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}

	if err := json.Unmarshal(payload, &envelope); err == nil && envelope.Error.Message != "" {
		return envelope.Error.Message
	}

	excerpt := strings.TrimSpace(string(payload))
	if len(excerpt) > errorBodyLimit {
		excerpt = excerpt[:errorBodyLimit]
	}
	return excerpt
}

// setFormValue adds a key only for non-empty values. Absent fields are
// omitted from payloads entirely, never sent as empty strings.
func setFormValue(form url.Values, key string, value string) {
	if value != "" {
		form.Set(key, value)
	}
}
