package hive

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/hheat/hheat/internal/logging"
)

const (
	// DefaultBaseURL is the Hive "beekeeper" API endpoint
	DefaultBaseURL = "https://beekeeper.hivehome.com/1.0/"

	// DefaultTimeout is the default HTTP request timeout
	DefaultTimeout = 30 * time.Second
)

// ErrNoToken is returned when a login response carries no session token.
var ErrNoToken = errors.New("login response did not contain a token")

// Client is an HTTP client for the Hive API
type Client struct {
	// BaseURL is the API root, always ending in "/"
	BaseURL string

	// HTTPClient is the underlying HTTP client
	HTTPClient *http.Client
}

// NewClient creates a client for the production API
func NewClient() *Client {
	return NewClientWithURL(DefaultBaseURL)
}

// NewClientWithURL creates a client with a custom API root
// (e.g., "http://127.0.0.1:8080/1.0/")
func NewClientWithURL(baseURL string) *Client {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// SetTimeout sets the HTTP request timeout
func (c *Client) SetTimeout(timeout time.Duration) {
	c.HTTPClient.Timeout = timeout
}

// Login submits credentials and returns the session token.
func (c *Client) Login(ctx context.Context, creds Credentials) (string, error) {
	req := loginRequest{
		Username: creds.Username,
		Password: creds.Password,
		Devices:  true,
		Products: true,
		Actions:  true,
		Homes:    true,
	}

	body, err := c.do(ctx, http.MethodPost, "global/login", "", req)
	if err != nil {
		return "", err
	}

	var resp loginResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", NewParseError("failed to parse login response", err)
	}
	if resp.Token == "" {
		return "", fmt.Errorf("%w: %s", ErrNoToken, summarize(body))
	}

	logging.Info("Logged in", zap.String("username", creds.Username))
	return resp.Token, nil
}

// Products fetches the product listing using the given session token.
func (c *Client) Products(ctx context.Context, token string) (Listing, error) {
	body, err := c.do(ctx, http.MethodGet, "products?after=", token, nil)
	if err != nil {
		return nil, err
	}

	var listing Listing
	if err := json.Unmarshal(body, &listing); err != nil {
		return nil, NewParseError("failed to parse products response", err)
	}

	logging.Debug("Fetched products", zap.Int("count", len(listing)))
	return listing, nil
}

// UpdateHeating sends a state change to the heating node.
func (c *Client) UpdateHeating(ctx context.Context, token string, deviceID string, update HeatingUpdate) error {
	if deviceID == "" {
		return errors.New("heating device id is empty")
	}
	if update.IsEmpty() {
		return errors.New("heating update is empty")
	}

	path := "nodes/heating/" + url.PathEscape(deviceID)
	if _, err := c.do(ctx, http.MethodPost, path, token, update); err != nil {
		return err
	}

	fields := []zap.Field{zap.String("device_id", deviceID)}
	if update.Target != nil {
		fields = append(fields, zap.Float64("target", *update.Target))
	}
	if update.Mode != "" {
		fields = append(fields, zap.String("mode", string(update.Mode)))
	}
	logging.Info("Heating updated", fields...)
	return nil
}

// do performs a single request and returns the response body.
// A non-2xx status or a JSON object body carrying "error" is returned as an *APIError.
func (c *Client) do(ctx context.Context, method, path, token string, payload any) ([]byte, error) {
	endpoint := c.BaseURL + path

	var reqBody io.Reader
	var bodyLength int
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
		bodyLength = len(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, NewNetworkError(fmt.Sprintf("failed to create %s request", method), err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		// Raw token, no "Bearer" prefix
		req.Header.Set("Authorization", token)
	}

	logging.LogHTTPRequest(method, endpoint, bodyLength)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, NewNetworkError(fmt.Sprintf("%s %s failed", method, path), err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewNetworkError("failed to read response body", err)
	}

	logging.LogHTTPResponse(method, endpoint, resp.StatusCode, len(body))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusError(resp.StatusCode, body)
	}

	if reason := errorReason(body); reason != "" {
		return nil, NewResponseError(resp.StatusCode, reason)
	}

	return body, nil
}

// summarize shortens a response body for error messages.
func summarize(body []byte) string {
	const limit = 200
	text := strings.TrimSpace(string(body))
	if len(text) > limit {
		return text[:limit] + "..."
	}
	return text
}
