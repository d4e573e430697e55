package rest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"ecm-connector/configs"
	"ecm-connector/internal/adapters/output/httpx"
	"ecm-connector/internal/domain"
	"ecm-connector/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// Compile-time check that Client implements output.RESTClient
var _ output.RESTClient = (*Client)(nil)

var allowedMethods = map[string]bool{
	http.MethodGet:    true,
	http.MethodPost:   true,
	http.MethodPut:    true,
	http.MethodDelete: true,
}

// Client struct - Output adapter for plain REST calls against the repository
type Client struct {
	httpClient *http.Client
	user       string
	password   string
	timeout    time.Duration
}

// NewClient func - Creates a REST client authenticating as the automation user
func NewClient(config configs.Nuxeo, fallback configs.Debug) *Client {
	timeout := httpx.TimeoutFromSeconds(config.Timeout)
	user, password := config.Credentials(fallback)

	logrus.Infof("REST client initialized for user %s, timeout: %v", user, timeout)

	return &Client{
		httpClient: httpx.NewClient(timeout),
		user:       user,
		password:   password,
		timeout:    timeout,
	}
}

// GetText issues a GET and returns the response body.
func (c *Client) GetText(ctx context.Context, url string) (string, error) {
	return c.do(ctx, http.MethodGet, url, nil)
}

// SendJSON issues a request with an optional JSON body and returns the response body.
func (c *Client) SendJSON(ctx context.Context, method, url string, data []byte) (string, error) {
	if !allowedMethods[method] {
		return "", fmt.Errorf("%w: unsupported method %q", domain.ErrInvalidRequest, method)
	}
	return c.do(ctx, method, url, data)
}

func (c *Client) do(ctx context.Context, method, url string, data []byte) (string, error) {
	var body io.Reader
	if len(data) > 0 {
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(c.user, c.password)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	if err := httpx.CheckResponse(resp, method+" "+req.URL.Path); err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	logrus.Debugf("%s %s returned %d bytes", method, url, len(respBody))

	return string(respBody), nil
}
