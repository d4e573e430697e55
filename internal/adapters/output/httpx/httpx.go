// Package httpx holds the HTTP plumbing shared by the backend adapters.
package httpx

import (
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"ecm-connector/internal/domain"

	"github.com/tidwall/gjson"
)

// DefaultTimeout applies when a binding configures no timeout.
const DefaultTimeout = 60 * time.Second

// maxErrorBody bounds how much of a failed response is read into an error.
const maxErrorBody = 64 << 10

// NewClient builds the HTTP client used by the backend adapters.
func NewClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 100,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}

// TimeoutFromSeconds converts a configured timeout in seconds.
func TimeoutFromSeconds(seconds int) time.Duration {
	if seconds <= 0 {
		return DefaultTimeout
	}
	return time.Duration(seconds) * time.Second
}

// CheckResponse turns a non-2xx response into a *domain.RemoteError and
// closes its body. 2xx responses are returned untouched.
func CheckResponse(resp *http.Response, operation string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &domain.RemoteError{
		StatusCode: resp.StatusCode,
		Operation:  operation,
		Message:    errorMessage(resp.StatusCode, body),
	}
}

// errorMessage extracts the message of a JSON error document, falling back
// to the raw body.
func errorMessage(statusCode int, body []byte) string {
	if gjson.ValidBytes(body) {
		for _, path := range []string{"message", "exception", "error"} {
			if msg := gjson.GetBytes(body, path); msg.Exists() && msg.Type == gjson.String {
				return msg.String()
			}
		}
	}
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		return http.StatusText(statusCode)
	}
	return msg
}

// JoinURL appends a path to a base URL with exactly one slash between them.
func JoinURL(base, path string) string {
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(path, "/")
}

// ConnectionError wraps a failed session handshake.
func ConnectionError(binding string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrConnection, binding, err)
}
