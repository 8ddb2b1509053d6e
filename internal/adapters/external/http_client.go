// Package external provides adapters for external services.
// These adapters implement ports for the upstream weather API, the IP
// geolocation service and the proxy consumed by the dashboard.
package external

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

const (
	defaultTimeout   = 10 * time.Second
	maxResponseBytes = 4 << 20
)

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// getJSON performs a GET and returns the body untouched when it is valid JSON.
// Non-2xx answers become provider errors carrying the upstream status and,
// when the body has one, the upstream message.
func getJSON(ctx context.Context, client HTTPClient, endpoint, service string, logger ports.Logger) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.NewProviderError(0, "failed to build "+service+" request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.NewProviderError(0, "failed to call "+service, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Warn("Failed to close response body",
				ports.F("service", service),
				ports.F("error", closeErr))
		}
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errors.NewProviderError(resp.StatusCode, "failed to read "+service+" response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := upstreamMessage(body)
		if message == "" {
			message = fmt.Sprintf("%s returned status %d", service, resp.StatusCode)
		}
		return nil, errors.NewProviderError(resp.StatusCode, message, nil)
	}

	if !json.Valid(body) {
		return nil, errors.NewProviderError(http.StatusBadGateway, service+" returned invalid JSON", nil)
	}

	return json.RawMessage(body), nil
}

// upstreamMessage extracts "message" (OpenWeatherMap, ipdata) or "error" (proxy) from an error body
func upstreamMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Error != "" {
		return strings.TrimSpace(payload.Error)
	}
	return strings.TrimSpace(payload.Message)
}
