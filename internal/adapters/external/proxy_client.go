package external

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"time"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// ProxyClientAdapter implements the WeatherFetcher port against the proxy service
type ProxyClientAdapter struct {
	baseURL string
	client  HTTPClient
	logger  ports.Logger
}

// ProxyClientParams holds parameters for creating the proxy client
type ProxyClientParams struct {
	BaseURL string
	Timeout time.Duration
	Client  HTTPClient
	Logger  ports.Logger
}

// NewProxyClientAdapter creates a new proxy client
func NewProxyClientAdapter(params ProxyClientParams) *ProxyClientAdapter {
	client := params.Client
	if client == nil {
		client = newHTTPClient(params.Timeout)
	}

	return &ProxyClientAdapter{
		baseURL: strings.TrimRight(params.BaseURL, "/"),
		client:  client,
		logger:  params.Logger,
	}
}

// CurrentWeather calls /weather/:city or /weather?lat&lon
func (c *ProxyClientAdapter) CurrentWeather(ctx context.Context, query ports.LocationQuery) (json.RawMessage, error) {
	return c.get(ctx, "/weather", query)
}

// Forecast calls /forecast/:city or /forecast?lat&lon
func (c *ProxyClientAdapter) Forecast(ctx context.Context, query ports.LocationQuery) (json.RawMessage, error) {
	return c.get(ctx, "/forecast", query)
}

// ResolveLocation calls /location
func (c *ProxyClientAdapter) ResolveLocation(ctx context.Context) (*ports.ResolvedLocation, error) {
	body, err := getJSON(ctx, c.client, c.baseURL+"/location", "weather proxy", c.logger)
	if err != nil {
		return nil, err
	}

	var location ports.ResolvedLocation
	if err := json.Unmarshal(body, &location); err != nil {
		return nil, errors.NewProviderError(0, "failed to decode location response", err)
	}
	return &location, nil
}

func (c *ProxyClientAdapter) get(ctx context.Context, resource string, query ports.LocationQuery) (json.RawMessage, error) {
	var endpoint string
	switch {
	case query.Coordinates != nil:
		endpoint = c.baseURL + resource + "?" + url.Values{
			"lat": {query.Coordinates.LatString()},
			"lon": {query.Coordinates.LonString()},
		}.Encode()
	case strings.TrimSpace(query.City) != "":
		endpoint = c.baseURL + resource + "/" + url.PathEscape(strings.TrimSpace(query.City))
	default:
		return nil, errors.NewValidationError("city or coordinates required")
	}

	c.logger.Debug("Calling weather proxy", ports.F("url", endpoint))
	return getJSON(ctx, c.client, endpoint, "weather proxy", c.logger)
}
