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

// IPDataLocatorAdapter implements IPLocator port for ipdata.co
type IPDataLocatorAdapter struct {
	apiKey  string
	baseURL string
	client  HTTPClient
	logger  ports.Logger
}

// IPDataLocatorParams holds parameters for creating the ipdata locator
type IPDataLocatorParams struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	Client  HTTPClient
	Logger  ports.Logger
}

type ipdataResponse struct {
	City        string  `json:"city"`
	Region      string  `json:"region"`
	CountryName string  `json:"country_name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// NewIPDataLocatorAdapter creates a new ipdata locator adapter
func NewIPDataLocatorAdapter(params IPDataLocatorParams) *IPDataLocatorAdapter {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = "https://api.ipdata.co"
	}
	client := params.Client
	if client == nil {
		client = newHTTPClient(params.Timeout)
	}

	return &IPDataLocatorAdapter{
		apiKey:  params.APIKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		logger:  params.Logger,
	}
}

// Locate geolocates ip. With an empty ip ipdata answers for the caller's own address.
func (l *IPDataLocatorAdapter) Locate(ctx context.Context, ip string) (*ports.IPLocation, error) {
	endpoint := l.baseURL
	if ip != "" {
		endpoint += "/" + url.PathEscape(ip)
	}
	endpoint += "?" + url.Values{"api-key": {l.apiKey}}.Encode()

	body, err := getJSON(ctx, l.client, endpoint, "ipdata", l.logger)
	if err != nil {
		return nil, err
	}

	var resp ipdataResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.NewProviderError(0, "failed to decode ipdata response", err)
	}

	return &ports.IPLocation{
		City:      resp.City,
		Region:    resp.Region,
		Country:   resp.CountryName,
		Latitude:  resp.Latitude,
		Longitude: resp.Longitude,
	}, nil
}

// GetProviderName returns the name of this locator
func (l *IPDataLocatorAdapter) GetProviderName() string {
	return "ipdata"
}
