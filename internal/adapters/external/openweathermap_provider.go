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

// OpenWeatherMapProviderAdapter implements WeatherProvider port for OpenWeatherMap
type OpenWeatherMapProviderAdapter struct {
	apiKey     string
	baseURL    string
	geoBaseURL string
	units      string
	client     HTTPClient
	logger     ports.Logger
}

// OpenWeatherMapProviderParams holds parameters for creating OpenWeatherMap provider
type OpenWeatherMapProviderParams struct {
	APIKey     string
	BaseURL    string
	GeoBaseURL string
	Units      string
	Timeout    time.Duration
	Client     HTTPClient
	Logger     ports.Logger
}

type geoReverseEntry struct {
	Name    string `json:"name"`
	Country string `json:"country"`
	State   string `json:"state"`
}

// NewOpenWeatherMapProviderAdapter creates a new OpenWeatherMap provider adapter
func NewOpenWeatherMapProviderAdapter(params OpenWeatherMapProviderParams) *OpenWeatherMapProviderAdapter {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = "https://api.openweathermap.org/data/2.5"
	}
	geoBaseURL := params.GeoBaseURL
	if geoBaseURL == "" {
		geoBaseURL = "https://api.openweathermap.org/geo/1.0"
	}
	units := params.Units
	if units == "" {
		units = "metric"
	}
	client := params.Client
	if client == nil {
		client = newHTTPClient(params.Timeout)
	}

	return &OpenWeatherMapProviderAdapter{
		apiKey:     params.APIKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		geoBaseURL: strings.TrimRight(geoBaseURL, "/"),
		units:      units,
		client:     client,
		logger:     params.Logger,
	}
}

// CurrentByCity retrieves current conditions for a city
func (p *OpenWeatherMapProviderAdapter) CurrentByCity(ctx context.Context, city string) (json.RawMessage, error) {
	if strings.TrimSpace(city) == "" {
		return nil, errors.NewValidationError("city cannot be empty")
	}
	return p.fetch(ctx, "/weather", url.Values{"q": {city}})
}

// CurrentByCoordinates retrieves current conditions for a coordinate pair
func (p *OpenWeatherMapProviderAdapter) CurrentByCoordinates(ctx context.Context, coords ports.Coordinates) (json.RawMessage, error) {
	return p.fetch(ctx, "/weather", coordinateQuery(coords))
}

// ForecastByCity retrieves the 5 day / 3 hour forecast for a city
func (p *OpenWeatherMapProviderAdapter) ForecastByCity(ctx context.Context, city string) (json.RawMessage, error) {
	if strings.TrimSpace(city) == "" {
		return nil, errors.NewValidationError("city cannot be empty")
	}
	return p.fetch(ctx, "/forecast", url.Values{"q": {city}})
}

// ForecastByCoordinates retrieves the 5 day / 3 hour forecast for a coordinate pair
func (p *OpenWeatherMapProviderAdapter) ForecastByCoordinates(ctx context.Context, coords ports.Coordinates) (json.RawMessage, error) {
	return p.fetch(ctx, "/forecast", coordinateQuery(coords))
}

// ReverseGeocode resolves the nearest named place through the geocoding API
func (p *OpenWeatherMapProviderAdapter) ReverseGeocode(ctx context.Context, coords ports.Coordinates) (string, error) {
	query := coordinateQuery(coords)
	query.Set("limit", "1")
	query.Set("appid", p.apiKey)

	body, err := getJSON(ctx, p.client, p.geoBaseURL+"/reverse?"+query.Encode(), "OpenWeatherMap geocoding", p.logger)
	if err != nil {
		return "", err
	}

	var entries []geoReverseEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return "", errors.NewProviderError(0, "failed to decode geocoding response", err)
	}
	if len(entries) == 0 {
		return "", nil
	}
	return entries[0].Name, nil
}

// GetProviderName returns the name of this weather provider
func (p *OpenWeatherMapProviderAdapter) GetProviderName() string {
	return "openweathermap"
}

func (p *OpenWeatherMapProviderAdapter) fetch(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	query.Set("appid", p.apiKey)
	query.Set("units", p.units)
	return getJSON(ctx, p.client, p.baseURL+path+"?"+query.Encode(), "OpenWeatherMap", p.logger)
}

func coordinateQuery(coords ports.Coordinates) url.Values {
	return url.Values{
		"lat": {coords.LatString()},
		"lon": {coords.LonString()},
	}
}
