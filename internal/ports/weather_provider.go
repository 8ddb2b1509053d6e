package ports

import (
	"context"
	"encoding/json"
	"strconv"
)

// Coordinates is a latitude/longitude pair in decimal degrees
type Coordinates struct {
	Lat float64
	Lon float64
}

// LatString formats the latitude the way it is sent upstream
func (c Coordinates) LatString() string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64)
}

// LonString formats the longitude the way it is sent upstream
func (c Coordinates) LonString() string {
	return strconv.FormatFloat(c.Lon, 'f', -1, 64)
}

// String returns the "{lat},{lon}" label used when no place name is known
func (c Coordinates) String() string {
	return c.LatString() + "," + c.LonString()
}

// IPLocation is the result of an IP geolocation lookup
type IPLocation struct {
	City      string
	Region    string
	Country   string
	Latitude  float64
	Longitude float64
}

// WeatherProvider defines the contract for the upstream weather API.
// Payloads are returned exactly as the provider sent them.
type WeatherProvider interface {
	CurrentByCity(ctx context.Context, city string) (json.RawMessage, error)
	CurrentByCoordinates(ctx context.Context, coords Coordinates) (json.RawMessage, error)
	ForecastByCity(ctx context.Context, city string) (json.RawMessage, error)
	ForecastByCoordinates(ctx context.Context, coords Coordinates) (json.RawMessage, error)
	// ReverseGeocode returns the nearest place name, or "" when the provider knows none.
	ReverseGeocode(ctx context.Context, coords Coordinates) (string, error)
	GetProviderName() string
}

// IPLocator defines the contract for IP based geolocation.
// An empty ip asks the provider to resolve the address of the requester.
type IPLocator interface {
	Locate(ctx context.Context, ip string) (*IPLocation, error)
	GetProviderName() string
}
