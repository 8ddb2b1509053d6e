package weather

import (
	"fmt"
	"math"
	"strings"

	"weatherdash.app/internal/ports"
)

// WeatherRequest addresses one upstream lookup, by city or by coordinates
type WeatherRequest struct {
	City        string
	Coordinates *ports.Coordinates
}

// Location is the resolved position of a caller
type Location struct {
	City      string
	Region    string
	Country   string
	Latitude  float64
	Longitude float64
}

// IsValid validates weather request
func (wr *WeatherRequest) IsValid() error {
	if wr.Coordinates != nil {
		return validateCoordinates(*wr.Coordinates)
	}
	if strings.TrimSpace(wr.City) == "" {
		return fmt.Errorf("city cannot be empty")
	}
	return nil
}

// NormalizeCity normalizes city name for consistent processing
func (wr *WeatherRequest) NormalizeCity() {
	wr.City = strings.TrimSpace(wr.City)
}

// ByCoordinates reports whether the request targets a coordinate pair
func (wr *WeatherRequest) ByCoordinates() bool {
	return wr.Coordinates != nil
}

// HasCity reports whether the IP lookup already named a place
func (l *Location) HasCity() bool {
	return strings.TrimSpace(l.City) != ""
}

// HasCoordinates reports whether the lookup produced a usable position.
// ipdata answers 0,0 for addresses it cannot place.
func (l *Location) HasCoordinates() bool {
	return l.Latitude != 0 || l.Longitude != 0
}

// Coordinates returns the location as a coordinate pair
func (l *Location) Coordinates() ports.Coordinates {
	return ports.Coordinates{Lat: l.Latitude, Lon: l.Longitude}
}

func validateCoordinates(c ports.Coordinates) error {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lon) {
		return fmt.Errorf("latitude and longitude must be numbers")
	}
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("latitude must be between -90 and 90")
	}
	if c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("longitude must be between -180 and 180")
	}
	return nil
}
