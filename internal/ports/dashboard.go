package ports

import (
	"context"
	"encoding/json"
	"time"
)

// LocationQuery addresses the proxy either by city name or by coordinates
type LocationQuery struct {
	City        string
	Coordinates *Coordinates
}

// ResolvedLocation is the proxy's answer to an automatic location lookup
type ResolvedLocation struct {
	City      string  `json:"city"`
	Region    string  `json:"region"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// WeatherFetcher defines the contract the dashboard uses to reach the proxy service
type WeatherFetcher interface {
	CurrentWeather(ctx context.Context, query LocationQuery) (json.RawMessage, error)
	Forecast(ctx context.Context, query LocationQuery) (json.RawMessage, error)
	ResolveLocation(ctx context.Context) (*ResolvedLocation, error)
}

// CachedWeather is one persisted searchCache value
type CachedWeather struct {
	Weather  json.RawMessage   `json:"weather"`
	Forecast []json.RawMessage `json:"forecast"`
	CachedAt time.Time         `json:"cachedAt"`
}

// SessionState is the persisted dashboard state: the searchHistory and
// searchCache records. The active index is never part of it.
type SessionState struct {
	History []string
	Cache   map[string]CachedWeather
}

// StateStore defines the persistence contract of the dashboard.
// Load returns empty state, not an error, when nothing usable is stored.
type StateStore interface {
	Load(ctx context.Context) (*SessionState, error)
	Save(ctx context.Context, state *SessionState) error
	Clear(ctx context.Context) error
}

// KeyValueStore is the opaque local storage backing a StateStore
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Name() string
}
