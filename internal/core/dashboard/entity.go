package dashboard

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"weatherdash.app/internal/ports"
)

const (
	// MaxHistory caps the number of remembered searches
	MaxHistory = 10
	// SamplesPerDay is the number of 3-hourly samples the upstream forecast carries per day
	SamplesPerDay = 8
)

// Direction selects which neighbour Advance moves to
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// SearchRequest names a place by city or by coordinates
type SearchRequest struct {
	City        string
	Coordinates *ports.Coordinates
}

// CacheEntry is the last fetched weather for one location key.
// Current and Forecast are always replaced together.
type CacheEntry struct {
	Key       string
	Current   json.RawMessage
	Forecast  []json.RawMessage
	FetchedAt time.Time
}

// IsValid validates search request
func (r *SearchRequest) IsValid() error {
	if r.Coordinates != nil {
		c := r.Coordinates
		if math.IsNaN(c.Lat) || math.IsNaN(c.Lon) {
			return fmt.Errorf("latitude and longitude required")
		}
		if c.Lat < -90 || c.Lat > 90 || c.Lon < -180 || c.Lon > 180 {
			return fmt.Errorf("coordinates out of range")
		}
		return nil
	}
	if strings.TrimSpace(r.City) == "" {
		return fmt.Errorf("city cannot be empty")
	}
	return nil
}

func (r *SearchRequest) query() ports.LocationQuery {
	if r.Coordinates != nil {
		return ports.LocationQuery{Coordinates: r.Coordinates}
	}
	return ports.LocationQuery{City: strings.TrimSpace(r.City)}
}

// flightKey identifies searches that would hit the same upstream resource
func (r *SearchRequest) flightKey() string {
	if r.Coordinates != nil {
		return "coords:" + r.Coordinates.String()
	}
	return "city:" + foldKey(r.City)
}

// History is the most-recent-first list of searched location keys
type History []string

// IndexOf returns the position of key compared case-insensitively, or -1
func (h History) IndexOf(key string) int {
	folded := foldKey(key)
	for i, existing := range h {
		if foldKey(existing) == folded {
			return i
		}
	}
	return -1
}

// Push moves key to the front, dropping any other spelling of it and the
// oldest entries beyond MaxHistory. A key already present keeps its spelling.
func (h History) Push(key string) History {
	if i := h.IndexOf(key); i >= 0 {
		key = h[i]
	}
	folded := foldKey(key)

	next := make(History, 0, MaxHistory)
	next = append(next, key)
	for _, existing := range h {
		if len(next) == MaxHistory {
			break
		}
		if foldKey(existing) != folded {
			next = append(next, existing)
		}
	}
	return next
}

// Matching returns the entries containing fragment, case-insensitively
func (h History) Matching(fragment string) []string {
	needle := strings.ToLower(strings.TrimSpace(fragment))
	matches := make([]string, 0, len(h))
	for _, key := range h {
		if strings.Contains(strings.ToLower(key), needle) {
			matches = append(matches, key)
		}
	}
	return matches
}

// DownsampleForecast keeps the samples at positions 0, stride, 2*stride, ...
func DownsampleForecast(samples []json.RawMessage, stride int) []json.RawMessage {
	if stride < 1 {
		stride = 1
	}
	kept := make([]json.RawMessage, 0, (len(samples)+stride-1)/stride)
	for i := 0; i < len(samples); i += stride {
		kept = append(kept, samples[i])
	}
	return kept
}

// ForecastSamples extracts the "list" series from an upstream forecast payload.
// A payload without a list yields no samples.
func ForecastSamples(payload json.RawMessage) ([]json.RawMessage, error) {
	var body struct {
		List []json.RawMessage `json:"list"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return nil, fmt.Errorf("decode forecast payload: %w", err)
	}
	return body.List, nil
}

// placeName returns the "name" field of a current-conditions payload, if any
func placeName(current json.RawMessage) string {
	var body struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(current, &body); err != nil {
		return ""
	}
	return strings.TrimSpace(body.Name)
}

func foldKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
