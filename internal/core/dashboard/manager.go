package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// Manager owns the search cache, the history list and the active index.
// Search is the only operation that reaches the network; selection and
// advancing only read the cache.
type Manager struct {
	fetcher ports.WeatherFetcher
	store   ports.StateStore
	logger  ports.Logger
	clock   func() time.Time

	mu      sync.Mutex
	history History
	cache   map[string]CacheEntry
	active  int
	// unloaded is set after a failed Load; saves are skipped until state is
	// loaded or cleared so the stored records are not overwritten.
	unloaded bool

	flights  singleflight.Group
	inFlight atomic.Int32
}

type ManagerDependencies struct {
	Fetcher ports.WeatherFetcher
	Store   ports.StateStore
	Logger  ports.Logger
	Clock   func() time.Time
}

func NewManager(deps ManagerDependencies) (*Manager, error) {
	if deps.Fetcher == nil {
		return nil, errors.NewValidationError("weather fetcher is required")
	}
	if deps.Store == nil {
		return nil, errors.NewValidationError("state store is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}

	return &Manager{
		fetcher: deps.Fetcher,
		store:   deps.Store,
		logger:  deps.Logger,
		clock:   clock,
		cache:   make(map[string]CacheEntry),
		active:  -1,
	}, nil
}

// Load replaces the in-memory state with what the store holds.
// The active index is not persisted and restarts at the newest entry.
func (m *Manager) Load(ctx context.Context) error {
	state, err := m.store.Load(ctx)
	if err != nil {
		m.mu.Lock()
		m.unloaded = true
		m.mu.Unlock()
		return errors.NewStorageError("failed to load dashboard state", err)
	}

	history := make(History, 0, MaxHistory)
	for _, key := range state.History {
		if strings.TrimSpace(key) == "" || history.IndexOf(key) >= 0 {
			continue
		}
		if len(history) == MaxHistory {
			break
		}
		history = append(history, key)
	}

	cache := make(map[string]CacheEntry, len(state.Cache))
	for key, cached := range state.Cache {
		if strings.TrimSpace(key) == "" {
			continue
		}
		cache[foldKey(key)] = CacheEntry{
			Key:       key,
			Current:   cached.Weather,
			Forecast:  cached.Forecast,
			FetchedAt: cached.CachedAt,
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.history = history
	m.cache = cache
	m.unloaded = false
	m.active = -1
	if len(history) > 0 {
		m.active = 0
	}

	m.logger.Info("Dashboard state loaded",
		ports.F("history", len(history)),
		ports.F("cached", len(cache)))
	return nil
}

// Search fetches current conditions and forecast for a place and makes it the
// active entry. On failure nothing changes. Concurrent searches for the same
// place share one fetch.
func (m *Manager) Search(ctx context.Context, request SearchRequest) (*CacheEntry, error) {
	if err := request.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid search: " + err.Error())
	}

	m.inFlight.Add(1)
	defer m.inFlight.Add(-1)

	// The shared fetch outlives a caller that gives up, so the others still get
	// the result and the cache is still written.
	flightCtx := context.WithoutCancel(ctx)
	result, err, shared := m.flights.Do(request.flightKey(), func() (interface{}, error) {
		entry, err := m.fetch(flightCtx, request)
		if err != nil {
			return nil, err
		}
		return m.commit(flightCtx, entry), nil
	})
	if err != nil {
		m.logger.Warn("Search failed",
			ports.F("query", request.flightKey()),
			ports.F("error", err))
		return nil, err
	}
	if shared {
		m.logger.Debug("Search coalesced with an in-flight request", ports.F("query", request.flightKey()))
	}

	entry := result.(CacheEntry)
	return &entry, nil
}

func (m *Manager) fetch(ctx context.Context, request SearchRequest) (CacheEntry, error) {
	query := request.query()

	var current, forecast json.RawMessage
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		payload, err := m.fetcher.CurrentWeather(gctx, query)
		current = payload
		return err
	})
	g.Go(func() error {
		payload, err := m.fetcher.Forecast(gctx, query)
		forecast = payload
		return err
	})
	if err := g.Wait(); err != nil {
		if errors.IsProviderError(err) {
			return CacheEntry{}, err
		}
		return CacheEntry{}, errors.NewProviderError(0, "could not fetch weather data", err)
	}

	samples, err := ForecastSamples(forecast)
	if err != nil {
		return CacheEntry{}, errors.NewProviderError(0, "malformed forecast payload", err)
	}

	key := strings.TrimSpace(request.City)
	if request.Coordinates != nil {
		key = placeName(current)
		if key == "" {
			key = request.Coordinates.String()
		}
	}

	return CacheEntry{
		Key:       key,
		Current:   current,
		Forecast:  DownsampleForecast(samples, SamplesPerDay),
		FetchedAt: m.clock(),
	}, nil
}

// commit upserts entry into cache and history, activates it and persists
func (m *Manager) commit(ctx context.Context, entry CacheEntry) CacheEntry {
	m.mu.Lock()
	m.history = m.history.Push(entry.Key)
	entry.Key = m.history[0]
	m.cache[foldKey(entry.Key)] = entry
	m.active = 0
	state := m.snapshot()
	m.mu.Unlock()

	m.persist(ctx, state)
	return entry
}

// SelectByIndex activates history entry index and returns its cached data.
// An index outside the history is rejected without touching the active index.
func (m *Manager) SelectByIndex(index int) (*CacheEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.selectLocked(index)
}

func (m *Manager) selectLocked(index int) (*CacheEntry, error) {
	if len(m.history) == 0 {
		return nil, errors.NewValidationError("history is empty")
	}
	if index < 0 || index >= len(m.history) {
		return nil, errors.NewValidationError(
			fmt.Sprintf("index %d out of range [0, %d)", index, len(m.history)))
	}

	m.active = index
	key := m.history[index]
	entry, ok := m.cache[foldKey(key)]
	if !ok {
		return nil, errors.NewCacheMissError(fmt.Sprintf("no cached weather for %q", key))
	}
	return &entry, nil
}

// Advance moves the active index one step. Moving past either end is a no-op
// that returns the current entry.
func (m *Manager) Advance(direction Direction) (*CacheEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.history) == 0 {
		return nil, errors.NewValidationError("history is empty")
	}

	target := m.active + 1
	if direction == Backward {
		target = m.active - 1
	}
	if target < 0 {
		target = 0
	}
	if target >= len(m.history) {
		target = len(m.history) - 1
	}
	return m.selectLocked(target)
}

// ClearAll empties cache and history. It always succeeds; a storage failure
// is logged and the in-memory state is cleared regardless.
func (m *Manager) ClearAll(ctx context.Context) {
	m.mu.Lock()
	m.history = nil
	m.cache = make(map[string]CacheEntry)
	m.active = -1
	m.mu.Unlock()

	if err := m.store.Clear(ctx); err != nil {
		m.logger.Error("Failed to clear persisted dashboard state", ports.F("error", err))
		return
	}

	m.mu.Lock()
	m.unloaded = false
	m.mu.Unlock()
}

// History returns a copy of the history list
func (m *Manager) History() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.history...)
}

// Suggestions returns history entries containing fragment
func (m *Manager) Suggestions(fragment string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.history.Matching(fragment)
}

// ActiveIndex returns the displayed history position, or -1 when history is empty
func (m *Manager) ActiveIndex() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

// Active returns the displayed entry, if it is cached
func (m *Manager) Active() (*CacheEntry, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active < 0 || m.active >= len(m.history) {
		return nil, false
	}
	entry, ok := m.cache[foldKey(m.history[m.active])]
	if !ok {
		return nil, false
	}
	return &entry, true
}

// Cached reports whether key has a cache entry
func (m *Manager) Cached(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.cache[foldKey(key)]
	return ok
}

// CacheSize returns the number of cached locations
func (m *Manager) CacheSize() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.cache)
}

// Busy reports whether a search is in flight
func (m *Manager) Busy() bool {
	return m.inFlight.Load() > 0
}

// snapshot must be called with mu held
func (m *Manager) snapshot() *ports.SessionState {
	state := &ports.SessionState{
		History: append([]string(nil), m.history...),
		Cache:   make(map[string]ports.CachedWeather, len(m.cache)),
	}
	for _, entry := range m.cache {
		state.Cache[entry.Key] = ports.CachedWeather{
			Weather:  entry.Current,
			Forecast: entry.Forecast,
			CachedAt: entry.FetchedAt,
		}
	}
	return state
}

func (m *Manager) persist(ctx context.Context, state *ports.SessionState) {
	m.mu.Lock()
	unloaded := m.unloaded
	m.mu.Unlock()
	if unloaded {
		m.logger.Warn("Skipping save, stored dashboard state was never loaded",
			ports.F("history", len(state.History)))
		return
	}

	if err := m.store.Save(ctx, state); err != nil {
		m.logger.Error("Failed to persist dashboard state",
			ports.F("history", len(state.History)),
			ports.F("error", err))
	}
}
