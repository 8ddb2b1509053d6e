package storage

import (
	"context"
	"encoding/json"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// Record keys, shared with the browser client's localStorage layout
const (
	HistoryKey = "searchHistory"
	CacheKey   = "searchCache"
)

// StateStoreAdapter implements the StateStore port on top of a key-value store.
// History and cache are kept as two independent JSON records.
type StateStoreAdapter struct {
	store  ports.KeyValueStore
	logger ports.Logger
}

func NewStateStoreAdapter(store ports.KeyValueStore, logger ports.Logger) *StateStoreAdapter {
	return &StateStoreAdapter{store: store, logger: logger}
}

// Load reads both records. A missing or undecodable record loads as empty;
// only backend failures are returned.
func (a *StateStoreAdapter) Load(ctx context.Context) (*ports.SessionState, error) {
	state := &ports.SessionState{
		History: []string{},
		Cache:   map[string]ports.CachedWeather{},
	}

	raw, err := a.read(ctx, HistoryKey)
	if err != nil {
		return nil, err
	}
	if raw != nil {
		var history []string
		if err := json.Unmarshal(raw, &history); err != nil {
			a.logger.Warn("Discarding malformed record",
				ports.F("key", HistoryKey),
				ports.F("store", a.store.Name()),
				ports.F("error", err))
		} else {
			state.History = history
		}
	}

	raw, err = a.read(ctx, CacheKey)
	if err != nil {
		return nil, err
	}
	if raw != nil {
		var cache map[string]ports.CachedWeather
		if err := json.Unmarshal(raw, &cache); err != nil {
			a.logger.Warn("Discarding malformed record",
				ports.F("key", CacheKey),
				ports.F("store", a.store.Name()),
				ports.F("error", err))
		} else if cache != nil {
			state.Cache = cache
		}
	}

	return state, nil
}

func (a *StateStoreAdapter) Save(ctx context.Context, state *ports.SessionState) error {
	if state == nil {
		return errors.NewValidationError("state cannot be nil")
	}

	history := state.History
	if history == nil {
		history = []string{}
	}
	cache := state.Cache
	if cache == nil {
		cache = map[string]ports.CachedWeather{}
	}

	historyJSON, err := json.Marshal(history)
	if err != nil {
		return errors.NewStorageError("failed to encode history", err)
	}
	cacheJSON, err := json.Marshal(cache)
	if err != nil {
		return errors.NewStorageError("failed to encode cache", err)
	}

	// Cache first: a failed second write must not leave history naming
	// places the stored cache lacks.
	if err := a.store.Set(ctx, CacheKey, cacheJSON); err != nil {
		return err
	}
	return a.store.Set(ctx, HistoryKey, historyJSON)
}

func (a *StateStoreAdapter) Clear(ctx context.Context) error {
	if err := a.store.Delete(ctx, HistoryKey); err != nil {
		return err
	}
	return a.store.Delete(ctx, CacheKey)
}

func (a *StateStoreAdapter) read(ctx context.Context, key string) ([]byte, error) {
	raw, err := a.store.Get(ctx, key)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, nil
		}
		return nil, err
	}
	return raw, nil
}
