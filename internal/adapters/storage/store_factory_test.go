package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherdash.app/internal/config"
	"weatherdash.app/pkg/errors"
)

func TestStoreFactory_CreateStore(t *testing.T) {
	_, redisConfig := setupMockRedis(t)
	dir := t.TempDir()

	tests := []struct {
		name     string
		cfg      *config.StoreConfig
		wantName string
	}{
		{"Memory", &config.StoreConfig{Type: config.StoreTypeMemory}, "memory"},
		{"File", &config.StoreConfig{Type: config.StoreTypeFile, FileDir: filepath.Join(dir, "files")}, "file"},
		{"Redis", &config.StoreConfig{Type: config.StoreTypeRedis, Redis: *redisConfig}, "redis"},
		{"SQLite", &config.StoreConfig{Type: config.StoreTypeSQLite, SQLitePath: filepath.Join(dir, "db", "state.db")}, "sqlite"},
	}

	factory := NewStoreFactory()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := factory.CreateStore(tt.cfg)
			require.NoError(t, err)
			defer func() { assert.NoError(t, store.Close()) }()

			assert.Equal(t, tt.wantName, store.Name())
		})
	}
}

func TestStoreFactory_Errors(t *testing.T) {
	factory := NewStoreFactory()

	store, err := factory.CreateStore(nil)
	assert.Nil(t, store)
	assert.True(t, errors.IsConfigurationError(err))

	store, err = factory.CreateStore(&config.StoreConfig{Type: config.StoreTypeUnknown})
	assert.Nil(t, store)
	assert.True(t, errors.IsConfigurationError(err))
	assert.Contains(t, err.Error(), "unsupported store type: unknown")
}
