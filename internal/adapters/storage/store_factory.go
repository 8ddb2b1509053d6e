package storage

import (
	"fmt"

	"weatherdash.app/internal/config"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// Store is a key-value backend that owns a connection or handle
type Store interface {
	ports.KeyValueStore
	Close() error
}

type StoreFactory struct{}

func NewStoreFactory() *StoreFactory {
	return &StoreFactory{}
}

func (f *StoreFactory) CreateStore(cfg *config.StoreConfig) (Store, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("store config cannot be nil", nil)
	}

	switch cfg.Type {
	case config.StoreTypeMemory:
		return NewMemoryStore(), nil
	case config.StoreTypeFile:
		return NewFileStore(cfg.FileDir)
	case config.StoreTypeRedis:
		return NewRedisStore(&cfg.Redis)
	case config.StoreTypeSQLite:
		db, err := OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return NewSQLStore(db)
	case config.StoreTypePostgres:
		db, err := OpenPostgres(cfg.Database)
		if err != nil {
			return nil, err
		}
		return NewSQLStore(db)
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported store type: %s", cfg.Type.String()), nil)
	}
}
