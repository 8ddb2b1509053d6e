package storage

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
	"weatherdash.app/internal/config"
	"weatherdash.app/pkg/errors"
)

// StateRecordModel represents one stored key
type StateRecordModel struct {
	Key       string `gorm:"column:state_key;primaryKey;size:191"`
	Value     []byte `gorm:"not null"`
	UpdatedAt time.Time
}

func (StateRecordModel) TableName() string {
	return "dashboard_state"
}

// SQLStore keeps values in a SQL table through GORM
type SQLStore struct {
	db     *gorm.DB
	driver string
}

// OpenSQLite opens (creating if needed) a SQLite database file
func OpenSQLite(path string) (*gorm.DB, error) {
	if path == "" {
		return nil, errors.NewConfigurationError("sqlite path cannot be empty", nil)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.NewStorageError("failed to create sqlite directory", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, errors.NewStorageError("failed to open sqlite database", err)
	}
	return db, nil
}

// OpenPostgres connects to PostgreSQL
func OpenPostgres(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.GetDSN()), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, errors.NewStorageError("failed to connect to database", err)
	}
	return db, nil
}

// NewSQLStore migrates the state table and returns a store backed by db
func NewSQLStore(db *gorm.DB) (*SQLStore, error) {
	if db == nil {
		return nil, errors.NewConfigurationError("database cannot be nil", nil)
	}
	if err := db.AutoMigrate(&StateRecordModel{}); err != nil {
		return nil, errors.NewStorageError("failed to migrate state table", err)
	}
	return &SQLStore{db: db, driver: db.Dialector.Name()}, nil
}

func (s *SQLStore) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("store key cannot be empty")
	}

	var model StateRecordModel
	result := s.db.WithContext(ctx).Where("state_key = ?", key).First(&model)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("key not found: " + key)
		}
		return nil, errors.NewStorageError("failed to read "+key, result.Error)
	}

	return model.Value, nil
}

// Set inserts or replaces the value for key
func (s *SQLStore) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return errors.NewValidationError("store key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("store value cannot be nil")
	}

	model := StateRecordModel{Key: key, Value: value, UpdatedAt: time.Now()}
	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "state_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&model)
	if result.Error != nil {
		return errors.NewStorageError("failed to write "+key, result.Error)
	}

	return nil
}

func (s *SQLStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("store key cannot be empty")
	}

	result := s.db.WithContext(ctx).Where("state_key = ?", key).Delete(&StateRecordModel{})
	if result.Error != nil {
		return errors.NewStorageError("failed to delete "+key, result.Error)
	}

	return nil
}

// Ping checks the connection, for health reporting
func (s *SQLStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *SQLStore) Name() string {
	return s.driver
}

// Close safely closes the database connection
func (s *SQLStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return errors.NewStorageError("failed to access database handle", err)
	}
	if err := sqlDB.Close(); err != nil {
		return errors.NewStorageError("failed to close database", err)
	}
	return nil
}
