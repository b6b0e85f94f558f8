package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entry is a single stored key/value pair.
type Entry struct {
	Key       string `gorm:"column:entry_key;primaryKey;type:varchar(255)"`
	Value     string `gorm:"type:text"`
	UpdatedAt time.Time
}

// TableName pins the table name regardless of naming strategy.
func (Entry) TableName() string {
	return "client_entries"
}

// GORMStore is a GORM implementation of Store.
type GORMStore struct {
	db *gorm.DB
}

// NewGORMStore creates a new instance of GORMStore and migrates its table.
func NewGORMStore(db *gorm.DB) (*GORMStore, error) {
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate client entries: %w", err)
	}
	return &GORMStore{
		db: db,
	}, nil
}

// Get retrieves the value stored under key.
func (s *GORMStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var entry Entry
	if err := s.db.WithContext(ctx).First(&entry, "entry_key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get entry %s: %w", key, err)
	}
	return []byte(entry.Value), true, nil
}

// Set inserts or replaces the value stored under key.
func (s *GORMStore) Set(ctx context.Context, key string, value []byte) error {
	entry := Entry{Key: key, Value: string(value), UpdatedAt: time.Now()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("failed to set entry %s: %w", key, err)
	}
	return nil
}

// Delete removes the entry stored under key.
func (s *GORMStore) Delete(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Delete(&Entry{}, "entry_key = ?", key).Error; err != nil {
		return fmt.Errorf("failed to delete entry %s: %w", key, err)
	}
	return nil
}
