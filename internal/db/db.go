// Package db provides the durable key-value area used by the store, kept in a
// SQLite database through gorm.
package db

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Entry is one row of the key-value table.
type Entry struct {
	Name      string `gorm:"primaryKey"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// TableName pins the table name.
func (Entry) TableName() string {
	return "kv_entries"
}

// KV is a store.KV backed by SQLite.
type KV struct {
	db *gorm.DB
}

// Open sets up the database at path, creating its directory, and runs
// migrations.
func Open(path string) (*KV, error) {
	// Ensure the directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	kv := &KV{db: db}
	if err := kv.runMigrations(); err != nil {
		kv.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return kv, nil
}

// runMigrations creates/updates the database schema
func (k *KV) runMigrations() error {
	return k.db.AutoMigrate(&Entry{})
}

// Get returns the value stored under name.
func (k *KV) Get(name string) (string, bool, error) {
	var entry Entry
	err := k.db.Where("name = ?", name).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entry.Value, true, nil
}

// Set inserts or overwrites the value under name.
func (k *KV) Set(name, value string) error {
	entry := Entry{Name: name, Value: value, UpdatedAt: time.Now()}
	return k.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

// Remove deletes name. Missing names are not an error.
func (k *KV) Remove(name string) error {
	return k.db.Where("name = ?", name).Delete(&Entry{}).Error
}

// Close closes the database connection
func (k *KV) Close() error {
	if k == nil || k.db == nil {
		return nil
	}
	sqlDB, err := k.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
