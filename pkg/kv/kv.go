// Package kv is a small JSON key-value adapter over the local database.
// Each key holds one fully serialized value; Set always overwrites in full.
package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrEmptyKey reports a structurally invalid key. This is a caller bug.
var ErrEmptyKey = errors.New("kv: empty key")

// Record is one persisted key-value pair.
type Record struct {
	Key       string         `gorm:"primaryKey"`
	Value     datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
}

// TableName sets the database table name.
func (Record) TableName() string { return "kv_records" }

type Store struct {
	db *gorm.DB
}

// New migrates the kv table and returns a store bound to db.
func New(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("kv: migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Get returns the value stored under key decoded into T, or fallback when the
// key is absent or holds JSON null.
func Get[T any](ctx context.Context, s *Store, key string, fallback T) (T, error) {
	if strings.TrimSpace(key) == "" {
		return fallback, ErrEmptyKey
	}

	var rec Record
	err := s.db.WithContext(ctx).First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fallback, nil
	}
	if err != nil {
		return fallback, fmt.Errorf("kv: get %q: %w", key, err)
	}
	if len(rec.Value) == 0 || string(rec.Value) == "null" {
		return fallback, nil
	}

	var out T
	if err := json.Unmarshal(rec.Value, &out); err != nil {
		return fallback, fmt.Errorf("kv: decode %q: %w", key, err)
	}
	return out, nil
}

// Set overwrites the value stored under key in full.
func Set[T any](ctx context.Context, s *Store, key string, value T) error {
	if strings.TrimSpace(key) == "" {
		return ErrEmptyKey
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("kv: encode %q: %w", key, err)
	}

	rec := Record{Key: key, Value: raw, UpdatedAt: time.Now().UTC()}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("kv: set %q: %w", key, err)
	}
	return nil
}
