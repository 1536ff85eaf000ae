// Package db opens the local database backing all persisted collections.
package db

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type Config struct {
	// Dir is the data directory. Created on first run.
	Dir string
	// File is the database file name inside Dir.
	File string
}

// Open opens (creating if needed) the sqlite database under cfg.Dir.
func Open(cfg Config, logger gormlogger.Interface) (*gorm.DB, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dir, err)
	}

	file := cfg.File
	if file == "" {
		file = "billfold.db"
	}

	gdb, err := gorm.Open(sqlite.Open(filepath.Join(dir, file)), &gorm.Config{
		Logger: logger,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return gdb, nil
}
