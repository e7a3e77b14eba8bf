// Package store owns the embedded SQLite database file. Every engine
// call is funneled through one mutex-guarded access point because the
// engine does not allow concurrent writers.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const createActivityTable = `
CREATE TABLE IF NOT EXISTS activity (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    start_time TEXT NOT NULL,
    end_time TEXT,
    activity_type TEXT NOT NULL,
    status TEXT NOT NULL,
    description TEXT
);`

const createJobTable = `
CREATE TABLE IF NOT EXISTS job (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    description TEXT NOT NULL
);`

// Store wraps the database handle. All access goes through Sync so no
// two operations ever touch the engine at the same time.
type Store struct {
	mu sync.Mutex
	db *gorm.DB
}

// DefaultPath returns the location of the database file.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".timr", "timr.db"), nil
}

// Open opens (or creates) the database at path and ensures the schema
// exists. Use ":memory:" for a throwaway in-memory database.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, &Error{Kind: KindOpen, Err: fmt.Errorf("create data directory: %w", err)}
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, &Error{Kind: KindOpen, Err: err}
	}

	s := &Store{db: db}
	if err := s.createTables(); err != nil {
		return nil, err
	}
	return s, nil
}

// Sync runs fn with exclusive access to the database handle. fn must not
// retain the handle past its return.
func (s *Store) Sync(fn func(db *gorm.DB) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.db)
}

func (s *Store) createTables() error {
	return s.Sync(func(db *gorm.DB) error {
		for _, ddl := range []string{createActivityTable, createJobTable} {
			if err := db.Exec(ddl).Error; err != nil {
				return &Error{Kind: KindExec, Err: err}
			}
		}
		return nil
	})
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
