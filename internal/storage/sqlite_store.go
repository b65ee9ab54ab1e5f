package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/lakshmikanth26/new-job-journey/internal/logger"
)

// SQLiteStore keeps the key space in a single kv table. Values are stored as
// serialized JSON text, so the whole-blob-per-key persistence granularity is
// identical to the JSON store.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS kv (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at TEXT NOT NULL
)`

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(sqliteSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'compass init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(sqliteSchema); err != nil {
		return fmt.Errorf("failed to validate schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) Get(key string, v any) bool {
	if s.db == nil {
		logger.Warn("Get on unloaded store", "key", key)
		return false
	}

	var raw string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&raw)
	if err == sql.ErrNoRows {
		return false
	}
	if err != nil {
		logger.Error("Failed to read stored value", "key", key, "error", err)
		return false
	}

	if err := json.Unmarshal([]byte(raw), v); err != nil {
		logger.Error("Failed to decode stored value", "key", key, "error", err)
		return false
	}

	return true
}

func (s *SQLiteStore) Set(key string, v any) {
	if s.db == nil {
		logger.Warn("Set on unloaded store", "key", key)
		return
	}

	raw, err := json.Marshal(v)
	if err != nil {
		logger.Error("Failed to encode value", "key", key, "error", err)
		return
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = s.db.Exec(
		"INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at",
		key, string(raw), now,
	)
	if err != nil {
		logger.Error("Failed to persist value", "key", key, "error", err)
	}
}

func (s *SQLiteStore) Remove(key string) {
	if s.db == nil {
		return
	}

	if _, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		logger.Error("Failed to remove value", "key", key, "error", err)
	}
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
