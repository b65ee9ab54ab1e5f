package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	_ "github.com/lib/pq"

	"github.com/lakshmikanth26/new-job-journey/internal/logger"
)

// PostgresStore mirrors the SQLite kv layout over a PostgreSQL connection.
// Selected when the --config value is a postgres:// connection string.
type PostgresStore struct {
	connStr string
	db      *sql.DB
}

func NewPostgresStore(connStr string) *PostgresStore {
	return &PostgresStore{
		connStr: connStr,
	}
}

// HasEmbeddedCredentials reports whether a connection string carries a
// password inline. Credentials belong in the environment, .pgpass, or the
// OS keyring, never in the connection string itself.
func HasEmbeddedCredentials(connStr string) bool {
	u, err := url.Parse(connStr)
	if err != nil {
		return false
	}
	if u.User == nil {
		return false
	}
	pw, hasPassword := u.User.Password()
	return hasPassword && pw != ""
}

const postgresSchema = `
CREATE TABLE IF NOT EXISTS kv (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
)`

func (s *PostgresStore) Init() error {
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.db.Ping(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := s.db.Exec(postgresSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (s *PostgresStore) Load() error {
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.db.Ping(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := s.db.Exec(postgresSchema); err != nil {
		return fmt.Errorf("failed to validate schema: %w", err)
	}

	return nil
}

func (s *PostgresStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *PostgresStore) Get(key string, v any) bool {
	if s.db == nil {
		logger.Warn("Get on unloaded store", "key", key)
		return false
	}

	var raw string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = $1", key).Scan(&raw)
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

func (s *PostgresStore) Set(key string, v any) {
	if s.db == nil {
		logger.Warn("Set on unloaded store", "key", key)
		return
	}

	raw, err := json.Marshal(v)
	if err != nil {
		logger.Error("Failed to encode value", "key", key, "error", err)
		return
	}

	_, err = s.db.Exec(
		"INSERT INTO kv (key, value, updated_at) VALUES ($1, $2, $3) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at",
		key, string(raw), time.Now().UTC(),
	)
	if err != nil {
		logger.Error("Failed to persist value", "key", key, "error", err)
	}
}

func (s *PostgresStore) Remove(key string) {
	if s.db == nil {
		return
	}

	if _, err := s.db.Exec("DELETE FROM kv WHERE key = $1", key); err != nil {
		logger.Error("Failed to remove value", "key", key, "error", err)
	}
}

func (s *PostgresStore) GetConfigPath() string {
	return s.connStr
}
