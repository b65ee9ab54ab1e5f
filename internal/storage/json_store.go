package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/lakshmikanth26/new-job-journey/internal/logger"
)

type document struct {
	Version int                        `json:"version"`
	Data    map[string]json.RawMessage `json:"data"`
}

// JSONStore persists the whole key space as one JSON document on disk. Every
// Set/Remove rewrites the file; reads are served from memory after Load.
type JSONStore struct {
	mu   sync.Mutex
	path string
	doc  *document
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.doc = &document{
		Version: 1,
		Data:    make(map[string]json.RawMessage),
	}

	return s.flush()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'compass init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.doc = &document{}
	if err := json.Unmarshal(data, s.doc); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.doc.Data == nil {
		s.doc.Data = make(map[string]json.RawMessage)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

// flush must be called with mu held (or before the store is shared).
func (s *JSONStore) flush() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Get(key string, v any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.doc == nil {
		logger.Warn("Get on unloaded store", "key", key)
		return false
	}

	raw, ok := s.doc.Data[key]
	if !ok {
		return false
	}

	if err := json.Unmarshal(raw, v); err != nil {
		// Treat corrupt data as a miss rather than surfacing a partial value
		logger.Error("Failed to decode stored value", "key", key, "error", err)
		return false
	}

	return true
}

func (s *JSONStore) Set(key string, v any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.doc == nil {
		logger.Warn("Set on unloaded store", "key", key)
		return
	}

	raw, err := json.Marshal(v)
	if err != nil {
		logger.Error("Failed to encode value", "key", key, "error", err)
		return
	}

	s.doc.Data[key] = raw
	if err := s.flush(); err != nil {
		logger.Error("Failed to persist storage", "key", key, "error", err)
	}
}

func (s *JSONStore) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.doc == nil {
		return
	}

	if _, ok := s.doc.Data[key]; !ok {
		return
	}

	delete(s.doc.Data, key)
	if err := s.flush(); err != nil {
		logger.Error("Failed to persist storage", "key", key, "error", err)
	}
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
