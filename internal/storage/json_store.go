package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kimurataturyu-sys/workout-log/internal/constants"
	"github.com/kimurataturyu-sys/workout-log/internal/logger"
)

// JSONStore keeps every key as the JSON text of its value inside one file,
// so a single damaged value does not take its siblings with it.
type JSONStore struct {
	path   string
	values map[string]string
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
		return s.Load()
	}

	s.values = make(map[string]string)
	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run '%s init' first", constants.AppName)
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	values := make(map[string]string)
	if err := json.Unmarshal(data, &values); err != nil {
		// The whole file is unreadable: start over with no keys
		logger.Warn("Storage file is corrupt, starting empty", "path", s.path, "error", err)
		values = make(map[string]string)
	}
	s.values = values

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	// Write to a sibling file first so a crash never leaves a half-written store
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Get(key string) ([]byte, error) {
	if s.values == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	value, ok := s.values[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return []byte(value), nil
}

func (s *JSONStore) PutAll(values map[string][]byte) error {
	if s.values == nil {
		return fmt.Errorf("storage not loaded")
	}

	next := make(map[string]string, len(s.values)+len(values))
	for k, v := range s.values {
		next[k] = v
	}
	for k, v := range values {
		next[k] = string(v)
	}

	prev := s.values
	s.values = next
	if err := s.save(); err != nil {
		s.values = prev
		return err
	}
	return nil
}

func (s *JSONStore) Backend() string {
	return constants.BackendJSON
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
