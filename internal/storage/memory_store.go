package storage

import "fmt"

// MemoryStore is an in-process Provider for tests and dry runs
type MemoryStore struct {
	Values map[string][]byte
	// FailWrites makes PutAll return an error
	FailWrites bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{Values: make(map[string][]byte)}
}

func (m *MemoryStore) Init() error  { return nil }
func (m *MemoryStore) Load() error  { return nil }
func (m *MemoryStore) Close() error { return nil }

func (m *MemoryStore) Get(key string) ([]byte, error) {
	v, ok := m.Values[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return v, nil
}

func (m *MemoryStore) PutAll(values map[string][]byte) error {
	if m.FailWrites {
		return fmt.Errorf("write refused")
	}
	for k, v := range values {
		m.Values[k] = v
	}
	return nil
}

func (m *MemoryStore) Backend() string       { return "memory" }
func (m *MemoryStore) GetConfigPath() string { return "" }
