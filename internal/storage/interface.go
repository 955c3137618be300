package storage

import "errors"

// ErrKeyNotFound is returned by Provider.Get for a key that was never written
var ErrKeyNotFound = errors.New("key not found")

// Provider is a keyed byte store. Values are opaque to it.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Get returns the raw value for key or ErrKeyNotFound
	Get(key string) ([]byte, error)
	// PutAll writes every value atomically where the backend allows it
	PutAll(values map[string][]byte) error

	// Utils
	Backend() string
	GetConfigPath() string
}
