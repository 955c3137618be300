package storage

import (
	"fmt"

	"github.com/kimurataturyu-sys/workout-log/internal/constants"
)

// Open returns the Provider for backend at path without touching the disk
func Open(backend, path string) (Provider, error) {
	switch backend {
	case constants.BackendSQLite, "":
		return NewSQLiteStore(path), nil
	case constants.BackendJSON:
		return NewJSONStore(path), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", backend)
	}
}
