package persistence

import (
	"context"
	"fmt"
)

// Backend names accepted in the storage configuration
const (
	BackendSQLite = "sqlite"
	BackendJSON   = "json"
)

// Open creates the adapter for the configured backend. An empty path selects
// the backend's default location under ~/.tarea.
func Open(ctx context.Context, backend, path string) (Adapter, error) {
	switch backend {
	case BackendSQLite, "":
		if path == "" {
			var err error
			if path, err = DefaultDBPath(); err != nil {
				return nil, err
			}
		}
		db, err := InitDB(ctx, path)
		if err != nil {
			return nil, err
		}
		return NewSQLiteAdapter(db), nil

	case BackendJSON:
		if path == "" {
			var err error
			if path, err = DefaultFilePath(); err != nil {
				return nil, err
			}
		}
		return NewFileAdapter(path), nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
