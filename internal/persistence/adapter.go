// Package persistence handles durable storage of the task store state.
// Backends implement a small key-value contract: save the whole serialized
// snapshot after every mutation, load it once at startup.
package persistence

import (
	"context"

	"github.com/mvelasquez/tarea/internal/models"
)

// Adapter is the storage contract the task store depends on. Any backend
// (SQLite, JSON file, in-memory) must satisfy this interface.
type Adapter interface {
	// Save persists the snapshot, replacing any previously saved state.
	Save(ctx context.Context, snap *models.Snapshot) error

	// Load returns the last saved snapshot, or (nil, nil) when nothing has
	// been saved yet. Malformed stored data is reported as an error.
	Load(ctx context.Context) (*models.Snapshot, error)

	// Close releases any resources held by the backend
	Close() error
}
