package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mvelasquez/tarea/internal/models"
)

// DefaultFilePath returns the default JSON file location, ~/.tarea/tasks.json
func DefaultFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".tarea", "tasks.json"), nil
}

// FileAdapter stores the snapshot as a single JSON document on disk.
// The whole document is rewritten on every save.
type FileAdapter struct {
	path string
}

// NewFileAdapter creates a file-backed adapter at the given path
func NewFileAdapter(path string) *FileAdapter {
	return &FileAdapter{path: path}
}

// Save writes the snapshot as pretty-printed JSON
func (a *FileAdapter) Save(_ context.Context, snap *models.Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(a.path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot: %w", err)
	}

	if err := os.WriteFile(a.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", a.path, err)
	}
	return nil
}

// Load reads the snapshot back. A missing file returns (nil, nil);
// unparseable content is reported as an error.
func (a *FileAdapter) Load(_ context.Context) (*models.Snapshot, error) {
	data, err := os.ReadFile(a.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", a.path, err)
	}

	snap := &models.Snapshot{}
	if err := json.Unmarshal(data, snap); err != nil {
		return nil, fmt.Errorf("malformed snapshot in %s: %w", a.path, err)
	}

	return snap, nil
}

// Close is a no-op for the file backend
func (a *FileAdapter) Close() error {
	return nil
}
