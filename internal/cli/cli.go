// Package cli wires the task store into cobra commands. Dispatch-by-string
// lives here; the store itself only exposes typed operations.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mvelasquez/tarea/internal/config"
	"github.com/mvelasquez/tarea/internal/persistence"
	"github.com/mvelasquez/tarea/internal/store"
)

// CLI represents the CLI application context
type CLI struct {
	Store   *store.Store
	Config  *config.Config
	adapter persistence.Adapter
}

// NewCLI initializes the CLI: config, persistence backend, hydrated store.
// A failed or malformed load is not fatal; it is logged and the store starts
// empty, per the persistence contract.
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	adapter, err := persistence.Open(ctx, cfg.Storage.Backend, cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	s, err := store.New(ctx, adapter)
	if err != nil {
		if !store.IsPersistence(err) {
			_ = adapter.Close()
			return nil, err
		}
		// Recoverable: start from a clean slate
		slog.Warn("stored tasks could not be loaded, starting empty", "error", err)
	}

	return &CLI{
		Store:   s,
		Config:  cfg,
		adapter: adapter,
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	return c.adapter.Close()
}
