// Package testutil provides shared test helpers
package testutil

import (
	"bytes"
	"context"
	"io"
	"os"
	"testing"

	"github.com/mvelasquez/tarea/internal/models"
)

// MemoryAdapter is an in-memory persistence backend for tests. The error
// fields allow simulating storage failures.
type MemoryAdapter struct {
	Snapshot *models.Snapshot
	SaveErr  error
	LoadErr  error
	Saves    int
}

// Save stores the snapshot, or fails with SaveErr
func (a *MemoryAdapter) Save(_ context.Context, snap *models.Snapshot) error {
	if a.SaveErr != nil {
		return a.SaveErr
	}
	a.Saves++
	a.Snapshot = snap
	return nil
}

// Load returns the stored snapshot, or fails with LoadErr
func (a *MemoryAdapter) Load(_ context.Context) (*models.Snapshot, error) {
	if a.LoadErr != nil {
		return nil, a.LoadErr
	}
	return a.Snapshot, nil
}

// Close is a no-op
func (a *MemoryAdapter) Close() error {
	return nil
}

// CaptureOutput captures stdout during function execution
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()

	// Save original stdout
	oldStdout := os.Stdout

	// Create pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}

	// Replace stdout with pipe writer
	os.Stdout = w

	// Channel to collect output
	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	// Execute function
	fn()

	// Close writer and restore stdout
	_ = w.Close()
	os.Stdout = oldStdout

	return <-outC
}
