package persistence

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileAdapterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	adapter := NewFileAdapter(path)
	ctx := context.Background()

	if err := adapter.Save(ctx, sampleSnapshot()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := adapter.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got == nil {
		t.Fatal("Load returned nil snapshot after Save")
	}
	if got.TaskIDCounter != 3 {
		t.Errorf("counter = %d, want 3", got.TaskIDCounter)
	}
	if len(got.Tasks) != 2 {
		t.Fatalf("loaded %d tasks, want 2", len(got.Tasks))
	}
	if got.Tasks[0].Text != "Buy eggs" {
		t.Errorf("task order not preserved, first = %q", got.Tasks[0].Text)
	}
}

func TestFileAdapterDocumentLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	adapter := NewFileAdapter(path)

	if err := adapter.Save(context.Background(), sampleSnapshot()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved file failed: %v", err)
	}
	doc := string(data)
	for _, key := range []string{`"tasks"`, `"taskIdCounter"`, `"createdAt"`, `"completedAt"`} {
		if !strings.Contains(doc, key) {
			t.Errorf("document missing %s key:\n%s", key, doc)
		}
	}
}

func TestFileAdapterLoadMissingFile(t *testing.T) {
	adapter := NewFileAdapter(filepath.Join(t.TempDir(), "never-saved.json"))

	got, err := adapter.Load(context.Background())
	if err != nil {
		t.Fatalf("Load on missing file failed: %v", err)
	}
	if got != nil {
		t.Errorf("Load on missing file = %+v, want nil", got)
	}
}

func TestFileAdapterLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	if err := os.WriteFile(path, []byte("{truncated"), 0o644); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	adapter := NewFileAdapter(path)
	if _, err := adapter.Load(context.Background()); err == nil {
		t.Error("Load with malformed file succeeded")
	}
}

func TestFileAdapterSaveCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "tasks.json")
	adapter := NewFileAdapter(path)

	if err := adapter.Save(context.Background(), sampleSnapshot()); err != nil {
		t.Fatalf("Save into missing directory failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("saved file not found: %v", err)
	}
}
