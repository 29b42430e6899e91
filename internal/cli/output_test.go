package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/mvelasquez/tarea/internal/models"
	"github.com/mvelasquez/tarea/internal/store"
	"github.com/mvelasquez/tarea/internal/testutil"
	"github.com/mvelasquez/tarea/internal/types"
)

func sampleTask(completed bool) *models.Task {
	created := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	task := &models.Task{
		ID:        types.TaskID(7),
		Text:      "Buy milk",
		Completed: completed,
		CreatedAt: created,
	}
	if completed {
		done := created.Add(time.Hour)
		task.CompletedAt = &done
	}
	return task
}

func TestSuccessHumanOutput(t *testing.T) {
	f := &OutputFormatter{}

	out := testutil.CaptureOutput(t, func() {
		_ = f.Success(NewTaskView(sampleTask(false)))
	})
	if !strings.Contains(out, "   7 [ ] Buy milk") {
		t.Errorf("pending task output = %q", out)
	}

	out = testutil.CaptureOutput(t, func() {
		_ = f.Success(NewTaskView(sampleTask(true)))
	})
	if !strings.Contains(out, "   7 [x] Buy milk") {
		t.Errorf("completed task output = %q", out)
	}
}

func TestSuccessHumanStats(t *testing.T) {
	f := &OutputFormatter{}

	out := testutil.CaptureOutput(t, func() {
		_ = f.Success(models.Stats{Total: 3, Completed: 1, Pending: 2})
	})
	if !strings.Contains(out, "3 total, 1 completed, 2 pending") {
		t.Errorf("stats output = %q", out)
	}
}

func TestSuccessJSONOutput(t *testing.T) {
	f := &OutputFormatter{JSON: true}

	out := testutil.CaptureOutput(t, func() {
		_ = f.Success(NewTaskView(sampleTask(true)))
	})

	var envelope struct {
		Success bool     `json:"success"`
		Data    TaskView `json:"data"`
	}
	if err := json.Unmarshal([]byte(out), &envelope); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if !envelope.Success {
		t.Error("success = false")
	}
	if envelope.Data.ID != 7 || envelope.Data.Text != "Buy milk" {
		t.Errorf("data = %+v", envelope.Data)
	}
	if envelope.Data.CompletedAt == nil {
		t.Error("completedAt missing from JSON payload")
	}
}

func TestSuccessJSONOmitsNilCompletedAt(t *testing.T) {
	f := &OutputFormatter{JSON: true}

	out := testutil.CaptureOutput(t, func() {
		_ = f.Success(NewTaskView(sampleTask(false)))
	})
	if strings.Contains(out, "completedAt") {
		t.Errorf("pending task JSON includes completedAt: %s", out)
	}
}

func TestSuccessQuietPrintsOnlyID(t *testing.T) {
	f := &OutputFormatter{Quiet: true}

	out := testutil.CaptureOutput(t, func() {
		_ = f.Success(NewTaskView(sampleTask(false)))
	})
	if strings.TrimSpace(out) != "7" {
		t.Errorf("quiet output = %q, want 7", out)
	}

	// Data without an id prints nothing
	out = testutil.CaptureOutput(t, func() {
		_ = f.Success(models.Stats{Total: 1})
	})
	if out != "" {
		t.Errorf("quiet output for stats = %q, want empty", out)
	}
}

func TestErrorJSONEnvelope(t *testing.T) {
	f := &OutputFormatter{JSON: true}

	out := testutil.CaptureOutput(t, func() {
		_ = f.Error(CodeNotFound, "toggle task 9: task not found")
	})

	var envelope struct {
		Success bool `json:"success"`
		Error   struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal([]byte(out), &envelope); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if envelope.Success {
		t.Error("success = true on error output")
	}
	if envelope.Error.Code != CodeNotFound {
		t.Errorf("code = %q, want %q", envelope.Error.Code, CodeNotFound)
	}
	if !strings.Contains(envelope.Error.Message, "task not found") {
		t.Errorf("message = %q", envelope.Error.Message)
	}
}

func TestNewTaskViewsPreservesOrder(t *testing.T) {
	created := time.Now()
	tasks := []*models.Task{
		{ID: types.TaskID(2), Text: "newer", CreatedAt: created},
		{ID: types.TaskID(1), Text: "older", CreatedAt: created},
	}

	views := NewTaskViews(tasks)
	if len(views) != 2 || views[0].Text != "newer" || views[1].Text != "older" {
		t.Errorf("views = %+v", views)
	}
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"empty text", store.ErrEmptyText, CodeValidation},
		{"too long", store.ErrTextTooLong, CodeValidation},
		{"invalid filter", store.ErrInvalidFilter, CodeValidation},
		{"not found", fmt.Errorf("toggle task 9: %w", store.ErrTaskNotFound), CodeNotFound},
		{"persistence", &store.PersistenceError{Op: "save", Err: errors.New("disk full")}, CodePersistence},
		{"unknown", errors.New("boom"), CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorCode(tt.err); got != tt.want {
				t.Errorf("ErrorCode(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}
