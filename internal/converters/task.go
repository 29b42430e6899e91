// Package converters provides type-safe conversion between
// serialized task records and domain models.
//
// All conversions handle:
// - absent completedAt (nil pointer vs JSON null)
// - ISO-8601 timestamp parsing
//
// Conversion failures are explicit - a malformed record is reported as an
// error so the caller can fall back to a clean state instead of loading
// half-parsed data.
package converters

import (
	"fmt"
	"time"

	"github.com/mvelasquez/tarea/internal/models"
	"github.com/mvelasquez/tarea/internal/types"
)

// TaskToRecord converts a domain task to its serialized form.
// Timestamps are rendered as ISO-8601 (RFC 3339) strings.
func TaskToRecord(t *models.Task) models.TaskRecord {
	rec := models.TaskRecord{
		ID:        t.ID.ToInt(),
		Text:      t.Text,
		Completed: t.Completed,
		CreatedAt: t.CreatedAt.Format(time.RFC3339Nano),
	}

	if t.CompletedAt != nil {
		s := t.CompletedAt.Format(time.RFC3339Nano)
		rec.CompletedAt = &s
	}

	return rec
}

// RecordToTask converts a serialized record back to a domain task.
// Returns an error if the record violates the task invariants
// (non-positive id, empty text, unparseable timestamps).
func RecordToTask(rec models.TaskRecord) (*models.Task, error) {
	if rec.ID <= 0 {
		return nil, fmt.Errorf("task id must be positive, got %d", rec.ID)
	}
	if rec.Text == "" {
		return nil, fmt.Errorf("task %d has empty text", rec.ID)
	}

	createdAt, err := time.Parse(time.RFC3339Nano, rec.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("task %d has invalid createdAt: %w", rec.ID, err)
	}

	task := &models.Task{
		ID:        types.TaskIDFromInt(rec.ID),
		Text:      rec.Text,
		Completed: rec.Completed,
		CreatedAt: createdAt,
	}

	if rec.CompletedAt != nil {
		completedAt, err := time.Parse(time.RFC3339Nano, *rec.CompletedAt)
		if err != nil {
			return nil, fmt.Errorf("task %d has invalid completedAt: %w", rec.ID, err)
		}
		task.CompletedAt = &completedAt
	}

	// completedAt is present iff the task is completed
	if task.Completed != (task.CompletedAt != nil) {
		return nil, fmt.Errorf("task %d: completed=%v but completedAt presence=%v",
			rec.ID, task.Completed, task.CompletedAt != nil)
	}

	return task, nil
}

// TasksToRecords converts a task sequence, preserving order
func TasksToRecords(tasks []*models.Task) []models.TaskRecord {
	records := make([]models.TaskRecord, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, TaskToRecord(t))
	}
	return records
}

// RecordsToTasks converts a record sequence, preserving order.
// The first malformed record aborts the whole conversion.
func RecordsToTasks(records []models.TaskRecord) ([]*models.Task, error) {
	tasks := make([]*models.Task, 0, len(records))
	for _, rec := range records {
		task, err := RecordToTask(rec)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}
