// Package store implements the in-memory task store and its derived views.
// The store owns the ordered task sequence (newest first), the monotonic id
// counter, and the current filter/search criteria. Every successful mutation
// is persisted synchronously through the adapter; persistence failures are
// surfaced as recoverable warnings, never as rollbacks.
package store

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mvelasquez/tarea/internal/converters"
	"github.com/mvelasquez/tarea/internal/models"
	"github.com/mvelasquez/tarea/internal/persistence"
	"github.com/mvelasquez/tarea/internal/types"
)

// MaxTextLength is the maximum task text length in characters, after trimming
const MaxTextLength = 200

// Store holds the task list and the filter/search criteria. It is not safe
// for concurrent use: there is exactly one logical writer and every operation
// runs to completion before the next begins.
type Store struct {
	adapter persistence.Adapter

	tasks   []*models.Task // newest first
	counter int            // next id to issue, never regresses
	filter  models.Filter
	search  string // lowercased search term, empty means no search filtering

	now func() time.Time
}

// New creates a Store hydrated from the adapter. When loading fails or the
// stored data is malformed, the store falls back to an empty task list and
// counter 1; the returned *PersistenceError describes the degradation and the
// store remains fully usable.
func New(ctx context.Context, adapter persistence.Adapter) (*Store, error) {
	s := &Store{
		adapter: adapter,
		counter: 1,
		filter:  models.FilterAll,
		now:     time.Now,
	}

	snap, err := adapter.Load(ctx)
	if err != nil {
		return s, &PersistenceError{Op: "load", Err: err}
	}
	if snap == nil {
		// Nothing saved yet
		return s, nil
	}

	tasks, err := converters.RecordsToTasks(snap.Tasks)
	if err != nil {
		return s, &PersistenceError{Op: "load", Err: err}
	}

	s.tasks = tasks
	s.counter = snap.TaskIDCounter

	// The counter must never regress below the highest issued id, even if
	// the stored counter is stale or missing.
	for _, t := range tasks {
		if t.ID.ToInt() >= s.counter {
			s.counter = t.ID.ToInt() + 1
		}
	}
	if s.counter < 1 {
		s.counter = 1
	}

	return s, nil
}

// Add creates a new task from the trimmed text and prepends it to the
// sequence. The returned task is valid even when err is a *PersistenceError.
func (s *Store) Add(ctx context.Context, text string) (*models.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}
	if utf8.RuneCountInString(text) > MaxTextLength {
		return nil, ErrTextTooLong
	}

	task := &models.Task{
		ID:        types.TaskIDFromInt(s.counter),
		Text:      text,
		CreatedAt: s.now(),
	}
	s.counter++
	s.tasks = append([]*models.Task{task}, s.tasks...)

	return task, s.persist(ctx, "add")
}

// Toggle flips the completion state of the task with the given id,
// setting completedAt when it turns true and clearing it when it turns false.
func (s *Store) Toggle(ctx context.Context, id types.TaskID) (*models.Task, error) {
	task := s.find(id)
	if task == nil {
		return nil, fmt.Errorf("toggle task %d: %w", id.ToInt(), ErrTaskNotFound)
	}

	task.Completed = !task.Completed
	if task.Completed {
		completedAt := s.now()
		task.CompletedAt = &completedAt
	} else {
		task.CompletedAt = nil
	}

	return task, s.persist(ctx, "toggle")
}

// Edit replaces the task's text in place with the trimmed new text.
// A validation failure leaves the task unchanged; callers typically treat it
// as "cancel edit" rather than deleting the task.
func (s *Store) Edit(ctx context.Context, id types.TaskID, newText string) (*models.Task, error) {
	newText = strings.TrimSpace(newText)
	if newText == "" {
		return nil, ErrEmptyText
	}
	if utf8.RuneCountInString(newText) > MaxTextLength {
		return nil, ErrTextTooLong
	}

	task := s.find(id)
	if task == nil {
		return nil, fmt.Errorf("edit task %d: %w", id.ToInt(), ErrTaskNotFound)
	}

	task.Text = newText
	return task, s.persist(ctx, "edit")
}

// Remove deletes the task with the given id immediately. Any UI-level exit
// animation is layered on top; the store's removal is always synchronous.
// The freed id is never reused.
func (s *Store) Remove(ctx context.Context, id types.TaskID) error {
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return s.persist(ctx, "remove")
		}
	}
	return fmt.Errorf("remove task %d: %w", id.ToInt(), ErrTaskNotFound)
}

// SetFilter sets the completion filter to one of the enumerated values
func (s *Store) SetFilter(filter models.Filter) error {
	if !filter.Valid() {
		return fmt.Errorf("%w, got %q", ErrInvalidFilter, string(filter))
	}
	s.filter = filter
	return nil
}

// Filter returns the current completion filter
func (s *Store) Filter() models.Filter {
	return s.filter
}

// SetSearchTerm stores the lowercased term. An empty string disables search
// filtering.
func (s *Store) SetSearchTerm(term string) {
	s.search = strings.ToLower(term)
}

// SearchTerm returns the current lowercased search term
func (s *Store) SearchTerm() string {
	return s.search
}

// FilteredView returns the tasks passing both the completion filter and the
// case-insensitive substring search, preserving insertion order. It is a pure
// projection: re-derived on every call, never cached. Callers must not mutate
// the returned tasks.
func (s *Store) FilteredView() []*models.Task {
	view := make([]*models.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if !s.filter.Matches(t.Completed) {
			continue
		}
		if s.search != "" && !strings.Contains(strings.ToLower(t.Text), s.search) {
			continue
		}
		view = append(view, t)
	}
	return view
}

// Stats computes counts over the entire unfiltered task set
func (s *Store) Stats() models.Stats {
	stats := models.Stats{Total: len(s.tasks)}
	for _, t := range s.tasks {
		if t.Completed {
			stats.Completed++
		}
	}
	stats.Pending = stats.Total - stats.Completed
	return stats
}

// EmptyMessage returns the message a UI should show when FilteredView is
// empty, distinguishing "no tasks at all" from "no matches" so presentation
// layers never have to invent their own copy.
func (s *Store) EmptyMessage() string {
	switch {
	case len(s.tasks) == 0:
		return "No tasks yet. Add one to get started."
	case s.search != "":
		return fmt.Sprintf("No tasks match %q.", s.search)
	case s.filter == models.FilterCompleted:
		return "No completed tasks yet."
	case s.filter == models.FilterPending:
		return "No pending tasks. All done."
	default:
		return "No tasks yet. Add one to get started."
	}
}

// Len returns the total number of tasks, ignoring filter and search
func (s *Store) Len() int {
	return len(s.tasks)
}

// find returns the task with the given id, or nil
func (s *Store) find(id types.TaskID) *models.Task {
	for _, t := range s.tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// snapshot serializes the current state for persistence
func (s *Store) snapshot() *models.Snapshot {
	return &models.Snapshot{
		Tasks:         converters.TasksToRecords(s.tasks),
		TaskIDCounter: s.counter,
	}
}

// persist saves the current state. A failure is wrapped as a recoverable
// *PersistenceError; the in-memory mutation stays applied.
func (s *Store) persist(ctx context.Context, op string) error {
	if err := s.adapter.Save(ctx, s.snapshot()); err != nil {
		return &PersistenceError{Op: op, Err: err}
	}
	return nil
}
