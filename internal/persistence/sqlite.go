package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/mvelasquez/tarea/internal/models"
)

// Keys of the persisted state mapping
const (
	keyTasks   = "tasks"
	keyCounter = "taskIdCounter"
)

// SQLiteAdapter stores the snapshot in a SQLite key-value table.
// This is the default backend.
type SQLiteAdapter struct {
	db *sql.DB
}

// NewSQLiteAdapter wraps an initialized database (see InitDB)
func NewSQLiteAdapter(db *sql.DB) *SQLiteAdapter {
	return &SQLiteAdapter{db: db}
}

// Save writes the task document and the id counter in a single transaction
func (a *SQLiteAdapter) Save(ctx context.Context, snap *models.Snapshot) error {
	data, err := json.Marshal(snap.Tasks)
	if err != nil {
		return fmt.Errorf("failed to serialize tasks: %w", err)
	}

	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const upsert = `INSERT INTO store_state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`

	if _, err := tx.ExecContext(ctx, upsert, keyTasks, string(data)); err != nil {
		return fmt.Errorf("failed to save tasks: %w", err)
	}
	if _, err := tx.ExecContext(ctx, upsert, keyCounter, strconv.Itoa(snap.TaskIDCounter)); err != nil {
		return fmt.Errorf("failed to save counter: %w", err)
	}

	return tx.Commit()
}

// Load reads the snapshot back. A database that has never been saved to
// returns (nil, nil); malformed values are reported as errors.
func (a *SQLiteAdapter) Load(ctx context.Context) (*models.Snapshot, error) {
	var tasksJSON string
	err := a.db.QueryRowContext(ctx,
		"SELECT value FROM store_state WHERE key = ?", keyTasks,
	).Scan(&tasksJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read tasks: %w", err)
	}

	snap := &models.Snapshot{}
	if err := json.Unmarshal([]byte(tasksJSON), &snap.Tasks); err != nil {
		return nil, fmt.Errorf("malformed tasks document: %w", err)
	}

	var counterValue string
	err = a.db.QueryRowContext(ctx,
		"SELECT value FROM store_state WHERE key = ?", keyCounter,
	).Scan(&counterValue)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("tasks present but counter missing")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read counter: %w", err)
	}

	snap.TaskIDCounter, err = strconv.Atoi(counterValue)
	if err != nil {
		return nil, fmt.Errorf("malformed counter %q: %w", counterValue, err)
	}

	return snap, nil
}

// Close closes the underlying database
func (a *SQLiteAdapter) Close() error {
	return a.db.Close()
}
