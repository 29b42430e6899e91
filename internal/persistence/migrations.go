package persistence

import (
	"context"
	"database/sql"
)

// runMigrations creates the database schema if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	// The store state is a key-value mapping: the serialized task list under
	// one key, the id counter under another. Both rows are replaced together
	// on every save.
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS store_state (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`)
	return err
}
