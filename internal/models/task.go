package models

import (
	"time"

	"github.com/mvelasquez/tarea/internal/types"
)

// Task represents a single to-do item
type Task struct {
	ID          types.TaskID
	Text        string
	Completed   bool
	CreatedAt   time.Time
	CompletedAt *time.Time // set when Completed turns true, cleared when it turns false
}

// Stats summarizes the entire unfiltered task set
type Stats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
}
