package models

// TaskRecord is the serialized form of a Task. Timestamps are ISO-8601 strings
// so the persisted layout stays backend-agnostic.
type TaskRecord struct {
	ID          int     `json:"id"`
	Text        string  `json:"text"`
	Completed   bool    `json:"completed"`
	CreatedAt   string  `json:"createdAt"`
	CompletedAt *string `json:"completedAt"`
}

// Snapshot is the full persisted state: the ordered task list (newest first)
// plus the monotonic id counter. The counter is stored alongside the tasks so
// it survives reloads and never regresses below the highest issued id.
type Snapshot struct {
	Tasks         []TaskRecord `json:"tasks"`
	TaskIDCounter int          `json:"taskIdCounter"`
}
