package models

// Filter selects tasks by completion state
type Filter string

// Recognized filter values
const (
	FilterAll       Filter = "all"
	FilterCompleted Filter = "completed"
	FilterPending   Filter = "pending"
)

// Valid reports whether f is one of the recognized filter values
func (f Filter) Valid() bool {
	switch f {
	case FilterAll, FilterCompleted, FilterPending:
		return true
	}
	return false
}

// Matches reports whether a task with the given completion state passes the filter
func (f Filter) Matches(completed bool) bool {
	switch f {
	case FilterCompleted:
		return completed
	case FilterPending:
		return !completed
	default:
		return true
	}
}
