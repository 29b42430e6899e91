package types

// ID type aliases provide semantic meaning and reduce repetitive int conversions.

// TaskID identifies a unique task in the store. IDs are assigned monotonically
// and are never reused, even after the task is deleted.
type TaskID int

// ToInt converts the type alias back to int for display and serialization
func (id TaskID) ToInt() int {
	return int(id)
}

// TaskIDFromInt creates a TaskID from an int value
func TaskIDFromInt(i int) TaskID {
	return TaskID(i)
}
