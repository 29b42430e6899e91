package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode        Mode = iota // Default navigation mode
	AddTaskMode                   // Typing the text of a new task
	EditTaskMode                  // Editing an existing task's text
	SearchMode                    // Vim-style incremental search (/)
	DeleteConfirmMode             // Confirming task deletion
	HelpMode                      // Displaying help screen
)

// UIState manages the user interface state: the task selection, terminal
// dimensions, and the current interaction mode.
type UIState struct {
	// selectedTask is the index of the selected task within the filtered view
	selectedTask int

	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode
}

// NewUIState creates a new UIState with default values
func NewUIState() *UIState {
	return &UIState{
		selectedTask: 0,
		width:        0,
		height:       0,
		mode:         NormalMode,
	}
}

// SelectedTask returns the index of the selected task in the filtered view
func (s *UIState) SelectedTask() int {
	return s.selectedTask
}

// SetSelectedTask sets the selected task index
func (s *UIState) SetSelectedTask(i int) {
	s.selectedTask = i
}

// ClampSelection keeps the selection inside a view of the given length
func (s *UIState) ClampSelection(viewLen int) {
	if s.selectedTask >= viewLen {
		s.selectedTask = viewLen - 1
	}
	if s.selectedTask < 0 {
		s.selectedTask = 0
	}
}

// Mode returns the current interaction mode
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode sets the current interaction mode
func (s *UIState) SetMode(m Mode) {
	s.mode = m
}

// Width returns the terminal width
func (s *UIState) Width() int {
	return s.width
}

// Height returns the terminal height
func (s *UIState) Height() int {
	return s.height
}

// SetSize stores the terminal dimensions
func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
}
