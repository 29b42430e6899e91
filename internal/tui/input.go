package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mvelasquez/tarea/internal/store"
	"github.com/mvelasquez/tarea/internal/tui/state"
)

// ============================================================================
// ADD / EDIT MODE HANDLERS
// ============================================================================

// handleAddTask enters add mode with an empty input
func (m Model) handleAddTask() (tea.Model, tea.Cmd) {
	m.input.SetValue("")
	m.input.Prompt = "> "
	m.uiState.SetMode(state.AddTaskMode)
	return m, m.input.Focus()
}

// handleEditTask enters edit mode pre-filled with the selected task's text
func (m Model) handleEditTask() (tea.Model, tea.Cmd) {
	task := m.selectedTask()
	if task == nil {
		return m, nil
	}

	m.editingID = task.ID
	m.input.SetValue(task.Text)
	m.input.CursorEnd()
	m.input.Prompt = "> "
	m.uiState.SetMode(state.EditTaskMode)
	return m, m.input.Focus()
}

// handleInputMode handles text input for task creation/editing
func (m Model) handleInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.handleInputConfirm()
	case "esc":
		return m.handleInputCancel()
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

// handleInputConfirm submits the input to the store. A validation failure
// cancels the dialog: the store guarantees the task is left unchanged, and
// nothing is ever deleted because of bad input.
func (m Model) handleInputConfirm() (tea.Model, tea.Cmd) {
	text := m.input.Value()
	mode := m.uiState.Mode()

	var err error
	if mode == state.EditTaskMode {
		_, err = m.store.Edit(m.ctx, m.editingID, text)
	} else {
		_, err = m.store.Add(m.ctx, text)
		if err == nil || store.IsPersistence(err) {
			// New tasks prepend, select the new first row
			m.uiState.SetSelectedTask(0)
		}
	}

	// An all-whitespace submission is a plain cancel, not an error worth
	// notifying about.
	if err != nil && !errors.Is(err, store.ErrEmptyText) {
		m.warnIfPersistence(err)
	}

	return m.handleInputCancel()
}

// handleInputCancel leaves the input mode without further changes
func (m Model) handleInputCancel() (tea.Model, tea.Cmd) {
	m.input.Blur()
	m.input.SetValue("")
	m.uiState.SetMode(state.NormalMode)
	m.uiState.ClampSelection(len(m.currentView()))
	return m, nil
}

// inputView renders the add/edit dialog box
func (m Model) inputView() string {
	boxStyle := CreateInputBoxStyle
	title := "New task"
	if m.uiState.Mode() == state.EditTaskMode {
		boxStyle = EditInputBoxStyle
		title = "Edit task"
	}

	return boxStyle.Width(inputBoxWidth(m.uiState.Width())).
		Render(title + "\n\n" + m.input.View())
}

// inputBoxWidth keeps the dialog readable on narrow terminals
func inputBoxWidth(termWidth int) int {
	width := 60
	if termWidth > 0 && termWidth-4 < width {
		width = termWidth - 4
	}
	if width < 20 {
		width = 20
	}
	return width
}

