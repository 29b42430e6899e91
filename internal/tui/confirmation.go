package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mvelasquez/tarea/internal/tui/state"
)

// ============================================================================
// DELETE CONFIRMATION
// ============================================================================

// handleDeleteTask asks for confirmation before removing the selected task.
// The confirmation is purely presentation; the store's removal is immediate
// once confirmed.
func (m Model) handleDeleteTask() (tea.Model, tea.Cmd) {
	task := m.selectedTask()
	if task == nil {
		return m, nil
	}

	m.deletingID = task.ID
	m.uiState.SetMode(state.DeleteConfirmMode)
	return m, nil
}

// handleDeleteConfirmMode handles the y/n confirmation dialog
func (m Model) handleDeleteConfirmMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		err := m.store.Remove(m.ctx, m.deletingID)
		m.warnIfPersistence(err)
		m.uiState.SetMode(state.NormalMode)
		m.uiState.ClampSelection(len(m.currentView()))
		return m, nil
	case "n", "N", "esc":
		m.uiState.SetMode(state.NormalMode)
		return m, nil
	}
	return m, nil
}

// confirmView renders the delete confirmation dialog
func (m Model) confirmView() string {
	line := fmt.Sprintf("Delete task %d? (y/n)", m.deletingID.ToInt())
	return ConfirmBoxStyle.Render(line)
}
