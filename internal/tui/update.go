package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mvelasquez/tarea/internal/tui/state"
)

// Update handles all messages and updates the model accordingly.
// This implements the "Update" part of the Model-View-Update pattern.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.uiState.SetSize(msg.Width, msg.Height)
	}

	return m, nil
}

// handleKeyMsg dispatches keyboard input to the active mode
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.uiState.Mode() {
	case state.AddTaskMode, state.EditTaskMode:
		return m.handleInputMode(msg)
	case state.SearchMode:
		return m.handleSearchMode(msg)
	case state.DeleteConfirmMode:
		return m.handleDeleteConfirmMode(msg)
	case state.HelpMode:
		return m.handleHelpMode(msg)
	default:
		return m.handleNormalMode(msg)
	}
}

func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notificationState.Clear()

	key := msg.String()
	km := m.config.KeyMappings

	switch key {
	case km.Quit, "ctrl+c":
		return m, tea.Quit
	case km.ShowHelp:
		m.uiState.SetMode(state.HelpMode)
		return m, nil
	case km.AddTask:
		return m.handleAddTask()
	case km.EditTask:
		return m.handleEditTask()
	case km.DeleteTask:
		return m.handleDeleteTask()
	case km.ToggleTask, "enter":
		return m.handleToggleTask()
	case km.NextTask, "down":
		return m.handleNavigateDown()
	case km.PrevTask, "up":
		return m.handleNavigateUp()
	case km.CycleFilter, "tab":
		return m.handleCycleFilter()
	case km.Search:
		return m.handleEnterSearch()
	}

	return m, nil
}

func (m Model) handleToggleTask() (tea.Model, tea.Cmd) {
	task := m.selectedTask()
	if task == nil {
		return m, nil
	}

	_, err := m.store.Toggle(m.ctx, task.ID)
	m.warnIfPersistence(err)

	// The task may have left the current projection (e.g. completing a task
	// under the pending filter), so keep the selection in bounds.
	m.uiState.ClampSelection(len(m.currentView()))
	return m, nil
}

func (m Model) handleNavigateDown() (tea.Model, tea.Cmd) {
	if m.uiState.SelectedTask() < len(m.currentView())-1 {
		m.uiState.SetSelectedTask(m.uiState.SelectedTask() + 1)
	}
	return m, nil
}

func (m Model) handleNavigateUp() (tea.Model, tea.Cmd) {
	if m.uiState.SelectedTask() > 0 {
		m.uiState.SetSelectedTask(m.uiState.SelectedTask() - 1)
	}
	return m, nil
}
