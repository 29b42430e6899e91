package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mvelasquez/tarea/internal/tui/state"
)

// ============================================================================
// SEARCH MODE HANDLERS
// ============================================================================

// handleEnterSearch enters search mode and clears any previous search state
func (m Model) handleEnterSearch() (tea.Model, tea.Cmd) {
	m.store.SetSearchTerm("")
	m.input.SetValue("")
	m.input.Prompt = "/"
	m.uiState.SetMode(state.SearchMode)
	return m, m.input.Focus()
}

// handleSearchMode handles keyboard input in search mode. The search is
// incremental: every keystroke updates the store's search term and the view
// re-filters immediately.
func (m Model) handleSearchMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.handleSearchConfirm()
	case "esc":
		return m.handleSearchCancel()
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.store.SetSearchTerm(m.input.Value())
		m.uiState.ClampSelection(len(m.currentView()))
		return m, cmd
	}
}

// handleSearchConfirm keeps the term active and returns to normal mode.
// The term persists and continues to filter the view.
func (m Model) handleSearchConfirm() (tea.Model, tea.Cmd) {
	m.input.Blur()
	m.uiState.SetMode(state.NormalMode)
	return m, nil
}

// handleSearchCancel clears the search and returns to normal mode.
// All tasks are shown again.
func (m Model) handleSearchCancel() (tea.Model, tea.Cmd) {
	m.store.SetSearchTerm("")
	m.input.Blur()
	m.input.SetValue("")
	m.uiState.SetMode(state.NormalMode)
	m.uiState.ClampSelection(len(m.currentView()))
	return m, nil
}
