package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mvelasquez/tarea/internal/models"
	"github.com/mvelasquez/tarea/internal/tui/state"
)

// filterCycle is the order the filter key steps through
var filterCycle = []models.Filter{
	models.FilterAll,
	models.FilterPending,
	models.FilterCompleted,
}

// handleCycleFilter advances to the next completion filter
func (m Model) handleCycleFilter() (tea.Model, tea.Cmd) {
	current := m.store.Filter()
	next := filterCycle[0]
	for i, f := range filterCycle {
		if f == current {
			next = filterCycle[(i+1)%len(filterCycle)]
			break
		}
	}

	if err := m.store.SetFilter(next); err != nil {
		m.notificationState.Add(state.LevelError, err.Error())
		return m, nil
	}

	m.uiState.ClampSelection(len(m.currentView()))
	return m, nil
}
