package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mvelasquez/tarea/internal/models"
	"github.com/mvelasquez/tarea/internal/tui/state"
)

// View renders the current state of the application.
// This implements the "View" part of the Model-View-Update pattern.
func (m Model) View() string {
	// Wait for terminal size to be initialized
	if m.uiState.Width() == 0 {
		return "Loading..."
	}

	if m.uiState.Mode() == state.HelpMode {
		return m.helpView()
	}

	// Centered dialogs replace the board while active
	if m.uiState.Mode() == state.AddTaskMode || m.uiState.Mode() == state.EditTaskMode {
		return lipgloss.Place(
			m.uiState.Width(), m.uiState.Height(),
			lipgloss.Center, lipgloss.Center,
			m.inputView(),
		)
	}

	if m.uiState.Mode() == state.DeleteConfirmMode {
		return lipgloss.Place(
			m.uiState.Width(), m.uiState.Height(),
			lipgloss.Center, lipgloss.Center,
			m.confirmView(),
		)
	}

	var b strings.Builder

	b.WriteString(TitleStyle.Render("tarea"))
	b.WriteString("\n")
	b.WriteString(m.tabsView())
	b.WriteString("\n")

	if m.uiState.Mode() == state.SearchMode || m.store.SearchTerm() != "" {
		b.WriteString(m.searchBarView())
		b.WriteString("\n")
	}

	b.WriteString(m.listView())
	b.WriteString("\n")
	b.WriteString(m.statusBarView())

	if m.notificationState.HasAny() {
		b.WriteString("\n")
		b.WriteString(m.notificationsView())
	}

	return b.String()
}

// tabsView renders the completion filter as a tab row
func (m Model) tabsView() string {
	current := m.store.Filter()

	tabs := make([]string, 0, len(filterCycle))
	for _, f := range filterCycle {
		label := string(f)
		if f == current {
			tabs = append(tabs, ActiveTabStyle.Render(label))
		} else {
			tabs = append(tabs, TabStyle.Render(label))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// searchBarView renders the active search term
func (m Model) searchBarView() string {
	if m.uiState.Mode() == state.SearchMode {
		return SearchBarStyle.Render(m.input.View())
	}
	return SearchBarStyle.Render("/" + m.store.SearchTerm())
}

// listView renders the filtered task list, or the store's empty-state message
func (m Model) listView() string {
	view := m.store.FilteredView()
	if len(view) == 0 {
		return SubtleStyle.Render(m.store.EmptyMessage())
	}

	lines := make([]string, 0, len(view))
	for i, task := range view {
		lines = append(lines, m.taskLine(task, i == m.uiState.SelectedTask()))
	}
	return strings.Join(lines, "\n")
}

// taskLine renders one task row with checkbox, id and text
func (m Model) taskLine(task *models.Task, selected bool) string {
	mark := "[ ]"
	text := task.Text
	if task.Completed {
		mark = "[x]"
		text = DoneTextStyle.Render(text)
	}

	line := fmt.Sprintf("%s %3d %s", mark, task.ID.ToInt(), text)
	if selected {
		return SelectedTaskStyle.Render(line)
	}
	return TaskStyle.Render(line)
}

// statusBarView renders stats over the whole task set, ignoring the filter
func (m Model) statusBarView() string {
	stats := m.store.Stats()
	return StatusBarStyle.Render(
		fmt.Sprintf("%d total · %d done · %d pending", stats.Total, stats.Completed, stats.Pending),
	)
}

// notificationsView renders pending notifications, most recent last
func (m Model) notificationsView() string {
	lines := make([]string, 0, len(m.notificationState.All()))
	for _, n := range m.notificationState.All() {
		switch n.Level {
		case state.LevelError:
			lines = append(lines, ErrorNotificationStyle.Render(n.Message))
		case state.LevelWarning:
			lines = append(lines, WarningNotificationStyle.Render(n.Message))
		default:
			lines = append(lines, InfoNotificationStyle.Render(n.Message))
		}
	}
	return strings.Join(lines, "\n")
}
