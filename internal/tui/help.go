package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mvelasquez/tarea/internal/tui/components"
	"github.com/mvelasquez/tarea/internal/tui/state"
)

// handleHelpMode closes the help screen on any key
func (m Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.uiState.SetMode(state.NormalMode)
	return m, nil
}

// helpView renders the help screen as markdown
func (m Model) helpView() string {
	km := m.config.KeyMappings

	markdown := fmt.Sprintf(`# tarea

## Tasks

| Key | Action |
|-----|--------|
| %s | add a task |
| %s | edit the selected task |
| %s | delete the selected task (asks first) |
| %s / enter | toggle completion |

## Views

| Key | Action |
|-----|--------|
| %s / tab | cycle filter: all, pending, completed |
| %s | search task text |

## Navigation

| Key | Action |
|-----|--------|
| %s / down | next task |
| %s / up | previous task |
| %s | quit |

Press any key to close this screen.
`,
		km.AddTask, km.EditTask, km.DeleteTask, renderKeyName(km.ToggleTask),
		km.CycleFilter, km.Search,
		km.NextTask, km.PrevTask, km.Quit,
	)

	width := m.uiState.Width()
	if width <= 0 || width > 80 {
		width = 80
	}
	return components.RenderMarkdown(markdown, width)
}

// renderKeyName makes non-printable bindings readable in the help table
func renderKeyName(key string) string {
	if key == " " {
		return "space"
	}
	return key
}
